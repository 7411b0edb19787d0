package telegram

import (
	"github.com/vitaliy-ukiru/fsm-telebot"
	"gopkg.in/telebot.v3"
)

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=telegram

// fakeContext implements only what the handlers touch, anything else panics
// on the nil embedded interface.
type fakeContext struct {
	telebot.Context

	sender *telebot.User
	text   string
	args   []string

	sent   []any
	edited []any
}

func (f *fakeContext) Sender() *telebot.User { return f.sender }
func (f *fakeContext) Text() string          { return f.text }
func (f *fakeContext) Args() []string        { return f.args }

func (f *fakeContext) Send(what any, _ ...any) error {
	f.sent = append(f.sent, what)
	return nil
}

func (f *fakeContext) Edit(what any, _ ...any) error {
	f.edited = append(f.edited, what)
	return nil
}

type fakeState struct {
	fsm.Context
	state fsm.State
}

func (f *fakeState) Set(s fsm.State) error {
	f.state = s
	return nil
}
