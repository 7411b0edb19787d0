package calendar

import (
	tb "gopkg.in/telebot.v3"

	"github.com/nikmy/meowcal/pkg/errors"
)

// Widget renders a Calendar as a telegram inline keyboard. All buttons share
// one callback endpoint, identified by unique.
type Widget struct {
	cal      *Calendar
	keyboard [][]tb.InlineButton
	unique   string
	widgetID string
}

func (w *Widget) Keyboard() [][]tb.InlineButton {
	return w.keyboard
}

func (w *Widget) Markup() *tb.ReplyMarkup {
	return &tb.ReplyMarkup{InlineKeyboard: w.keyboard}
}

type setter func(w *Widget)

func AsCalendar(cal *Calendar) setter {
	return func(w *Widget) {
		w.cal = cal
	}
}

func AsUnique(unique string) setter {
	return func(w *Widget) {
		w.unique = unique
	}
}

func AsID(id string) setter {
	return func(w *Widget) {
		w.widgetID = id
	}
}

func (w *Widget) button(text string, cmd Command, arg int) (tb.InlineButton, error) {
	data := Action{
		WidgetID: w.widgetID,
		Cmd:      cmd,
		Arg:      arg,
		State:    w.cal.State(),
	}.Encode()

	// telebot sends "\f<unique>|<data>"
	if n := len(w.unique) + len(data) + 2; n > maxCallbackData {
		return tb.InlineButton{}, errors.Errorf("callback data is %d bytes, limit is %d", n, maxCallbackData)
	}

	return tb.InlineButton{
		Unique: w.unique,
		Text:   text,
		Data:   data,
	}, nil
}

func (w *Widget) inert(text string) (tb.InlineButton, error) {
	return w.button(text, CmdIgnore, 0)
}

func (w *Widget) addRow(row ...tb.InlineButton) {
	w.keyboard = append(w.keyboard, row)
}
