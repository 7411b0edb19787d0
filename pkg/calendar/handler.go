package calendar

import (
	"time"

	tb "gopkg.in/telebot.v3"

	"github.com/nikmy/meowcal/pkg/errors"
	"github.com/nikmy/meowcal/pkg/logger"
)

type (
	PickFunc func(c tb.Context, wid string, picked Date) error
	BackFunc func(c tb.Context, wid string) error
)

// Handler serves every calendar widget of a bot. It keeps no per-widget
// state: each press carries the display state it was rendered with.
type Handler struct {
	logger logger.Logger
	unique string
	now    func() time.Time

	onPick PickFunc
	onBack BackFunc
}

// NewHandler wires a calendar endpoint. onBack may be nil, then widgets are
// rendered without a return button.
func NewHandler(log logger.Logger, unique string, now func() time.Time, onPick PickFunc, onBack BackFunc) *Handler {
	if now == nil {
		now = time.Now
	}

	return &Handler{
		logger: log.With("calendar"),
		unique: unique,
		now:    now,
		onPick: onPick,
		onBack: onBack,
	}
}

// Endpoint is what to pass to tb.Bot.Handle.
func (h *Handler) Endpoint() *tb.InlineButton {
	return &tb.InlineButton{Unique: h.unique}
}

func (h *Handler) Widget(wid string, cal *Calendar) (*Widget, error) {
	return NewWidget(wid, h.unique, cal, h.onBack != nil)
}

func (h *Handler) Show(c tb.Context, wid string, prompt string, cal *Calendar) error {
	w, err := h.Widget(wid, cal)
	if err != nil {
		return errors.WrapFail(err, "build calendar widget")
	}

	return c.Send(prompt, w.Markup())
}

type outcome int

const (
	outcomeNothing outcome = iota
	outcomeRedraw
	outcomePicked
	outcomeBack
)

type result struct {
	outcome outcome
	cal     *Calendar
	picked  Date
}

// process applies a decoded action to a calendar restored from its state.
func (h *Handler) process(a Action) (result, error) {
	var picked Date
	cal := Restore(a.State, h.now(), func(d Date) { picked = d })
	before := cal.State()

	switch a.Cmd {
	case CmdIgnore:
		return result{outcome: outcomeNothing, cal: cal}, nil
	case CmdBack:
		return result{outcome: outcomeBack, cal: cal}, nil
	}

	if _, err := a.Apply(cal); err != nil {
		return result{}, err
	}

	if a.Cmd == CmdSelectDay {
		return result{outcome: outcomePicked, cal: cal, picked: picked}, nil
	}

	// telegram refuses to edit a message into identical markup
	if cal.State() == before {
		return result{outcome: outcomeNothing, cal: cal}, nil
	}
	return result{outcome: outcomeRedraw, cal: cal}, nil
}

func (h *Handler) Handle(c tb.Context) error {
	cb := c.Callback()
	if cb == nil {
		return errors.Fail("get callback")
	}

	action, err := Decode(cb.Data)
	if err != nil {
		h.logger.Warn(errors.WrapFail(err, "decode calendar callback"))
		return c.Respond()
	}

	res, err := h.process(action)
	if err != nil {
		h.logger.Warn(errors.WrapFailf(err, "process %q", cb.Data))
		return c.Respond()
	}

	switch res.outcome {
	case outcomeRedraw:
		w, err := h.Widget(action.WidgetID, res.cal)
		if err != nil {
			return errors.WrapFail(err, "rebuild calendar widget")
		}
		if err := c.Edit(w.Markup()); err != nil {
			return errors.WrapFail(err, "edit calendar keyboard")
		}
	case outcomePicked:
		h.logger.Debugf("widget %s picked %s", action.WidgetID, res.picked)
		if err := c.Respond(); err != nil {
			h.logger.Warn(errors.WrapFail(err, "respond to callback"))
		}
		return h.onPick(c, action.WidgetID, res.picked)
	case outcomeBack:
		if err := c.Respond(); err != nil {
			h.logger.Warn(errors.WrapFail(err, "respond to callback"))
		}
		if h.onBack == nil {
			return nil
		}
		return h.onBack(c, action.WidgetID)
	}

	return c.Respond()
}
