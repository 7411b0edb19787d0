package calendar

import (
	"fmt"

	tb "gopkg.in/telebot.v3"
)

const (
	prevText = "<"
	nextText = ">"
	backText = "↩"
)

// NavigationRow is [prev, "Month Year", next]. A disabled arrow becomes an
// inert blank button so the row keeps its shape.
func NavigationRow(w *Widget) error {
	nav := w.cal.Navigation()

	prev, err := w.arrow(prevText, CmdPrev, nav.PrevDisabled)
	if err != nil {
		return err
	}

	title, err := w.inert(fmt.Sprintf("%s %d", w.cal.MonthName(), w.cal.Year()))
	if err != nil {
		return err
	}

	next, err := w.arrow(nextText, CmdNext, nav.NextDisabled)
	if err != nil {
		return err
	}

	w.addRow(prev, title, next)
	return nil
}

func ReturnButton(w *Widget) error {
	btn, err := w.button(backText, CmdBack, 0)
	if err != nil {
		return err
	}
	w.addRow(btn)
	return nil
}

func (w *Widget) arrow(text string, cmd Command, disabled bool) (tb.InlineButton, error) {
	if disabled {
		return w.inert(" ")
	}
	return w.button(text, cmd, 0)
}
