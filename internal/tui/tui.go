package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikmy/meowcal/pkg/calendar"
	"github.com/nikmy/meowcal/pkg/errors"
)

// Pick runs the picker until the user picks a date or quits.
func Pick(cal *calendar.Calendar, opts ...tea.ProgramOption) (calendar.Date, bool, error) {
	final, err := tea.NewProgram(New(cal), opts...).Run()
	if err != nil {
		return calendar.Date{}, false, errors.WrapFail(err, "run calendar picker")
	}

	m, ok := final.(Model)
	if !ok {
		return calendar.Date{}, false, errors.Errorf("unexpected picker model %T", final)
	}

	d, picked := m.Picked()
	return d, picked, nil
}
