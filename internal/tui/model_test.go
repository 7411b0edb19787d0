package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/nikmy/meowcal/pkg/calendar"
)

func newModel(years ...int) Model {
	return New(calendar.New(calendar.Options{
		Years: years,
		Now:   time.Date(2024, time.February, 10, 9, 0, 0, 0, time.UTC),
	}))
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}

		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestModel_StartsOnToday(t *testing.T) {
	m := newModel(2024)
	require.Equal(t, calendar.Date{Year: 2024, Month: 1, Day: 10}, m.Cursor())
}

func TestModel_Move(t *testing.T) {
	type testcase struct {
		name string
		keys []string
		want calendar.Date
	}

	tests := [...]testcase{
		{
			name: "right",
			keys: []string{"right"},
			want: calendar.Date{Year: 2024, Month: 1, Day: 11},
		},
		{
			name: "week up",
			keys: []string{"up"},
			want: calendar.Date{Year: 2024, Month: 1, Day: 3},
		},
		{
			name: "into previous month",
			keys: []string{"up", "up"},
			want: calendar.Date{Year: 2024, Month: 0, Day: 27},
		},
		{
			name: "into next month",
			keys: []string{"down", "down", "down"},
			want: calendar.Date{Year: 2024, Month: 2, Day: 2},
		},
		{
			name: "month keys keep day",
			keys: []string{"]", "]"},
			want: calendar.Date{Year: 2024, Month: 3, Day: 10},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := press(newModel(2024), test.keys...)
			require.Equal(t, test.want, m.Cursor())
		})
	}
}

func TestModel_StopsAtBounds(t *testing.T) {
	m := press(newModel(2024), "[", "left", "left", "left", "left", "left", "left", "left", "left", "left", "left")
	require.Equal(t, calendar.Date{Year: 2024, Month: 0, Day: 1}, m.Cursor())

	m = press(m, "[")
	require.Equal(t, calendar.Date{Year: 2024, Month: 0, Day: 1}, m.Cursor())
}

func TestModel_YearKeysClampCursor(t *testing.T) {
	m := newModel(2023, 2024)
	for i := 0; i < 19; i++ {
		m = press(m, "right")
	}
	require.Equal(t, calendar.Date{Year: 2024, Month: 1, Day: 29}, m.Cursor())

	m = press(m, "{")
	require.Equal(t, calendar.Date{Year: 2023, Month: 1, Day: 28}, m.Cursor())

	m = press(m, "{")
	require.Equal(t, 2023, m.Cursor().Year)

	m = press(m, "t")
	require.Equal(t, calendar.Date{Year: 2024, Month: 1, Day: 10}, m.Cursor())
}

func TestModel_Pick(t *testing.T) {
	var got calendar.Date
	cal := calendar.New(calendar.Options{
		Years:          []int{2024},
		Now:            time.Date(2024, time.February, 10, 9, 0, 0, 0, time.UTC),
		OnDateSelected: func(d calendar.Date) { got = d },
	})

	m := New(cal)
	_, ok := m.Picked()
	require.False(t, ok)

	next, cmd := press(m, "right").Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.NotNil(t, cmd)

	picked, ok := m.Picked()
	require.True(t, ok)
	require.Equal(t, calendar.Date{Year: 2024, Month: 1, Day: 11}, picked)
	require.Equal(t, picked, got)
	require.Empty(t, m.View())
}

func TestModel_View(t *testing.T) {
	m := newModel(2024)
	view := m.View()

	require.Contains(t, view, "February 2024")
	require.Contains(t, view, "Su")
	require.Contains(t, view, "29")
	require.NotContains(t, view, "30")
	require.Contains(t, view, help)

	lines := strings.Split(strings.TrimSpace(view), "\n")
	require.GreaterOrEqual(t, len(lines), 7)
}
