package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nikmy/meowcal/pkg/calendar"
)

const help = "arrows: move  [ ]: month  { }: year  t: today  enter: pick  q: quit"

// Model is a bubbletea model around a Calendar. The cursor always points to
// an existing day of the displayed month.
type Model struct {
	cal    *calendar.Calendar
	cursor int

	picked   *calendar.Date
	quitting bool
}

func New(cal *calendar.Calendar) Model {
	m := Model{cal: cal, cursor: 1}
	if today := cal.Today(); today.Year == cal.Year() && today.Month == cal.Month() {
		m.cursor = today.Day
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Picked reports the date chosen with enter, if any.
func (m Model) Picked() (calendar.Date, bool) {
	if m.picked == nil {
		return calendar.Date{}, false
	}
	return *m.picked, true
}

func (m Model) Cursor() calendar.Date {
	return calendar.Date{Year: m.cal.Year(), Month: m.cal.Month(), Day: m.cursor}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "left", "h":
		m.move(-1)
	case "right", "l":
		m.move(1)
	case "up", "k":
		m.move(-7)
	case "down", "j":
		m.move(7)
	case "[":
		m.cal.PrevMonth()
		m.fitCursor()
	case "]":
		m.cal.NextMonth()
		m.fitCursor()
	case "{":
		m.cal.ChangeYear(m.cal.Year() - 1)
		m.fitCursor()
	case "}":
		m.cal.ChangeYear(m.cal.Year() + 1)
		m.fitCursor()
	case "t":
		today := m.cal.Today()
		if m.cal.Interval().Contains(today.Year) {
			m.cal.ChangeYear(today.Year)
			m.cal.ChangeMonth(today.Month)
			m.cursor = today.Day
		}
	case "enter", " ":
		picked, err := m.cal.Select(m.cursor)
		if err != nil {
			return m, nil
		}
		m.picked = &picked
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// move shifts the cursor by delta days, crossing into the neighbour month
// when the interval allows it.
func (m *Model) move(delta int) {
	target := m.cursor + delta
	days := calendar.DaysInMonth(m.cal.Year(), m.cal.Month())

	switch {
	case target < 1:
		if !m.cal.PrevMonth() {
			m.cursor = 1
			return
		}
		m.cursor = target + calendar.DaysInMonth(m.cal.Year(), m.cal.Month())
	case target > days:
		if !m.cal.NextMonth() {
			m.cursor = days
			return
		}
		m.cursor = target - days
	default:
		m.cursor = target
	}
}

func (m *Model) fitCursor() {
	m.cursor = min(m.cursor, calendar.DaysInMonth(m.cal.Year(), m.cal.Month()))
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	nav := m.cal.Navigation()
	title := m.cal.MonthName() + " " + strconv.Itoa(m.cal.Year())
	sb.WriteString(lipgloss.JoinHorizontal(
		lipgloss.Top,
		arrow("‹", nav.PrevDisabled),
		titleStyle.Render(title),
		arrow("›", nav.NextDisabled),
	))
	sb.WriteString("\n")

	for _, name := range m.cal.WeekdayHeader() {
		sb.WriteString(headerStyle.Render(name))
	}
	sb.WriteString("\n")

	selected, hasSelected := m.cal.Selected()
	for _, week := range m.cal.Weeks() {
		for _, cell := range week {
			sb.WriteString(m.renderCell(cell, selected, hasSelected))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(footerStyle.Render(help))
	sb.WriteString("\n")

	return sb.String()
}

func (m Model) renderCell(cell calendar.Cell, selected calendar.Date, hasSelected bool) string {
	if cell.Blank() {
		return dayStyle.Render("")
	}

	text := strconv.Itoa(cell.Day)
	switch {
	case cell.Day == m.cursor:
		return cursorStyle.Render(text)
	case hasSelected && selected == calendar.Date{Year: m.cal.Year(), Month: m.cal.Month(), Day: cell.Day}:
		return selectedStyle.Render(text)
	case m.cal.IsToday(cell):
		return todayStyle.Render(text)
	default:
		return dayStyle.Render(text)
	}
}

func arrow(text string, disabled bool) string {
	if disabled {
		return disabledStyle.Render(" ")
	}
	return arrowStyle.Render(text)
}
