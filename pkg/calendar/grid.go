package calendar

import (
	"fmt"
	"time"
)

// Date is a calendar day with a zero-based month.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m) - 1, Day: d}
}

func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, time.Month(d.Month+1), d.Day, 0, 0, 0, 0, loc)
}

func (d Date) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month+1, d.Day)
}

// Cell is one slot of the month grid. Blank cells have Day == 0.
type Cell struct {
	Day     int          `json:"day"`
	Weekday time.Weekday `json:"weekday"`
}

func (c Cell) Blank() bool {
	return c.Day == 0
}

// BuildGrid lays out a zero-based month: leading blanks up to the first
// day's column, then one cell per day. No trailing padding is added.
func BuildGrid(year, month int, weekStart time.Weekday) []Cell {
	blanks := LeadingBlanks(year, month, weekStart)
	days := DaysInMonth(year, month)

	cells := make([]Cell, 0, blanks+days)
	for i := 0; i < blanks; i++ {
		cells = append(cells, Cell{Weekday: time.Weekday((int(weekStart) + i) % daysInWeek)})
	}

	wd := FirstWeekday(year, month)
	for d := 1; d <= days; d++ {
		cells = append(cells, Cell{Day: d, Weekday: wd})
		wd = (wd + 1) % daysInWeek
	}

	return cells
}

// Weeks splits cells into rows of seven, padding the last row with blanks.
func Weeks(cells []Cell) [][]Cell {
	var weeks [][]Cell
	for len(cells) > 0 {
		n := min(daysInWeek, len(cells))
		row := make([]Cell, daysInWeek)
		copy(row, cells[:n])
		for i := n; i < daysInWeek; i++ {
			row[i] = Cell{Weekday: (row[i-1].Weekday + 1) % daysInWeek}
		}
		weeks = append(weeks, row)
		cells = cells[n:]
	}
	return weeks
}
