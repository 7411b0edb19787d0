package calendar

import (
	"time"

	"github.com/nikmy/meowcal/pkg/errors"
)

var ErrDayOutOfRange = errors.Error("day is out of displayed month")

type Options struct {
	// Years only matter through their min and max. Empty means this year.
	Years []int

	// Locale is a BCP 47 tag, "en" when empty.
	Locale string

	// Now is the moment used for the initial month and today marker.
	// Zero means time.Now().
	Now time.Time

	OnDateSelected func(Date)
}

// Navigation is derived from the display state on every read.
type Navigation struct {
	PrevDisabled bool `json:"prevDisabled"`
	NextDisabled bool `json:"nextDisabled"`
}

// State is the part of a Calendar that survives a round trip through a
// stateless host, e.g. telegram callback data.
type State struct {
	Month    int
	Year     int
	Interval Interval
	Locale   string
}

// Calendar tracks which month of an Interval is displayed and which day was
// picked last. It is owned by a single UI loop and is not safe for
// concurrent use.
type Calendar struct {
	interval Interval
	month    int
	year     int

	locale Locale
	today  Date

	selected   *Date
	onSelected func(Date)
}

func New(opts Options) *Calendar {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	c := &Calendar{
		interval:   NewInterval(now, opts.Years...),
		locale:     LookupLocale(opts.Locale),
		today:      DateOf(now),
		onSelected: opts.OnDateSelected,
	}

	if c.interval.Contains(c.today.Year) {
		c.month, c.year = c.today.Month, c.today.Year
	} else {
		c.month, c.year = 0, c.interval.Min
	}

	return c
}

// Restore rebuilds a Calendar from a saved State. Out of range values are
// clamped: the interval into [MinYear, MaxYear], the rest into the interval.
func Restore(s State, now time.Time, onSelected func(Date)) *Calendar {
	if now.IsZero() {
		now = time.Now()
	}

	interval := Interval{
		Min: clamp(s.Interval.Min, MinYear, MaxYear),
		Max: clamp(s.Interval.Max, MinYear, MaxYear),
	}
	if interval.Min > interval.Max {
		interval.Min, interval.Max = interval.Max, interval.Min
	}

	c := &Calendar{
		interval:   interval,
		locale:     LookupLocale(s.Locale),
		today:      DateOf(now),
		onSelected: onSelected,
	}
	c.year = interval.Clamp(s.Year)
	c.month = clamp(s.Month, 0, monthsInYear-1)

	return c
}

func (c *Calendar) State() State {
	return State{
		Month:    c.month,
		Year:     c.year,
		Interval: c.interval,
		Locale:   c.locale.Code(),
	}
}

func (c *Calendar) Month() int         { return c.month }
func (c *Calendar) Year() int          { return c.year }
func (c *Calendar) Interval() Interval { return c.interval }
func (c *Calendar) Locale() Locale     { return c.locale }
func (c *Calendar) Today() Date        { return c.today }

func (c *Calendar) Navigation() Navigation {
	return Navigation{
		PrevDisabled: c.month == 0 && c.year == c.interval.Min,
		NextDisabled: c.month == monthsInYear-1 && c.year == c.interval.Max,
	}
}

// PrevMonth reports whether the display state changed.
func (c *Calendar) PrevMonth() bool {
	if c.Navigation().PrevDisabled {
		return false
	}

	if c.month > 0 {
		c.month--
	} else {
		c.month = monthsInYear - 1
		c.year--
	}
	return true
}

// NextMonth reports whether the display state changed.
func (c *Calendar) NextMonth() bool {
	if c.Navigation().NextDisabled {
		return false
	}

	if c.month < monthsInYear-1 {
		c.month++
	} else {
		c.month = 0
		c.year++
	}
	return true
}

func (c *Calendar) ChangeMonth(month int) {
	c.month = clamp(month, 0, monthsInYear-1)
}

func (c *Calendar) ChangeYear(year int) {
	c.year = c.interval.Clamp(year)
}

func (c *Calendar) Grid() []Cell {
	return BuildGrid(c.year, c.month, c.locale.FirstWeekday())
}

func (c *Calendar) Weeks() [][]Cell {
	return Weeks(c.Grid())
}

func (c *Calendar) MonthName() string {
	return c.locale.MonthName(c.month)
}

func (c *Calendar) WeekdayHeader() [daysInWeek]string {
	return c.locale.WeekdayHeader()
}

// IsToday compares calendar dates only, time of day is ignored.
func (c *Calendar) IsToday(cell Cell) bool {
	return !cell.Blank() && c.today == Date{Year: c.year, Month: c.month, Day: cell.Day}
}

func (c *Calendar) Selected() (Date, bool) {
	if c.selected == nil {
		return Date{}, false
	}
	return *c.selected, true
}

// Select picks a day of the displayed month and hands the new date to the
// callback.
func (c *Calendar) Select(day int) (Date, error) {
	if day < 1 || day > DaysInMonth(c.year, c.month) {
		return Date{}, errors.Wrapf(ErrDayOutOfRange, "select day %d", day)
	}

	picked := Date{Year: c.year, Month: c.month, Day: day}
	c.selected = &picked

	if c.onSelected != nil {
		c.onSelected(picked)
	}
	return picked, nil
}
