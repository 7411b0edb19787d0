package calendar

import "time"

// DaysInMonth takes a zero-based month. Day zero of the next month is the
// last day of this one.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// FirstWeekday is the weekday of the first day of a zero-based month.
func FirstWeekday(year, month int) time.Weekday {
	return beginningOfMonth(year, month).Weekday()
}

// LeadingBlanks is how many empty cells precede day 1 in a week that
// starts on weekStart.
func LeadingBlanks(year, month int, weekStart time.Weekday) int {
	return (int(FirstWeekday(year, month)) - int(weekStart) + daysInWeek) % daysInWeek
}

func beginningOfMonth(year, month int) time.Time {
	return time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
