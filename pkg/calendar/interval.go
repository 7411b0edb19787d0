package calendar

import (
	"slices"
	"time"
)

// Interval is the inclusive range of years a Calendar may display.
type Interval struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// NewInterval spans the smallest and largest of years. With no years it
// covers the year of now only.
func NewInterval(now time.Time, years ...int) Interval {
	if len(years) == 0 {
		return Interval{Min: now.Year(), Max: now.Year()}
	}
	return Interval{Min: slices.Min(years), Max: slices.Max(years)}
}

func (i Interval) Contains(year int) bool {
	return i.Min <= year && year <= i.Max
}

func (i Interval) Clamp(year int) int {
	return clamp(year, i.Min, i.Max)
}

// Valid reports whether both bounds are displayable years.
func (i Interval) Valid() bool {
	return MinYear <= i.Min && i.Min <= i.Max && i.Max <= MaxYear
}

func (i Interval) Len() int {
	return i.Max - i.Min + 1
}

// Window returns at most n consecutive years of the interval, keeping year
// as close to the middle as the bounds allow.
func (i Interval) Window(year, n int) []int {
	n = min(n, i.Len())
	if n <= 0 {
		return nil
	}

	first := i.Clamp(year - n/2)
	if first+n-1 > i.Max {
		first = i.Max - n + 1
	}

	years := make([]int, 0, n)
	for y := first; y < first+n; y++ {
		years = append(years, y)
	}
	return years
}
