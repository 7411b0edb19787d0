package repo

import (
	"github.com/nikmy/meowcal/internal/repo/models"
)

const defaultLimit = 50

type filter struct {
	limit  int
	widget *string
	year   *int
}

type Filter func(*filter)

func Limit(n int) Filter {
	return func(f *filter) {
		if n > 0 {
			f.limit = n
		}
	}
}

func ByWidget(wid string) Filter {
	return func(f *filter) {
		f.widget = &wid
	}
}

func InYear(year int) Filter {
	return func(f *filter) {
		f.year = &year
	}
}

func applyFilters(filters []Filter) filter {
	f := filter{limit: defaultLimit}
	for _, apply := range filters {
		apply(&f)
	}
	return f
}

func (f filter) match(s models.Selection) bool {
	if f.widget != nil && s.WidgetID != *f.widget {
		return false
	}
	if f.year != nil && s.Date.Year != *f.year {
		return false
	}
	return true
}
