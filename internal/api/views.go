package api

import (
	"github.com/nikmy/meowcal/internal/repo/models"
	"github.com/nikmy/meowcal/pkg/calendar"
)

type cellView struct {
	Day     int    `json:"day,omitempty"`
	Weekday string `json:"weekday"`
	Blank   bool   `json:"blank,omitempty"`
	Today   bool   `json:"today,omitempty"`
}

type gridView struct {
	Year       int                 `json:"year"`
	Month      int                 `json:"month"`
	MonthName  string              `json:"monthName"`
	Locale     string              `json:"locale"`
	Interval   calendar.Interval   `json:"interval"`
	Navigation calendar.Navigation `json:"navigation"`
	Weekdays   [7]string           `json:"weekdays"`
	Weeks      [][]cellView        `json:"weeks"`
}

func newGridView(cal *calendar.Calendar) gridView {
	loc := cal.Locale()

	weeks := cal.Weeks()
	view := gridView{
		Year:       cal.Year(),
		Month:      cal.Month(),
		MonthName:  cal.MonthName(),
		Locale:     loc.Code(),
		Interval:   cal.Interval(),
		Navigation: cal.Navigation(),
		Weekdays:   cal.WeekdayHeader(),
		Weeks:      make([][]cellView, 0, len(weeks)),
	}

	for _, week := range weeks {
		row := make([]cellView, 0, len(week))
		for _, cell := range week {
			row = append(row, cellView{
				Day:     cell.Day,
				Weekday: loc.WeekdayAbbr(cell.Weekday),
				Blank:   cell.Blank(),
				Today:   cal.IsToday(cell),
			})
		}
		view.Weeks = append(view.Weeks, row)
	}

	return view
}

type selectionView struct {
	Date     string `json:"date"`
	Widget   string `json:"widget"`
	PickedAt int64  `json:"pickedAt"`
}

func newSelectionViews(selected []models.Selection) []selectionView {
	views := make([]selectionView, 0, len(selected))
	for _, s := range selected {
		views = append(views, selectionView{
			Date:     s.Date.String(),
			Widget:   s.WidgetID,
			PickedAt: s.PickedAt.UnixMilli(),
		})
	}
	return views
}
