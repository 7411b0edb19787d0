package calendar

import (
	"github.com/nikmy/meowcal/pkg/builder"
)

func NewWidget(wid, unique string, cal *Calendar, withReturn bool) (*Widget, error) {
	return builder.New[Widget]().
		Use(AsCalendar(cal)).
		Use(AsUnique(unique)).
		Use(AsID(wid)).
		MaybeUse(NavigationRow).
		MaybeUse(ChooseMonthLayout).
		MaybeUse(ChooseYearLayout).
		MaybeUse(WeekdaysLayout).
		MaybeUse(ChooseDayLayout).
		UseIf(withReturn, ReturnButton).
		Get()
}
