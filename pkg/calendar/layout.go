package calendar

import (
	"strconv"

	tb "gopkg.in/telebot.v3"
)

const monthsPerRow = 4

func ChooseMonthLayout(w *Widget) error {
	row := make([]tb.InlineButton, 0, monthsPerRow)

	for m := 0; m < monthsInYear; m++ {
		text := firstRunes(w.cal.Locale().MonthName(m), 3)
		if m == w.cal.Month() {
			text = "·" + text + "·"
		}

		btn, err := w.button(text, CmdChangeMonth, m)
		if err != nil {
			return err
		}
		row = append(row, btn)

		if len(row) == monthsPerRow {
			w.addRow(row...)
			row = make([]tb.InlineButton, 0, monthsPerRow)
		}
	}

	return nil
}

// ChooseYearLayout is skipped for single-year intervals.
func ChooseYearLayout(w *Widget) error {
	years := w.cal.Interval().Window(w.cal.Year(), yearWindow)
	if len(years) < 2 {
		return nil
	}

	row := make([]tb.InlineButton, 0, len(years))
	for _, y := range years {
		text := strconv.Itoa(y)
		if y == w.cal.Year() {
			text = "·" + text + "·"
		}

		btn, err := w.button(text, CmdChangeYear, y)
		if err != nil {
			return err
		}
		row = append(row, btn)
	}

	w.addRow(row...)
	return nil
}

func WeekdaysLayout(w *Widget) error {
	row := make([]tb.InlineButton, 0, daysInWeek)

	for _, wd := range w.cal.WeekdayHeader() {
		btn, err := w.inert(wd)
		if err != nil {
			return err
		}
		row = append(row, btn)
	}

	w.addRow(row...)
	return nil
}

func ChooseDayLayout(w *Widget) error {
	for _, week := range w.cal.Weeks() {
		row := make([]tb.InlineButton, 0, daysInWeek)

		for _, cell := range week {
			var (
				btn tb.InlineButton
				err error
			)

			switch {
			case cell.Blank():
				btn, err = w.inert(" ")
			case w.cal.IsToday(cell):
				btn, err = w.button("•"+strconv.Itoa(cell.Day), CmdSelectDay, cell.Day)
			default:
				btn, err = w.button(strconv.Itoa(cell.Day), CmdSelectDay, cell.Day)
			}
			if err != nil {
				return err
			}

			row = append(row, btn)
		}

		w.addRow(row...)
	}

	return nil
}
