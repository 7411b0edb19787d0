package calendar

import "time"

const (
	// telegram rejects callback data longer than this
	maxCallbackData = 64

	daysInWeek   = 7
	monthsInYear = 12

	// how many years the year selector shows at once
	yearWindow = 5
)

// Years a Calendar can display, as four-digit years.
const (
	MinYear = 1
	MaxYear = 9999
)

type localeNames struct {
	months       [monthsInYear]string
	weekdays     [daysInWeek]string // indexed by time.Weekday
	firstWeekday time.Weekday
}

var namesByLocale = map[string]localeNames{
	"en": {
		months: [monthsInYear]string{
			"january", "february", "march", "april", "may", "june",
			"july", "august", "september", "october", "november", "december",
		},
		weekdays: [daysInWeek]string{
			"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
		},
		firstWeekday: time.Sunday,
	},
	"ru": {
		months: [monthsInYear]string{
			"январь", "февраль", "март", "апрель", "май", "июнь",
			"июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь",
		},
		weekdays: [daysInWeek]string{
			"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота",
		},
		firstWeekday: time.Monday,
	},
	"de": {
		months: [monthsInYear]string{
			"januar", "februar", "märz", "april", "mai", "juni",
			"juli", "august", "september", "oktober", "november", "dezember",
		},
		weekdays: [daysInWeek]string{
			"sonntag", "montag", "dienstag", "mittwoch", "donnerstag", "freitag", "samstag",
		},
		firstWeekday: time.Monday,
	},
	"fr": {
		months: [monthsInYear]string{
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre",
		},
		weekdays: [daysInWeek]string{
			"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
		},
		firstWeekday: time.Monday,
	},
	"es": {
		months: [monthsInYear]string{
			"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
		},
		weekdays: [daysInWeek]string{
			"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
		},
		firstWeekday: time.Monday,
	},
}
