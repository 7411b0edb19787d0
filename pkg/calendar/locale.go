package calendar

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// supported is ordered by preference; the first entry is the fallback.
var supported = []language.Tag{
	language.English,
	language.Russian,
	language.German,
	language.French,
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

// Locale carries everything the grid needs to label itself. It is resolved
// once from an explicit tag and never reads the process environment.
type Locale struct {
	tag   language.Tag
	code  string
	names localeNames
}

// LookupLocale accepts BCP 47 tags and Accept-Language style lists
// ("ru-RU", "de-CH,de;q=0.9"). Anything unsupported falls back to English.
func LookupLocale(raw string) Locale {
	_, idx := language.MatchStrings(matcher, raw)
	tag := supported[idx]

	base, _ := tag.Base()
	code := base.String()

	names, ok := namesByLocale[code]
	if !ok {
		tag, code, names = language.English, "en", namesByLocale["en"]
	}

	return Locale{tag: tag, code: code, names: names}
}

func (l Locale) Code() string {
	if l.code == "" {
		return "en"
	}
	return l.code
}

func (l Locale) Tag() language.Tag {
	return l.tag
}

func (l Locale) FirstWeekday() time.Weekday {
	return l.names.firstWeekday
}

// MonthName takes a zero-based month.
func (l Locale) MonthName(month int) string {
	return l.title(l.names.months[month])
}

func (l Locale) WeekdayName(wd time.Weekday) string {
	return l.title(l.names.weekdays[wd])
}

// WeekdayAbbr is the first two characters of the full weekday name.
func (l Locale) WeekdayAbbr(wd time.Weekday) string {
	return firstRunes(l.WeekdayName(wd), 2)
}

// WeekdayHeader returns abbreviations starting from the locale's first weekday.
func (l Locale) WeekdayHeader() [daysInWeek]string {
	var header [daysInWeek]string
	for i := range header {
		header[i] = l.WeekdayAbbr(l.weekdayAt(i))
	}
	return header
}

func (l Locale) weekdayAt(column int) time.Weekday {
	return time.Weekday((int(l.names.firstWeekday) + column) % daysInWeek)
}

func (l Locale) title(s string) string {
	// cases.Caser keeps state between calls
	return cases.Title(l.tag).String(s)
}

func firstRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
