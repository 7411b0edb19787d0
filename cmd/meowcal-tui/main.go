package main

import (
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikmy/meowcal/internal/tui"
	"github.com/nikmy/meowcal/pkg/calendar"
	"github.com/nikmy/meowcal/pkg/errors"
)

func main() {
	rawYears := flag.String("years", "", "comma separated years the calendar may show, this year if empty")
	locale := flag.String("locale", os.Getenv("LANG"), "BCP 47 locale of month and weekday names")
	flag.Parse()

	years, err := parseYears(*rawYears)
	if err != nil {
		stdlog.Fatal(errors.WrapFail(err, "parse -years"))
	}

	cal := calendar.New(calendar.Options{
		Years:  years,
		Locale: posixToTag(*locale),
	})

	picked, ok, err := tui.Pick(cal, tea.WithAltScreen())
	if err != nil {
		stdlog.Fatal(err)
	}
	if !ok {
		os.Exit(1)
	}

	fmt.Println(picked)
}

func parseYears(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}

	var years []int
	for _, part := range strings.Split(raw, ",") {
		y, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.WrapFailf(err, "parse year %q", part)
		}
		years = append(years, y)
	}
	return years, nil
}

// posixToTag turns "ru_RU.UTF-8" into "ru-RU".
func posixToTag(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	return strings.ReplaceAll(locale, "_", "-")
}
