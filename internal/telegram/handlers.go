package telegram

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vitaliy-ukiru/fsm-telebot"
	"github.com/vitaliy-ukiru/fsm-telebot/storages/memory"
	"gopkg.in/telebot.v3"
	"gopkg.in/telebot.v3/middleware"

	"github.com/nikmy/meowcal/internal/repo"
	"github.com/nikmy/meowcal/internal/repo/models"
	"github.com/nikmy/meowcal/pkg/calendar"
	"github.com/nikmy/meowcal/pkg/errors"
)

const (
	initialState = fsm.DefaultState

	readYearsState fsm.State = "calReadYears"
)

const (
	mainWidget   = "main"
	historyLimit = 10
)

const usage = "" +
	"Available commands:\n" +
	"/calendar [year ...] - pick a date, the calendar spans the given years\n" +
	"/picked - show the last picked date\n" +
	"/history - show recently picked dates\n"

func (b *Bot) setupHandlers() {
	// a panicking handler must not take the whole process down
	b.bot.Use(middleware.Recover())

	manager := fsm.NewManager(
		b.bot,
		nil,
		memory.NewStorage(),
		nil,
	)

	manager.Bind("/start", fsm.AnyState, b.start)
	manager.Bind("/calendar", fsm.AnyState, b.startCalendar)
	manager.Bind("/picked", fsm.AnyState, b.picked)
	manager.Bind("/history", fsm.AnyState, b.history)

	manager.Bind(telebot.OnText, readYearsState, b.readYears)
	manager.Bind(telebot.OnText, initialState, b.start)

	b.bot.Handle(b.calendar.Endpoint(), b.calendar.Handle)
}

func (b *Bot) setState(s fsm.Context, target fsm.State) {
	err := s.Set(target)
	if err != nil {
		b.log.Warn(errors.WrapFailf(err, "set state to \"%s\"", target))
	}
}

func (b *Bot) final(c telebot.Context, s fsm.Context, msg string, opts ...any) error {
	b.setState(s, initialState)
	return c.Send(msg, opts...)
}

func (b *Bot) fail(c telebot.Context, s fsm.Context, err error) error {
	b.log.Error(err)
	return b.final(c, s, "Something went wrong")
}

func (b *Bot) start(c telebot.Context, s fsm.Context) error {
	return b.final(c, s, usage)
}

func (b *Bot) startCalendar(c telebot.Context, s fsm.Context) error {
	args := c.Args()
	if len(args) == 0 {
		b.setState(s, readYearsState)
		return c.Send("Enter years for the calendar separated by spaces, or \"-\" for this year")
	}

	years, err := parseYears(args)
	if err != nil {
		b.log.Debug(err)
		return b.final(c, s, "Bad years list, try /calendar 2024 2026")
	}

	return b.showCalendar(c, s, years)
}

func (b *Bot) readYears(c telebot.Context, s fsm.Context) error {
	text := strings.TrimSpace(c.Text())
	if text == "-" {
		return b.showCalendar(c, s, nil)
	}

	years, err := parseYears(strings.Fields(text))
	if err != nil {
		b.log.Debug(err)
		return c.Send("Bad years list. Enter numbers like \"2024 2026\" or \"-\"")
	}

	return b.showCalendar(c, s, years)
}

func (b *Bot) showCalendar(c telebot.Context, s fsm.Context, years []int) error {
	cal := calendar.New(calendar.Options{
		Years:  years,
		Locale: b.senderLocale(c),
		Now:    b.time.Now(),
	})

	b.setState(s, initialState)

	err := b.calendar.Show(c, mainWidget, "Pick a date:", cal)
	if err != nil {
		return b.fail(c, s, errors.WrapFail(err, "show calendar"))
	}
	return nil
}

func (b *Bot) onPick(c telebot.Context, wid string, picked calendar.Date) error {
	sender := c.Sender()
	if sender == nil {
		return errors.Fail("get sender")
	}

	err := b.selections.Save(b.ctx, models.Selection{
		UserID:   sender.ID,
		WidgetID: wid,
		Date:     picked,
		PickedAt: b.time.UTC(),
	})
	if err != nil {
		b.log.Error(errors.WrapFail(err, "save selection"))
		return c.Edit("Could not save the date, try again later")
	}

	return c.Edit(fmt.Sprintf("Picked %s", b.describe(c, picked)))
}

func (b *Bot) onBack(c telebot.Context, _ string) error {
	return c.Edit("Nothing picked")
}

func (b *Bot) picked(c telebot.Context, s fsm.Context) error {
	sender := c.Sender()
	if sender == nil {
		return b.fail(c, s, errors.Fail("get sender"))
	}

	last, err := b.selections.Last(b.ctx, sender.ID)
	if err != nil {
		return b.fail(c, s, errors.WrapFail(err, "get last selection"))
	}

	if last == nil {
		return b.final(c, s, "You have not picked any date yet, try /calendar")
	}

	return b.final(c, s, fmt.Sprintf("Last picked: %s", b.describe(c, last.Date)))
}

func (b *Bot) history(c telebot.Context, s fsm.Context) error {
	sender := c.Sender()
	if sender == nil {
		return b.fail(c, s, errors.Fail("get sender"))
	}

	selected, err := b.selections.List(b.ctx, sender.ID, repo.Limit(historyLimit))
	if err != nil {
		return b.fail(c, s, errors.WrapFail(err, "list selections"))
	}

	if len(selected) == 0 {
		return b.final(c, s, "You have not picked any date yet, try /calendar")
	}

	var sb strings.Builder
	for _, sel := range selected {
		sb.WriteString("`")
		sb.WriteString(sel.Date.String())
		sb.WriteString("` ")
		sb.WriteString(b.weekdayName(c, sel.Date))
		sb.WriteString("\n")
	}

	return b.final(c, s, sb.String(), &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
}

func (b *Bot) senderLocale(c telebot.Context) string {
	if sender := c.Sender(); sender != nil && sender.LanguageCode != "" {
		return sender.LanguageCode
	}
	return b.locale
}

func (b *Bot) weekdayName(c telebot.Context, d calendar.Date) string {
	loc := calendar.LookupLocale(b.senderLocale(c))
	return loc.WeekdayName(d.Weekday())
}

func (b *Bot) describe(c telebot.Context, d calendar.Date) string {
	loc := calendar.LookupLocale(b.senderLocale(c))
	return fmt.Sprintf("%s, %d %s %d", b.weekdayName(c, d), d.Day, loc.MonthName(d.Month), d.Year)
}

func parseYears(raw []string) ([]int, error) {
	years := make([]int, 0, len(raw))
	for _, r := range raw {
		y, err := strconv.Atoi(r)
		if err != nil {
			return nil, errors.WrapFailf(err, "parse year %q", r)
		}
		if y < calendar.MinYear || y > calendar.MaxYear {
			return nil, errors.Errorf("year %d is out of [%d, %d]", y, calendar.MinYear, calendar.MaxYear)
		}
		years = append(years, y)
	}
	return years, nil
}
