package telegram

import (
	"context"

	"gopkg.in/telebot.v3"

	"github.com/nikmy/meowcal/pkg/calendar"
	"github.com/nikmy/meowcal/pkg/errors"
	"github.com/nikmy/meowcal/pkg/logger"
)

const calendarUnique = "cal"

func New(
	log logger.Logger,
	conf Config,
	selections selectionsRepo,
) (*Bot, error) {
	b, err := telebot.NewBot(telebot.Settings{
		Token:   conf.Token,
		Updates: 256,
		Poller: &telebot.LongPoller{
			Timeout: conf.PollInterval,
		},
	})
	if err != nil {
		return nil, errors.WrapFail(err, "create telegram bot")
	}

	bot := &Bot{
		bot:        b,
		ctx:        context.Background(),
		log:        log.With("telegram"),
		selections: selections,
		time:       stdTime{utcDiff: conf.UTCDiff, zoneName: conf.ZoneName},
		locale:     conf.Locale,
	}
	bot.calendar = calendar.NewHandler(bot.log, calendarUnique, bot.time.Now, bot.onPick, bot.onBack)

	return bot, nil
}

type Bot struct {
	bot *telebot.Bot
	ctx context.Context

	calendar   *calendar.Handler
	selections selectionsRepo

	time   timeProvider
	locale string

	log logger.Logger
}

func (b *Bot) Run(ctx context.Context) error {
	b.ctx = ctx
	b.setupHandlers()
	go b.bot.Start()
	return nil
}

func (b *Bot) Stop() {
	b.bot.Stop()
}
