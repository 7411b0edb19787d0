package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nikmy/meowcal/internal/api"
	"github.com/nikmy/meowcal/internal/repo"
	"github.com/nikmy/meowcal/internal/telegram"
	"github.com/nikmy/meowcal/pkg/errors"
	"github.com/nikmy/meowcal/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGABRT)
	defer cancel()

	selections, err := repo.New(ctx, log, cfg.Storage)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init selections repo"))
	}

	bot, err := telegram.New(log, cfg.Telegram, selections)
	if err != nil {
		log.Panic(errors.WrapFail(err, "initialize bot service"))
	}

	server := api.NewServer(cfg.API, log, selections, nil)

	stopped := make(chan struct{})
	context.AfterFunc(ctx, func() {
		stdlog.Println("Graceful shutdown...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		bot.Stop()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Warn(err)
		}
		if err := selections.Close(shutdownCtx); err != nil {
			log.Warn(errors.WrapFail(err, "close selections repo"))
		}

		close(stopped)
	})

	err = bot.Run(ctx)
	if err != nil {
		log.Panic(err)
	}
	stdlog.Println("Bot has been started")

	go func() {
		if err := server.Serve(ctx); err != nil {
			log.Error(err)
			cancel()
		}
	}()

	<-stopped
	stdlog.Println("Shutdown complete")
}
