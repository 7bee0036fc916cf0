package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/coreos/go-systemd/v22/daemon"

	"hwbot/internal/config"
	"hwbot/internal/notify"
	"hwbot/internal/practicum"
	"hwbot/internal/storage"
	kit "hwbot/internal/transport"
	"hwbot/internal/transport/telegram/adapter"
	"hwbot/internal/watcher"
	"hwbot/pkg/logx"
)

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "path to optional yaml config")
	flag.Parse()

	// Bootstrap logger, replaced once the file config is known.
	boot := logx.NewConsole("info")

	// Credentials are checked before anything touches the network.
	creds, err := config.LoadEnv()
	if err != nil {
		boot.Error("fatal: credentials missing, shutting down", logx.Err(err))
		os.Exit(1)
	}

	cfg, err := config.LoadFile(cfgPath)
	if err != nil {
		boot.Error("fatal: config file unreadable", logx.String("path", cfgPath), logx.Err(err))
		os.Exit(1)
	}

	httpTimeout, err := config.ParseDurationOrDefault("http_timeout", cfg.HTTPTimeout, 0)
	if err != nil {
		boot.Error("fatal: bad config", logx.Err(err))
		os.Exit(1)
	}

	tg, err := adapter.New(adapter.Config{Token: creds.BotToken}, boot)
	if err != nil {
		boot.Error("fatal: telegram bot init failed", logx.Err(err))
		os.Exit(1)
	}

	target := kit.ChatTarget{ChatID: creds.ChatID}
	logSvc, log := logx.New(loggingConfig(cfg.Logging), tg, target)
	defer logSvc.Close()

	store, err := openStorage(cfg, log)
	if err != nil {
		log.Error("fatal: storage init failed", logx.Err(err))
		os.Exit(1)
	}
	if store != nil {
		defer store.Close()
	}

	notifier := notify.New(
		notify.Config{Target: target, RatePerSec: cfg.Notify.RatePerSec},
		tg, store, log.With(logx.String("comp", "notify")),
	)

	client := practicum.NewClient(practicum.ClientConfig{
		Token:    creds.APIToken,
		Endpoint: cfg.Endpoint,
		Timeout:  httpTimeout,
	})

	schedule := cfg.Schedule
	if schedule == "" {
		schedule = watcher.DefaultSchedule
	}
	trigger, err := watcher.NewTrigger(schedule)
	if err != nil {
		log.Error("fatal: bad schedule", logx.String("schedule", schedule), logx.Err(err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Hot-reload: only the logging section is applied live. Credentials and
	// the schedule are fixed for the process lifetime.
	if cfgPath != "" {
		go func() {
			err := config.Watch(ctx, cfgPath, log.With(logx.String("comp", "config")), func(next *config.File) {
				logSvc.Apply(loggingConfig(next.Logging))
			})
			if err != nil {
				log.Warn("config watch unavailable", logx.Err(err))
			}
		}()
	}

	w := watcher.New(client, notifier, trigger, log.With(logx.String("comp", "watcher")))

	_, _ = daemon.SdNotify(false, daemon.SdNotifyReady)
	_ = w.Run(ctx)
	_, _ = daemon.SdNotify(false, daemon.SdNotifyStopping)
}

func loggingConfig(c config.LoggingConfig) logx.Config {
	return logx.Config{
		Level:   c.Level,
		Console: c.Console,
		File:    logx.FileConfig{Enabled: c.File.Enabled, Path: c.File.Path},
		Telegram: logx.TelegramConfig{
			Enabled:    c.Telegram.Enabled,
			MinLevel:   c.Telegram.MinLevel,
			RatePerSec: c.Telegram.RatePerSec,
		},
	}
}

func openStorage(cfg *config.File, log logx.Logger) (storage.Store, error) {
	if cfg.Storage == nil {
		return nil, nil
	}
	busy, err := config.ParseDurationField("storage.busy_timeout", cfg.Storage.BusyTimeout)
	if err != nil {
		return nil, err
	}
	return storage.Open(storage.Config{
		Driver:      cfg.Storage.Driver,
		Path:        cfg.Storage.Path,
		BusyTimeout: busy,
	}, log.With(logx.String("comp", "storage")))
}
