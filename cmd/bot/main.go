package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"

	"github.com/uniagenda/agenda-bot/internal/app"
	"github.com/uniagenda/agenda-bot/internal/bot/handlers"
	"github.com/uniagenda/agenda-bot/internal/config"
	"github.com/uniagenda/agenda-bot/internal/db"
	"github.com/uniagenda/agenda-bot/internal/jobs"
	"github.com/uniagenda/agenda-bot/internal/logging"
	"github.com/uniagenda/agenda-bot/internal/notify"
	"github.com/uniagenda/agenda-bot/internal/observability"
	"github.com/uniagenda/agenda-bot/internal/university"
)

var release = "dev"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer lg.Closer()
	sugar := lg.Sugar

	flushSentry, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, release)
	if err != nil {
		sugar.Warnw("sentry init", "err", err)
	}
	defer flushSentry()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		sugar.Fatalw("db open", "err", err)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		sugar.Fatalw("db migrate", "err", err)
	}

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		sugar.Fatalw("bot init", "err", err)
	}
	sugar.Infow("bot started", "username", bot.Self.UserName, "env", cfg.Env)

	env := &handlers.Env{
		DB:      database,
		Cfg:     cfg,
		Uni:     university.NewClient(cfg.UniversityBaseURL, cfg.SubjectPageBase),
		Linkage: notify.NewLinkage(db.LinkStore{DB: database}, db.ReminderScheduler{DB: database}, sugar),
		Log:     sugar,
	}

	app.StartHTTP(ctx, cfg.HTTPAddr, database)

	runner := jobs.New(ctx)
	jobs.StartReminderLoop(runner, bot, database, env.Linkage, sugar)

	dispatcher := app.NewDispatcher(env, bot)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			sugar.Info("shutting down")
			return
		case update := <-updates:
			dispatcher.Handle(update)
		}
	}
}
