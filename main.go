package main

import (
	"flag"
	"log/slog"

	"HotelOS/ai/assistant"
	"HotelOS/bot"
	"HotelOS/impl/core"
	"HotelOS/internal/cache"
	"HotelOS/internal/config"
	repository "HotelOS/internal/database"
	"HotelOS/internal/http-server/api"
	"HotelOS/internal/lib/logger"
	"HotelOS/internal/lib/sl"
	"HotelOS/internal/service/auth"
	statesync "HotelOS/internal/service/sync"
	"HotelOS/internal/service/write"
	"HotelOS/internal/ws"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	logPath := flag.String("log", "/var/log/", "path to log file directory")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env, *logPath)

	// Initialize Telegram bot if enabled
	var tgBot *bot.TgBot
	if conf.Telegram.Enabled {
		var err error
		tgBot, err = bot.NewTgBot(conf.Telegram.BotName, conf.Telegram.ApiKey, conf.Telegram.AdminId, lg)
		if err != nil {
			lg.Error("failed to initialize telegram bot", slog.String("error", err.Error()))
		} else {
			// Set up Telegram handler for the logger
			lg = logger.SetupTelegramHandler(lg, tgBot, slog.LevelError)
			lg.With(
				slog.String("bot_name", conf.Telegram.BotName),
			).Info("telegram bot initialized")

			// Start the bot in a goroutine
			go func() {
				if err := tgBot.Start(); err != nil {
					lg.Error("telegram bot error", slog.String("error", err.Error()))
				}
			}()
		}
	}

	lg.Info("starting hotelos", slog.String("config", *configPath), slog.String("env", conf.Env))
	lg.Debug("debug messages enabled")

	handler := core.New(lg)

	store, err := cache.NewStore(conf.Cache.Dir, lg)
	if err != nil {
		lg.With(
			sl.Err(err),
		).Error("cache store")
		return
	}

	syncer := statesync.NewSyncer(store, lg)
	go syncer.Run()
	handler.SetSyncer(syncer)

	authService := auth.NewAuthService(lg)
	handler.SetAuthService(authService)

	db, err := repository.NewMongoClient(conf, lg)
	if err != nil {
		lg.With(
			sl.Err(err),
		).Error("mongo client")
	}
	if db != nil {
		authService.SetRepository(db)

		manager := statesync.NewManager(db, syncer, lg)
		handler.SetManager(manager)

		coordinator := write.NewCoordinator(db, lg)
		handler.SetCoordinator(coordinator)

		lg.With(
			slog.String("host", conf.Mongo.Host),
			slog.String("port", conf.Mongo.Port),
			slog.String("user", conf.Mongo.User),
			slog.String("database", conf.Mongo.Database),
		).Info("mongo client initialized")
	}

	if conf.OpenAI.ApiKey != "" {
		concierge := assistant.NewConcierge(conf, lg)
		concierge.SetStateProvider(syncer)
		handler.SetAssistant(concierge)
		lg.With(
			sl.Secret("openai_key", conf.OpenAI.ApiKey),
			slog.String("model", conf.OpenAI.Model),
		).Info("concierge initialized")
	}

	hub := ws.NewHub(lg)
	hub.SetHandler(handler)
	go hub.Run()
	syncer.SetBroadcaster(hub)
	handler.SetBroadcaster(hub)

	if tgBot != nil {
		tgBot.SetStatusProvider(handler)
		syncer.SetNotifier(tgBot)
	}

	handler.Init()

	// *** blocking start with http server ***
	err = api.New(conf, lg, handler, hub)
	if err != nil {
		lg.Error("server start", sl.Err(err))
		return
	}
	lg.Error("service stopped")
}
