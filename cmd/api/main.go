package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"personal-assistant/config"
	_ "personal-assistant/docs" // Swagger docs
	"personal-assistant/internal/httpserver"
	meetingRepo "personal-assistant/internal/meeting/repository"
	meetingMemory "personal-assistant/internal/meeting/repository/memory"
	meetingPostgre "personal-assistant/internal/meeting/repository/postgre"
	"personal-assistant/internal/middleware"
	taskRepo "personal-assistant/internal/task/repository"
	taskMemory "personal-assistant/internal/task/repository/memory"
	taskPostgre "personal-assistant/internal/task/repository/postgre"
	"personal-assistant/pkg/datemath"
	"personal-assistant/pkg/gcalendar"
	"personal-assistant/pkg/llmprovider"
	"personal-assistant/pkg/log"
	"personal-assistant/pkg/postgre"
	"personal-assistant/pkg/scope"
	"personal-assistant/pkg/telegram"
)

// @title       Personal Assistant API
// @description Chat assistant that manages tasks and meetings from natural-language messages.
// @version     1
// @host        localhost:8000
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "personal-assistant:", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Personal Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		return fmt.Errorf("initialize llm providers: %w", err)
	}
	managerCfg, err := llmprovider.ManagerConfig(&cfg.LLM)
	if err != nil {
		return fmt.Errorf("llm manager config: %w", err)
	}
	llm := llmprovider.NewManager(providers, managerCfg, logger)
	logger.Infof(ctx, "LLM providers ready: %d", len(providers))

	// 4. Date parser
	dateMathParser, err := datemath.NewParser(cfg.Assistant.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Assistant.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 5. Storage
	var (
		tasks    taskRepo.Repository
		meetings meetingRepo.Repository
		db       httpserver.Pinger
	)
	if cfg.Database.URL != "" {
		pool, dbErr := postgre.Connect(ctx, postgre.Config{
			URL:                cfg.Database.URL,
			MaxConns:           cfg.Database.MaxConns,
			MinConns:           cfg.Database.MinConns,
			SlowQueryThreshold: cfg.Database.SlowQueryThreshold,
		}, logger)
		if dbErr != nil {
			return fmt.Errorf("connect database: %w", dbErr)
		}
		defer pool.Close()

		if err := postgre.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}

		tasks = taskPostgre.New(pool, logger)
		meetings = meetingPostgre.New(pool, logger)
		db = pool
	} else {
		logger.Warn(ctx, "database.url is empty, using the in-memory store (data is lost on restart)")
		tasks = taskMemory.New()
		meetings = meetingMemory.New()
	}

	// 6. Auth
	var jwtManager scope.Manager
	if cfg.Security.EnableJWT {
		jwtManager, err = scope.New(cfg.Security.SecretKey)
		if err != nil {
			return fmt.Errorf("jwt manager: %w", err)
		}
		logger.Info(ctx, "Bearer auth enabled on /api")
	}

	// 7. Google Calendar (optional)
	var calendar gcalendar.ICalendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := newCalendarClient(ctx, cfg.GoogleCalendar)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "→ Run `go run ./scripts/gcal-auth` to generate token.json")
		} else {
			calendar = calendarClient
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	}

	// 8. Telegram (optional)
	var bot *telegram.Bot
	if cfg.Telegram.BotToken != "" {
		bot = telegram.NewBot(cfg.Telegram.BotToken)
		go registerTelegramWebhook(ctx, logger, bot, cfg.Telegram)
	} else {
		logger.Info(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is not set")
	}

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ReadTimeout:     cfg.HTTPServer.ReadTimeout,
		WriteTimeout:    cfg.HTTPServer.WriteTimeout,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		JWTManager:      jwtManager,
		Middleware: middleware.Config{
			CORSOrigins:     cfg.CORS.AllowedOrigins,
			RateLimitPerMin: cfg.RateLimit.ChatPerMin,
		},
		DB:             db,
		TaskRepo:       tasks,
		MeetingRepo:    meetings,
		LLM:            llm,
		DateMath:       dateMathParser,
		Calendar:       calendar,
		CalendarID:     cfg.GoogleCalendar.CalendarID,
		TelegramBot:    bot,
		TelegramSecret: cfg.Telegram.Secret,
	})
	if err != nil {
		return fmt.Errorf("initialize http server: %w", err)
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		return fmt.Errorf("run server: %w", err)
	}

	logger.Info(ctx, "Server stopped gracefully")
	return nil
}

func newCalendarClient(ctx context.Context, cfg config.GoogleCalendarConfig) (*gcalendar.Client, error) {
	data, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	return gcalendar.NewClientWithToken(ctx, data, cfg.TokenPath)
}

// registerTelegramWebhook points Telegram at this server, auto-detecting an
// ngrok tunnel when no webhook URL is configured.
func registerTelegramWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" {
		ngrokURL, err := detectNgrokURL(ctx, cfg.NgrokAPI, ngrokAttempts, ngrokInterval)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = ngrokURL + "/webhook/telegram"
		logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}

	if err := bot.SetWebhook(ctx, webhookURL, cfg.Secret); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
}
