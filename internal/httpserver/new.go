package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	meetingRepo "personal-assistant/internal/meeting/repository"
	"personal-assistant/internal/middleware"
	taskRepo "personal-assistant/internal/task/repository"
	"personal-assistant/pkg/datemath"
	"personal-assistant/pkg/gcalendar"
	"personal-assistant/pkg/llmprovider"
	"personal-assistant/pkg/log"
	"personal-assistant/pkg/scope"
	"personal-assistant/pkg/telegram"
)

// Pinger reports storage readiness. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration

	// Edge
	jwtManager scope.Manager
	mwConfig   middleware.Config

	// Storage
	db          Pinger
	taskRepo    taskRepo.Repository
	meetingRepo meetingRepo.Repository

	// Assistant domain
	llm        *llmprovider.Manager
	dateMath   *datemath.Parser
	calendar   gcalendar.ICalendar
	calendarID string

	// Telegram transport
	telegramBot    *telegram.Bot
	telegramSecret string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// JWTManager is nil when bearer auth is off.
	JWTManager scope.Manager
	Middleware middleware.Config

	// DB is nil for the in-memory store.
	DB          Pinger
	TaskRepo    taskRepo.Repository
	MeetingRepo meetingRepo.Repository

	LLM        *llmprovider.Manager
	DateMath   *datemath.Parser
	Calendar   gcalendar.ICalendar // optional
	CalendarID string

	TelegramBot    *telegram.Bot // optional
	TelegramSecret string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		readTimeout:     cfg.ReadTimeout,
		writeTimeout:    cfg.WriteTimeout,
		shutdownTimeout: cfg.ShutdownTimeout,
		jwtManager:      cfg.JWTManager,
		mwConfig:        cfg.Middleware,
		db:              cfg.DB,
		taskRepo:        cfg.TaskRepo,
		meetingRepo:     cfg.MeetingRepo,
		llm:             cfg.LLM,
		dateMath:        cfg.DateMath,
		calendar:        cfg.Calendar,
		calendarID:      cfg.CalendarID,
		telegramBot:     cfg.TelegramBot,
		telegramSecret:  cfg.TelegramSecret,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskRepo == nil || srv.meetingRepo == nil {
		return errors.New("task and meeting repositories are required")
	}
	if srv.llm == nil {
		return errors.New("llm manager is required")
	}
	if srv.dateMath == nil {
		return errors.New("date parser is required")
	}
	return nil
}
