package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"personal-fitness-trainer/internal/middleware"
	"personal-fitness-trainer/internal/model"
	"personal-fitness-trainer/internal/trainer"
	"personal-fitness-trainer/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin          *gin.Engine
	l            log.Logger
	port         int
	mode         string
	environment  model.Environment
	writeTimeout time.Duration
	corsOrigins  []string

	// Trainer domain
	trainerUC     trainer.UseCase
	maxImageBytes int64
	middlewareCfg middleware.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// WriteTimeout must exceed the model call timeout.
	WriteTimeout time.Duration
	CORSOrigins  []string
	RateLimit    middleware.Config

	// Trainer domain
	TrainerUseCase trainer.UseCase
	MaxImageBytes  int64
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.Default(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   model.ParseEnvironment(cfg.Environment),
		writeTimeout:  cfg.WriteTimeout,
		corsOrigins:   cfg.CORSOrigins,
		trainerUC:     cfg.TrainerUseCase,
		maxImageBytes: cfg.MaxImageBytes,
		middlewareCfg: cfg.RateLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
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
	if srv.trainerUC == nil {
		return errors.New("trainer use case is required")
	}
	return nil
}
