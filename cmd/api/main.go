package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"personal-fitness-trainer/config"
	_ "personal-fitness-trainer/docs" // Swagger docs
	"personal-fitness-trainer/internal/httpserver"
	"personal-fitness-trainer/internal/middleware"
	geminiRepo "personal-fitness-trainer/internal/trainer/repository/gemini"
	"personal-fitness-trainer/internal/trainer/usecase"
	"personal-fitness-trainer/pkg/gemini"
	"personal-fitness-trainer/pkg/log"
)

// @title       Personalized Fitness Trainer API
// @description Body analysis, workout plans, nutrition plans and fitness tips backed by Gemini.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		if errors.Is(err, config.ErrMissingAPIKey) {
			fmt.Println("→ Set GEMINI_API_KEY in the environment or in a .env file")
		}
		os.Exit(1)
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

	logger.Info(ctx, "Starting Personalized Fitness Trainer...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Gemini clients, one per entry point
	vision, err := gemini.New(ctx, gemini.Config{
		APIKey:      cfg.Gemini.APIKey,
		APIURL:      cfg.Gemini.APIURL,
		Model:       cfg.Gemini.VisionModel,
		Timeout:     cfg.Gemini.Timeout,
		Temperature: cfg.Gemini.Temperature,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize vision model client: %v", err)
	}

	text, err := gemini.New(ctx, gemini.Config{
		APIKey:      cfg.Gemini.APIKey,
		APIURL:      cfg.Gemini.APIURL,
		Model:       cfg.Gemini.TextModel,
		Timeout:     cfg.Gemini.Timeout,
		Temperature: cfg.Gemini.Temperature,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize text model client: %v", err)
	}
	logger.Infof(ctx, "Gemini models: vision=%s text=%s", vision.Model(), text.Model())

	// 4. Trainer domain
	modelClient := geminiRepo.New(logger, vision, text, cfg.Gemini.Timeout)
	trainerUC := usecase.New(logger, modelClient)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		WriteTimeout: cfg.Gemini.Timeout + cfg.Gemini.Timeout/2,
		CORSOrigins:  cfg.CORS.AllowedOrigins,
		RateLimit: middleware.Config{
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			Burst:          cfg.RateLimit.Burst,
		},
		TrainerUseCase: trainerUC,
		MaxImageBytes:  cfg.Upload.MaxImageBytes,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
