package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartcity-complaints/config"
	"smartcity-complaints/config/postgre"
	_ "smartcity-complaints/docs" // Swagger docs
	"smartcity-complaints/internal/httpserver"
	"smartcity-complaints/pkg/log"
	"smartcity-complaints/pkg/ollama"
	"smartcity-complaints/pkg/vision"
	"smartcity-complaints/pkg/whisper"
)

// @title       Smart City Complaints API
// @description Citizen complaint intake with text, voice, and image entry points, backed by a local LLM.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
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

	logger.Info(ctx, "Starting Smart City Complaints...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Ollama endpoint: %s (model %s)", cfg.Ollama.Endpoint, cfg.Ollama.Model)

	// 3. Postgres
	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to postgres: ", err)
		return
	}
	defer db.Close()

	// 4. Ollama client
	llm := ollama.NewClient(ollama.Config{
		Endpoint:          cfg.Ollama.Endpoint,
		Model:             cfg.Ollama.Model,
		RequestsPerMinute: cfg.Ollama.RequestsPerMinute,
		Timeout:           time.Duration(cfg.Ollama.TimeoutSeconds) * time.Second,
	})

	// 5. Whisper engine (optional)
	var transcriber whisper.Transcriber
	if cfg.Whisper.ModelPath != "" {
		engine, whErr := whisper.New(whisper.Config{
			ModelPath: cfg.Whisper.ModelPath,
			Language:  cfg.Whisper.Language,
			Workers:   cfg.Whisper.Workers,
		})
		if whErr != nil {
			logger.Error(ctx, "Failed to load whisper model: ", whErr)
			return
		}
		defer engine.Close()
		transcriber = engine
		logger.Infof(ctx, "Whisper model loaded from %s", cfg.Whisper.ModelPath)
	} else {
		logger.Warn(ctx, "No whisper model configured, voice submissions disabled")
	}

	// 6. Vision classifier
	visionClassifier := vision.NewClient(vision.Config{Endpoint: cfg.Vision.Endpoint})
	if cfg.Vision.Endpoint == "" {
		logger.Warn(ctx, "No vision endpoint configured, images get the generic label")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  db,
		LLM:         llm,
		Transcriber: transcriber,
		Vision:      visionClassifier,
		ReplyMode:   cfg.Reply.Mode,
		CacheSize:   cfg.Classifier.CacheSize,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
