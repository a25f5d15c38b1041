package main

import (
	"fmt"
	"log"
	"net/http"

	"datawarden/internal/config"
	"datawarden/internal/handler"
	"datawarden/internal/llm/gemini"
	"datawarden/internal/router"
	"datawarden/internal/service"
	"datawarden/internal/stream"
)

// @title DataWarden API
// @version 1.0
// @description Data-governance assistant: SQL compliance checks and field sensitivity classification backed by a streaming LLM.
// @BasePath /api/v1
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	// A missing credential means no feature can work; abort before serving.
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Initialize model service client and streaming pipeline
	streamer := gemini.NewStreamer(&cfg.Gemini)
	renderer := stream.NewRenderer(streamer)

	// Initialize services
	checkSvc := service.NewCheckService()
	sampleSvc := service.NewSampleService(&cfg.Upload)

	// Initialize handlers
	checkH := handler.NewCheckHandler(checkSvc, renderer)
	sampleH := handler.NewSampleHandler(sampleSvc)
	healthH := handler.NewHealthHandler(cfg)
	webH := handler.NewWebHandler()

	// Setup router
	r := router.Setup(cfg, checkH, sampleH, healthH, webH)

	srv := &http.Server{
		Addr:        cfg.Server.Port,
		Handler:     r,
		ReadTimeout: cfg.Server.ReadTimeout,
		// WriteTimeout stays at the configured value; the default of zero
		// keeps long-lived SSE responses from being cut off mid-stream.
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Printf("Server starting on %s (model %s)", cfg.Server.Port, streamer.Model())
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
