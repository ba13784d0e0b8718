package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/blockedby/openmeasures-gateway/internal/api"
	"github.com/blockedby/openmeasures-gateway/internal/config"
	"github.com/blockedby/openmeasures-gateway/internal/gateway"
	"github.com/blockedby/openmeasures-gateway/internal/llm"
	"github.com/blockedby/openmeasures-gateway/internal/logger"
	"github.com/blockedby/openmeasures-gateway/internal/openmeasures"
)

func main() {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	if err := logger.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	log := logger.Get()
	log.Info().Msg("starting open measures gateway")

	if cfg.ClaudeAPIKey == "" {
		log.Warn().Msg("CLAUDE_API_KEY not set, /search will reject requests")
	}

	searchClient := openmeasures.NewClient(openmeasures.Config{
		BaseURL: cfg.OMBaseURL,
		Timeout: time.Duration(cfg.OMTimeoutSec) * time.Second,
	})
	llmClient := llm.NewClient(llm.Config{
		APIURL:    cfg.ClaudeAPIURL,
		APIKey:    cfg.ClaudeAPIKey,
		Model:     cfg.ClaudeModel,
		MaxTokens: cfg.ClaudeMaxTokens,
		Timeout:   time.Duration(cfg.ClaudeTimeoutSec) * time.Second,
	})
	log.Info().Str("model", cfg.ClaudeModel).Msg("llm client initialized")

	svc := gateway.New(searchClient, llmClient, log.Logger)
	router := api.NewRouter(api.NewHandler(svc))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: router,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info().Msg("received shutdown signal")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	log.Info().Int("port", cfg.HTTPPort).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server failed")
	}
	log.Info().Msg("server stopped")
}
