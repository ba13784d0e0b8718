package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/blockedby/openmeasures-gateway/internal/cli"
	"github.com/blockedby/openmeasures-gateway/internal/config"
	"github.com/blockedby/openmeasures-gateway/internal/gateway"
	"github.com/blockedby/openmeasures-gateway/internal/llm"
	"github.com/blockedby/openmeasures-gateway/internal/logger"
	"github.com/blockedby/openmeasures-gateway/internal/openmeasures"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("error loading config:", err)
		os.Exit(1)
	}

	// interactive tool: keep the console clean unless asked otherwise
	if os.Getenv("LOG_LEVEL") == "" {
		cfg.LogLevel = "warn"
	}
	if err := logger.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Println("error initializing logger:", err)
		os.Exit(1)
	}

	reader := bufio.NewReader(os.Stdin)

	fmt.Println("============================================================")
	fmt.Println("Open Measures API Search Tool")
	fmt.Println("============================================================")
	fmt.Println("\nChoose search mode:")
	fmt.Println("  1. Manual search (specify parameters yourself)")
	fmt.Println("  2. AI-powered search (natural language)")
	fmt.Print("\nEnter mode (1/2): ")
	mode, _ := reader.ReadString('\n')
	mode = strings.TrimSpace(mode)

	apiKey := cfg.ClaudeAPIKey
	if mode == "2" && apiKey == "" {
		fmt.Print("\nEnter your Claude API key: ")
		key, _ := reader.ReadString('\n')
		apiKey = strings.TrimSpace(key)
		if apiKey == "" {
			fmt.Println("Error: API key is required for AI search mode")
			os.Exit(1)
		}
	}

	searchClient := openmeasures.NewClient(openmeasures.Config{
		BaseURL: cfg.OMBaseURL,
		Timeout: time.Duration(cfg.OMTimeoutSec) * time.Second,
	})
	llmClient := llm.NewClient(llm.Config{
		APIURL:    cfg.ClaudeAPIURL,
		APIKey:    apiKey,
		Model:     cfg.ClaudeModel,
		MaxTokens: cfg.ClaudeMaxTokens,
		Timeout:   time.Duration(cfg.ClaudeTimeoutSec) * time.Second,
	})
	svc := gateway.New(searchClient, llmClient, logger.Get().Logger)

	session := cli.NewSession(svc, reader, os.Stdout)

	ctx := context.Background()
	if mode == "2" {
		err = session.RunAI(ctx)
	} else {
		err = session.RunManual(ctx)
	}
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
