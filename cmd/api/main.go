package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"chat-task-assistant/config"
	_ "chat-task-assistant/docs" // Swagger docs
	agentHTTP "chat-task-assistant/internal/agent/delivery/http"
	agentUC "chat-task-assistant/internal/agent/usecase"
	"chat-task-assistant/internal/httpserver"
	taskHTTP "chat-task-assistant/internal/task/delivery/http"
	"chat-task-assistant/internal/task/repository/sqlite"
	taskUC "chat-task-assistant/internal/task/usecase"
	"chat-task-assistant/pkg/datemath"
	"chat-task-assistant/pkg/log"
	"chat-task-assistant/pkg/openai"
)

// @title       Chat Task Assistant API
// @description Chat-driven task assistant: natural-language task capture with LLM classification, extraction and advice.
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

	logger.Info(ctx, "Starting Chat Task Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. DateMath parser
	dateMath, err := datemath.NewParser(cfg.Agent.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Agent.Timezone, err)
		dateMath, _ = datemath.NewParser("UTC")
	}

	// 4. Task store
	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Errorf(ctx, "Failed to open database %q: %v", cfg.Database.Path, err)
		return
	}
	defer db.Close()

	taskRepo := sqlite.New(db, dateMath.Location(), logger)

	// 5. LLM client
	var httpClient *http.Client
	if cfg.OpenAI.Timeout > 0 {
		httpClient = &http.Client{Timeout: cfg.OpenAI.Timeout}
	}
	llm, err := openai.New(openai.Config{
		APIKey:     cfg.OpenAI.APIKey,
		Model:      cfg.OpenAI.Model,
		BaseURL:    cfg.OpenAI.BaseURL,
		HTTPClient: httpClient,
		CacheTTL:   cfg.OpenAI.CacheTTL,
		CacheSize:  cfg.OpenAI.CacheSize,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize OpenAI client: %v", err)
		return
	}
	logger.Infof(ctx, "OpenAI client initialized with model %s", llm.Model())

	// 6. UseCases and handlers
	agentUseCase := agentUC.New(logger, llm, taskRepo, dateMath)
	agentHandler := agentHTTP.New(logger, agentUseCase)

	taskUseCase := taskUC.New(taskRepo, logger)
	taskHandler := taskHTTP.New(logger, taskUseCase)

	// 7. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		AgentHandler: agentHandler,
		TaskHandler:  taskHandler,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
