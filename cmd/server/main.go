package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/network/netpoll"
	"github.com/spf13/cobra"

	"github.com/peng15653830a/springai-chat-sub004/internal/config"
	"github.com/peng15653830a/springai-chat-sub004/internal/handler"
	"github.com/peng15653830a/springai-chat-sub004/internal/hub"
	infradb "github.com/peng15653830a/springai-chat-sub004/internal/infrastructure/database"
	"github.com/peng15653830a/springai-chat-sub004/internal/infrastructure/llm"
	"github.com/peng15653830a/springai-chat-sub004/internal/infrastructure/search"
	"github.com/peng15653830a/springai-chat-sub004/internal/router"
	"github.com/peng15653830a/springai-chat-sub004/internal/tool"
	"github.com/peng15653830a/springai-chat-sub004/internal/usecase"
	dbpkg "github.com/peng15653830a/springai-chat-sub004/pkg/database"
	"github.com/peng15653830a/springai-chat-sub004/pkg/logger"
)

var (
	cfgFile string
	version = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:   "chat-apiserver",
	Short: "Streaming chat API server",
	Long: `chat-apiserver is a high-performance HTTP API server built with the Hertz framework.
It streams model responses over SSE, fans events out to conversation viewers,
and persists conversations, messages, and tool results to MySQL.`,
	Version: version,
	Run:     runServer,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "configs/config.yaml", "path to config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runServer(cmd *cobra.Command, args []string) {
	// Load configuration
	cfg, err := config.Load(cfgFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Setup(cfg.Log); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	slog.Info("config loaded successfully", "config_file", cfgFile)
	slog.Info("chat API server starting...",
		"version", version,
		"config", cfgFile,
	)

	// Setup Hertz to use slog
	hertzLogger := logger.NewHertzSlogAdapter(slog.Default())
	hlog.SetLogger(hertzLogger)
	hlog.SetLevel(hlog.LevelDebug)

	// Initialize database
	dbClient, sqlDB, err := dbpkg.NewClient(cfg.Database, slog.Default())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := infradb.NewUserRepository(dbClient)
	prefRepo := infradb.NewPreferenceRepository(dbClient)
	conversationRepo := infradb.NewConversationRepository(dbClient)
	messageRepo := infradb.NewMessageRepository(dbClient)
	toolResultRepo := infradb.NewToolResultRepository(dbClient)

	// Event hub and model providers
	events := hub.New(cfg.Streaming.ViewerBuffer, slog.Default())

	providers, err := llm.NewRegistryFromConfig(cfg, slog.Default())
	if err != nil {
		slog.Error("failed to initialize model providers", "error", err)
		os.Exit(1)
	}

	// Search and tools
	searchSvc := search.NewTavilyService(cfg.Search, slog.Default())
	tools := tool.NewRegistry(slog.Default())
	tools.Register(tool.NewWebSearch(searchSvc, toolResultRepo, events, cfg.Search.MaxToolCalls, slog.Default()))

	// Usecases
	selector := usecase.NewModelSelector(cfg, prefRepo, slog.Default())
	prompts := usecase.NewPromptBuilder(messageRepo, slog.Default())
	chatUsecase := usecase.NewChatUsecase(
		cfg,
		conversationRepo,
		messageRepo,
		toolResultRepo,
		selector,
		prompts,
		providers,
		tools,
		events,
		slog.Default(),
	)
	userUsecase := usecase.NewUserUsecase(cfg, userRepo, prefRepo, slog.Default())

	// Handlers
	userHandler := handler.NewUserHandler(userUsecase, cfg.JWT.Secret, slog.Default())
	chatHandler := handler.NewChatHandler(chatUsecase, events, slog.Default())
	messageHandler := handler.NewMessageHandler(chatUsecase, slog.Default())
	modelHandler := handler.NewModelHandler(cfg, userUsecase, slog.Default())
	healthHandler := handler.NewHealthHandler(sqlDB, searchSvc)

	slog.Info("handlers initialized")

	// Create Hertz server with performance optimization
	h := server.Default(
		server.WithHostPorts(cfg.GetServerAddr()),
		server.WithReadTimeout(cfg.GetReadTimeout()),
		server.WithWriteTimeout(cfg.GetWriteTimeout()),
		server.WithMaxRequestBodySize(cfg.Server.MaxRequestBodySize*1024*1024),
		server.WithTransport(netpoll.NewTransporter),
	)

	// Setup routes
	router.Setup(h, userHandler, chatHandler, messageHandler, modelHandler, healthHandler)

	slog.Info("server started successfully",
		"address", cfg.GetServerAddr(),
		"mode", cfg.Server.Mode,
	)

	// Graceful shutdown
	go func() {
		if err := h.Run(); err != nil {
			slog.Error("server run failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := h.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}

	if err := dbpkg.Close(dbClient, slog.Default()); err != nil {
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
