// tenderd — streaming execution server for the tender analysis agent.
// Serves the chat HTTP API, runs agents as detached background tasks and
// streams their event logs over SSE.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/tendersuite/tenderd/pkg/agent"
	"github.com/tendersuite/tenderd/pkg/api"
	"github.com/tendersuite/tenderd/pkg/cleanup"
	"github.com/tendersuite/tenderd/pkg/config"
	"github.com/tendersuite/tenderd/pkg/database"
	"github.com/tendersuite/tenderd/pkg/driver"
	"github.com/tendersuite/tenderd/pkg/registry"
	"github.com/tendersuite/tenderd/pkg/services"
	"github.com/tendersuite/tenderd/pkg/version"
	"github.com/tendersuite/tenderd/pkg/watcher"
)

func main() {
	envFile := flag.String("env-file", ".env", "Path to .env file")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", *envFile, "error", err)
	} else {
		slog.Info("Loaded environment", "path", *envFile)
	}

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Starting tenderd",
		"version", version.Full(), "http_port", cfg.HTTPPort, "agent_graph", cfg.AgentGraphURL)

	// 2. Database (migrations auto-applied)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	chatService := services.NewChatService(dbClient.Client)
	messageService := services.NewMessageService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client, dbClient.DB())
	slog.Info("Services initialized")

	// 4. Agent graph client
	// Note: grpc.NewClient uses lazy dialing; actual connection happens on first RPC call
	graph, err := agent.NewGRPCGraph(cfg.AgentGraphURL)
	if err != nil {
		slog.Error("Failed to initialize agent graph client", "addr", cfg.AgentGraphURL, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := graph.Close(); err != nil {
			slog.Error("Error closing agent graph client", "error", err)
		}
	}()
	slog.Info("Agent graph client initialized", "addr", cfg.AgentGraphURL)

	// 5. Streaming infrastructure
	reg := registry.New()
	contexts := agent.NewContextBuilder(cfg.ContextDir)
	drv := driver.New(eventService, messageService, chatService, graph, contexts, cfg.Streaming)
	w := watcher.New(eventService, reg, watcher.Config{
		PollInterval: cfg.Streaming.PollInterval,
		MaxWait:      cfg.Streaming.MaxWait,
	})

	// 6. Retention loop
	cleanupService := cleanup.NewService(&cfg.Retention, reg, eventService)
	cleanupService.Start(ctx)

	// 7. HTTP server (non-blocking)
	server := api.NewServer(dbClient, chatService, messageService, eventService, reg, drv, w)
	httpServer := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("tenderd started successfully")

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown: stop accepting requests first so no new agents
	// start, then stop the agents, then the retention loop, then the DB
	// (via the deferred closes).
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 10*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	regDone := make(chan struct{})
	go func() {
		reg.Shutdown()
		close(regDone)
	}()
	select {
	case <-regDone:
		slog.Info("Agent registry stopped gracefully")
	case <-time.After(30 * time.Second):
		slog.Warn("Registry shutdown timeout exceeded, agents may not have flushed")
	}

	cleanupService.Stop()

	slog.Info("Shutdown complete")
}
