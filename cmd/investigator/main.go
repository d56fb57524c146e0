// Investigator daemon — the local orchestrator behind the IDE's incident
// investigation panel. Serves the HTTP/SSE API, drives supervisor and
// specialist agents, and journals every investigation to PostgreSQL.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/agentkube/investigator/pkg/api"
	"github.com/agentkube/investigator/pkg/cleanup"
	"github.com/agentkube/investigator/pkg/config"
	"github.com/agentkube/investigator/pkg/database"
	"github.com/agentkube/investigator/pkg/events"
	"github.com/agentkube/investigator/pkg/llm"
	"github.com/agentkube/investigator/pkg/masking"
	"github.com/agentkube/investigator/pkg/orchestrator"
	"github.com/agentkube/investigator/pkg/services"
	"github.com/agentkube/investigator/pkg/session"
	"github.com/agentkube/investigator/pkg/todo"
	"github.com/agentkube/investigator/pkg/tools"
	"github.com/agentkube/investigator/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	slog.Info("Starting investigator",
		"version", version.Full(),
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration (built-ins merged with operator YAML)
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (runs embedded migrations)
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

	// 3. Services and streaming infrastructure
	taskService := services.NewTaskService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	emitter := events.NewEmitter(dbClient.DB())

	hub := events.NewHub()
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), hub)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NOTIFY listener", "error", err)
		os.Exit(1)
	}
	hub.SetListener(notifyListener)
	slog.Info("Event streaming initialized")

	// 4. Close out investigations orphaned by a previous crash, before
	// the API starts accepting new ones.
	if err := orchestrator.RecoverOrphans(ctx, taskService, emitter, slog.Default()); err != nil {
		slog.Error("Failed to recover orphaned tasks", "error", err)
		os.Exit(1)
	}

	// 5. Tool registry: cluster diagnostics, todos, shell, past lookups.
	// Every tool output passes through the masking service before it is
	// journaled, streamed, or fed back to the model.
	maskingService := masking.NewService(cfg.Masking)

	registry := tools.NewRegistry()
	registry.SetOutputFilter(maskingService.MaskToolOutput)
	if err := registry.RegisterAll(tools.ClusterDescriptors()...); err != nil {
		slog.Error("Failed to register cluster tools", "error", err)
		os.Exit(1)
	}
	if err := registry.RegisterAll(todo.Descriptors()...); err != nil {
		slog.Error("Failed to register todo tools", "error", err)
		os.Exit(1)
	}
	if err := registry.Register(tools.RunShellDescriptor()); err != nil {
		slog.Error("Failed to register shell tool", "error", err)
		os.Exit(1)
	}
	if err := registry.Register(tools.LookupDescriptor()); err != nil {
		slog.Error("Failed to register lookup tool", "error", err)
		os.Exit(1)
	}

	// 6. LLM provider clients, created lazily per provider config
	llmFactory := llm.NewFactory(slog.Default())
	defer func() {
		if err := llmFactory.Close(); err != nil {
			slog.Error("Error closing LLM clients", "error", err)
		}
	}()

	// 7. Supervisor over local tool backends
	sessions := session.NewManager()
	supervisor := orchestrator.NewSupervisor(orchestrator.Deps{
		Config:   cfg,
		Registry: registry,
		Tasks:    taskService,
		Emitter:  emitter,
		LLM:      llmFactory,
		Sessions: sessions,
		Cluster:  newKubectlCluster(),
		Shell:    newLocalShell(),
		Logger:   slog.Default(),
	})

	// 8. Retention janitor for aged-out investigations
	cleanupService := cleanup.NewService(cfg.Retention, taskService, cfg.System.TodoSnapshotDir)
	cleanupService.Start(ctx)

	// 9. HTTP server. Investigations run on runCtx: they survive client
	// disconnects and end only via abort or daemon shutdown.
	runCtx, stopRuns := context.WithCancel(ctx)
	defer stopRuns()

	httpServer := api.NewServer(runCtx, supervisor, sessions,
		taskService, eventService, hub, dbClient, slog.Default())

	errCh := make(chan error, 1)
	go func() {
		addr := cfg.System.ListenAddr
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Shutting down due to server error", "error", err)
	}

	// Stop in-flight investigations; their runs observe runCtx and close
	// out with cancelled status before the process exits.
	stopRuns()

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	cleanupService.Stop()
	notifyListener.Stop(ctx)

	slog.Info("Shutdown complete")
}
