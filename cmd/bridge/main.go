package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/storefront-br/pix-checkout-bridge/internal/adapters/attribution"
	"github.com/storefront-br/pix-checkout-bridge/internal/adapters/gateway"
	"github.com/storefront-br/pix-checkout-bridge/internal/adapters/handler"
	"github.com/storefront-br/pix-checkout-bridge/internal/adapters/store"
	"github.com/storefront-br/pix-checkout-bridge/internal/config"
	"github.com/storefront-br/pix-checkout-bridge/internal/core/ports"
	"github.com/storefront-br/pix-checkout-bridge/internal/core/service"
	"github.com/storefront-br/pix-checkout-bridge/internal/middleware"
	"github.com/storefront-br/pix-checkout-bridge/internal/worker"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting checkout bridge",
		"port", cfg.Server.Port,
		"store_driver", cfg.Store.Driver,
		"log_level", cfg.Logger.Level,
	)

	ctx := context.Background()

	var trackingStore ports.TrackingStore
	var reapable ports.ReapableStore

	switch cfg.Store.Driver {
	case "postgres":
		db, err := store.Connect(ctx, &cfg.Database, logger)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		pgStore := store.NewPostgresStore(db, cfg.Store.TTL)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			logger.Error("failed to prepare tracking schema", "error", err)
			os.Exit(1)
		}
		trackingStore = pgStore
		reapable = pgStore
	default:
		memStore := store.NewMemoryStore()
		trackingStore = memStore
		reapable = memStore
	}

	gatewayClient := gateway.NewClient(cfg.Gateway)
	attributionClient := attribution.NewClient(cfg.Attribution)

	checkoutService := service.NewCheckoutService(
		trackingStore,
		gatewayClient,
		attributionClient,
		cfg.App.BaseURL,
		logger,
	)
	statusService := service.NewStatusService(gatewayClient)
	webhookService := service.NewWebhookService(trackingStore, attributionClient, logger)

	h := handler.NewBridgeHandler(
		checkoutService,
		statusService,
		webhookService,
		cfg.Webhook.Secret,
		logger,
	)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	router := http.Handler(mux)

	hndlr := middleware.Recovery(logger)(router)
	hndlr = middleware.Logging(logger)(hndlr)
	hndlr = middleware.Timeout(cfg.Server.ReadTimeout)(hndlr)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      hndlr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	cleanupWorker := worker.NewCleanupWorker(
		reapable,
		cfg.Worker.Interval,
		cfg.Store.TTL,
		logger,
	)

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	go cleanupWorker.Start(workerCtx)

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	cancelWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
