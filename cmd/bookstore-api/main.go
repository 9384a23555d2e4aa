package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/mruizdev/bookstore-backoffice/internal/bookstore/adapters/storage/sqlite"
	"github.com/mruizdev/bookstore-backoffice/internal/bookstore/core/services"
	"github.com/mruizdev/bookstore-backoffice/internal/bookstore/infra/httpx"
	"github.com/mruizdev/bookstore-backoffice/internal/pkg/cache"
	"github.com/mruizdev/bookstore-backoffice/internal/pkg/telemetry"
)

func main() {
	telemetry.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if os.Getenv("OTEL_ENABLED") == "true" {
		shutdown, err := telemetry.SetupTracer(ctx, getEnv("OTEL_SERVICE_NAME", "bookstore-api"))
		if err != nil {
			slog.Error("failed to initialise tracer", "error", err)
			os.Exit(1)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				slog.Error("tracer shutdown error", "error", err)
			}
		}()
	}

	dbPath := getEnv("DB_PATH", "./data/bookstore.db")
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		slog.Error("failed to create data directory", "path", dbPath, "error", err)
		os.Exit(1)
	}

	store, err := sqlite.Open(dbPath)
	if err != nil {
		slog.Error("failed to open database", "path", dbPath, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}()

	var readCache cache.Cache
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		readCache = cache.NewRedisCache(redisAddr, "bookstore")
		slog.Info("read cache enabled", "addr", redisAddr)
	}

	books := store.Books()
	customers := store.Customers()
	orders := store.Orders()

	bookService := services.NewBookService(books)
	customerService := services.NewCustomerService(customers)
	orderService := services.NewOrderService(orders, services.NewResolver(books, customers))

	router := httpx.NewRouter(
		httpx.NewBookHandler(bookService, readCache),
		httpx.NewCustomerHandler(customerService, readCache),
		httpx.NewOrderHandler(orderService),
	)

	addr := ":" + getEnv("PORT", "8080")
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("bookstore API running", "addr", addr, "db", dbPath)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
