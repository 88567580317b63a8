package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	pgRepo "newsdesk/internal/infra/adapter/persistence/postgres"
	"newsdesk/internal/infra/db"
	"newsdesk/internal/observability/logging"
	"newsdesk/internal/observability/tracing"

	artUC "newsdesk/internal/usecase/article"
	commentUC "newsdesk/internal/usecase/comment"
	topicUC "newsdesk/internal/usecase/topic"
	userUC "newsdesk/internal/usecase/user"

	hhttp "newsdesk/internal/handler/http"
	"newsdesk/internal/handler/http/apidoc"
	harticle "newsdesk/internal/handler/http/article"
	hcomment "newsdesk/internal/handler/http/comment"
	"newsdesk/internal/handler/http/requestid"
	htopic "newsdesk/internal/handler/http/topic"
	huser "newsdesk/internal/handler/http/user"
)

func main() {
	logger := initLogger()
	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	handler, refreshGauges := setupServer(logger, database, version)

	runServer(logger, handler, refreshGauges, version)
}

// initLogger initializes the structured logger and installs it as default.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer wires repositories, services, routes and middleware, and
// returns the root handler plus a business-gauge refresh function.
func setupServer(logger *slog.Logger, database *sql.DB, version string) (http.Handler, func(context.Context)) {
	topicSvc := &topicUC.Service{Repo: pgRepo.NewTopicRepo(database)}
	artSvc := &artUC.Service{Repo: pgRepo.NewArticleRepo(database)}
	commentSvc := &commentUC.Service{Repo: pgRepo.NewCommentRepo(database)}
	userSvc := &userUC.Service{Repo: pgRepo.NewUserRepo(database)}

	mux := http.NewServeMux()
	apidoc.Register(mux)
	htopic.Register(mux, topicSvc)
	harticle.Register(mux, artSvc)
	hcomment.Register(mux, commentSvc, artSvc)
	huser.Register(mux, userSvc)

	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	// Middleware chain, applied in reverse (innermost first):
	// request id -> tracing -> recovery -> logging -> body limit -> metrics
	var handler http.Handler = mux
	handler = hhttp.MetricsMiddleware(handler)
	handler = hhttp.LimitRequestBody(1 << 20)(handler) // 1MB limit
	handler = hhttp.Logging(logger)(handler)
	handler = hhttp.Recover(logger)(handler)
	handler = tracing.Middleware(handler)
	handler = requestid.Middleware(handler)

	refreshGauges := func(ctx context.Context) {
		if count, err := artSvc.Count(ctx); err == nil {
			hhttp.UpdateArticlesTotal(count)
		}
		if count, err := commentSvc.Count(ctx); err == nil {
			hhttp.UpdateCommentsTotal(count)
		}
	}

	return handler, refreshGauges
}

// runServer starts the HTTP server, keeps the business gauges fresh, and
// handles graceful shutdown on SIGINT/SIGTERM.
func runServer(logger *slog.Logger, handler http.Handler, refreshGauges func(context.Context), version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		refreshGauges(ctx)
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				refreshGauges(ctx)
			}
		}
	}()

	addr := ":" + port()
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}

func port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}
