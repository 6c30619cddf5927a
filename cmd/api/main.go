package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"confhub/config"
	_ "confhub/docs"
	httpdelivery "confhub/internal/delivery/http"
	"confhub/internal/delivery/http/controllers"
	"confhub/internal/delivery/http/middleware"
	"confhub/internal/domain"
	"confhub/internal/repository/postgres"
	"confhub/internal/repository/sqlite"
	"confhub/internal/services"
)

const (
	serviceTimeout  = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

// @title ConfHub API
// @version 0.1
// @description Tech conference catalog with filterable listings and calendar views.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, repo, err := openStore(cfg)
	if err != nil {
		logger.Error("failed to open event store", "driver", cfg.DBDriver, "err", err)
		os.Exit(1)
	}
	defer db.Close()

	loc := cfg.Location()
	svc := services.NewEventService(repo, loc, serviceTimeout)

	eventController := controllers.NewEventController(logger, svc)
	calendarController := controllers.NewCalendarController(logger, svc, loc)

	mux := httpdelivery.NewRouter(eventController, calendarController)
	handler := middleware.CORS(cfg.AllowedOrigins,
		middleware.LoggingMiddleware(logger, mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port, "driver", cfg.DBDriver, "timezone", cfg.Timezone)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "err", err)
	}
}

// openStore opens the configured database and wires the matching repository.
func openStore(cfg *config.Config) (*sql.DB, domain.EventRepository, error) {
	switch cfg.DBDriver {
	case "postgres":
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, nil, err
		}
		return db, postgres.NewEventRepository(db), nil
	default:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := sqlite.InitDB(db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return db, sqlite.NewEventRepository(db), nil
	}
}
