package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/robfig/cron/v3"

	"confhub/config"
	"confhub/internal/adapters/connpass"
	"confhub/internal/domain"
	"confhub/internal/repository/postgres"
	"confhub/internal/repository/sqlite"
	"confhub/internal/services"

	_ "github.com/lib/pq"
)

const syncTimeout = 10 * time.Minute

func main() {
	var (
		monthsFlag   = flag.String("months", "", "explicit target months as comma separated YYYYMM values (default: next N months from config)")
		scheduleFlag = flag.String("schedule", "", "cron schedule for repeated collection (empty runs one collection and exits)")
	)
	flag.Parse()

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
	svc := services.NewEventService(repo, loc, syncTimeout)
	source := connpass.NewSource(connpass.NewClient(nil), connpass.KeywordClassifier{}, logger, cfg.ConnpassInterval)

	run := func(ctx context.Context) {
		months := connpass.ParseTargetMonths(*monthsFlag)
		if len(months) == 0 {
			months = connpass.TargetMonths(time.Now().In(loc), cfg.ConnpassMonths)
		}
		logger.Info("collection starting", "months", months)
		stored, err := svc.SyncEvents(ctx, source, months)
		if err != nil {
			logger.Error("collection failed", "err", err)
			return
		}
		logger.Info("collection finished", "stored", stored)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	if *scheduleFlag == "" {
		run(ctx)
		return
	}

	runScheduled(ctx, logger, *scheduleFlag, run)
}

// runScheduled drives run on the given cron schedule until ctx is cancelled.
func runScheduled(ctx context.Context, logger *slog.Logger, spec string, run func(context.Context)) {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() { run(ctx) }); err != nil {
		logger.Error("invalid cron schedule", "schedule", spec, "err", err)
		os.Exit(1)
	}
	logger.Info("collector scheduled", "schedule", spec)
	c.Start()
	<-ctx.Done()
	stopCtx := c.Stop()
	<-stopCtx.Done()
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
