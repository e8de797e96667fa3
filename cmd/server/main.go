package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/httplog/v3"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/csg33k/roster-admin/internal/adapters/memory"
	"github.com/csg33k/roster-admin/internal/adapters/pdf"
	"github.com/csg33k/roster-admin/internal/adapters/rostercsv"
	sqliteadapter "github.com/csg33k/roster-admin/internal/adapters/sqlite"
	"github.com/csg33k/roster-admin/internal/config"
	"github.com/csg33k/roster-admin/internal/fixtures"
	"github.com/csg33k/roster-admin/internal/handlers"
	"github.com/csg33k/roster-admin/internal/lib/logger/sl"
	"github.com/csg33k/roster-admin/internal/metrics"
	"github.com/csg33k/roster-admin/internal/ports"
	"github.com/csg33k/roster-admin/internal/roster"
	"github.com/csg33k/roster-admin/internal/server"
	"github.com/csg33k/roster-admin/internal/service"
	"github.com/csg33k/roster-admin/internal/session"
	"github.com/csg33k/roster-admin/internal/validation"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		slog.Warn("error loading .env file", "err", err)
	}

	cfg := config.MustLoad()
	logger := setupLogger(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	repo, closeStore, err := openStore(ctx, cfg.Store, appMetrics)
	if err != nil {
		log.Fatalf("failed to open roster store: %v", err)
	}
	defer closeStore()

	addPolicy := validation.NewAddPolicy(cfg.Roster.CorporateDomain)
	svc := service.NewRoster(logger, repo, appMetrics, addPolicy,
		rostercsv.NewImporter(),
		rostercsv.NewExporter(),
		pdf.NewExporter(""),
	)
	sessions := session.NewStore(func() *roster.Controller {
		return roster.NewController(cfg.Roster.PageSize, cfg.Roster.Admin)
	}, session.DefaultMaxIdle, appMetrics)

	h := handlers.New(logger, svc, sessions, addPolicy.Domain())
	routes := h.Routes(
		server.NewHealthChecker(repo, cfg.Store.Driver, logger),
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true}),
	)

	logger.Info("roster admin starting",
		slog.String("addr", cfg.Addr()),
		slog.String("env", cfg.Env),
		slog.String("store", cfg.Store.Driver),
		slog.Int("page_size", cfg.Roster.PageSize),
	)
	if err := server.Run(ctx, logger, cfg.Addr(), routes, cfg.HTTP.ShutdownTimeout); err != nil {
		logger.Error("server stopped", sl.Err(err))
		os.Exit(1)
	}
	logger.Info("roster admin stopped")
}

// openStore builds the configured data source and seeds it with the demo
// roster. Neither driver outlives the process.
func openStore(ctx context.Context, cfg config.StoreConfig, m *metrics.Metrics) (ports.EmployeeRepository, func(), error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		repo, err := sqliteadapter.New(sqliteadapter.MemoryDSN, m)
		if err != nil {
			return nil, nil, err
		}
		if err = repo.Migrate(cfg.MigrationsDir); err != nil {
			repo.Close()
			return nil, nil, err
		}
		if err = repo.CreateEmployees(ctx, fixtures.Employees()); err != nil {
			repo.Close()
			return nil, nil, fmt.Errorf("seed sqlite store: %w", err)
		}
		return repo, func() { repo.Close() }, nil
	default:
		repo, err := memory.New(fixtures.Employees())
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case config.EnvDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	case config.EnvProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:       slog.LevelWarn,
				ReplaceAttr: httplog.SchemaECS.Concise(true).ReplaceAttr,
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}),
		)
	}

	return log.With(slog.String("app", "roster-admin"), slog.String("env", env))
}
