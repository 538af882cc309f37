package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/turnbattle/internal/api"
	"github.com/udisondev/turnbattle/internal/battleserver"
	"github.com/udisondev/turnbattle/internal/cache"
	"github.com/udisondev/turnbattle/internal/config"
	"github.com/udisondev/turnbattle/internal/data"
	"github.com/udisondev/turnbattle/internal/db"
	"github.com/udisondev/turnbattle/internal/metrics"
)

const ConfigPath = "config/battleserver.yaml"

// janitorInterval is how often expired in-memory records are dropped.
const janitorInterval = time.Minute

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("TURNBATTLE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadBattleServer(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	setupLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("turnbattle server starting", "config", cfgPath, "log_level", cfg.LogLevel)

	table, err := loadCatalog(cfg.Catalog.Dir)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	registry := data.NewRegistry(table)

	m := metrics.New(prometheus.DefaultRegisterer)
	m.SetCatalogSkills(table.Len())

	opts := []battleserver.Option{battleserver.WithMetrics(m)}
	health := map[string]api.Pinger{"database": nil, "redis": nil}

	if cfg.Database.Enabled {
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()
		slog.Info("database connected")

		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database migrations applied")

		opts = append(opts, battleserver.WithArchive(db.NewPostgresBattleRepository(database.Pool())))
		health["database"] = database
	}

	if cfg.Redis.Enabled {
		mirror, err := cache.New(ctx, cfg.Redis, cfg.RecordTTL)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer mirror.Close()
		slog.Info("redis connected", "addr", cfg.Redis.Address)

		opts = append(opts, battleserver.WithMirror(mirror))
		health["redis"] = mirror
	}

	manager := battleserver.NewManager(cfg.Battle, registry, opts...)

	gin.SetMode(cfg.GinMode)
	srv := &http.Server{
		Addr: net.JoinHostPort(cfg.BindAddress, strconv.Itoa(cfg.Port)),
		Handler: api.Setup(api.Deps{
			Battles: manager,
			Catalog: registry,
			Health:  health,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting http server", "addr", srv.Addr, "workers", cfg.Battle.Workers)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return manager.RunJanitor(gctx, cfg.RecordTTL, janitorInterval)
	})

	if cfg.Catalog.Dir != "" && cfg.Catalog.ReloadInterval > 0 {
		reloader := data.NewReloader(registry, cfg.Catalog.Dir, cfg.Catalog.ReloadInterval, func(t *data.Table) {
			m.SetCatalogSkills(t.Len())
		})
		g.Go(func() error {
			slog.Info("catalog hot reload enabled", "dir", cfg.Catalog.Dir, "interval", cfg.Catalog.ReloadInterval)
			return reloader.Start(gctx)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// loadCatalog loads dir overlaid on the built-in definitions; an empty
// dir means built-ins only.
func loadCatalog(dir string) (*data.Table, error) {
	if dir == "" {
		return data.LoadDefaults()
	}
	return data.LoadDir(dir)
}

func setupLogger(level, format string) {
	opts := &slog.HandlerOptions{Level: parseLogLevel(level)}
	var h slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if format == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(h))
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
