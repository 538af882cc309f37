package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/udisondev/turnbattle/internal/db/migrations"
)

// RunMigrations brings the battle archive schema up to date: the battles
// table (one row per finished battle, summary columns plus the full record
// as JSONB payload) and the (player_id, started_at) history index.
// Embedded SQL is applied by goose over a short-lived database/sql handle.
func RunMigrations(ctx context.Context, dsn string) error {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("opening battle archive for migrations: %w", err)
	}
	defer sqlDB.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return fmt.Errorf("migrating battle archive: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return fmt.Errorf("reading battle archive schema version: %w", err)
	}
	slog.Info("battle archive schema ready", "version", version)
	return nil
}
