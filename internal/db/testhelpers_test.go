package db

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/turnbattle/internal/testutil"
)

// testPool — shared connection pool для всех tests в package db.
// nil, если Docker недоступен.
var testPool *pgxpool.Pool

// testDSN — DSN того же контейнера.
var testDSN string

// TestMain поднимает PostgreSQL в testcontainer и применяет миграции.
func TestMain(m *testing.M) {
	os.Exit(runWithPostgres(m))
}

func runWithPostgres(m *testing.M) int {
	ctx := context.Background()

	dsn, stop, err := testutil.StartPostgres(ctx)
	if err != nil {
		// Без Docker тесты пакета пропускаются, а не падают.
		log.Printf("postgres unavailable, skipping db tests: %v", err)
		return m.Run()
	}
	defer stop()
	testDSN = dsn

	if err := RunMigrations(ctx, dsn); err != nil {
		log.Fatalf("running migrations: %v", err)
	}

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connecting to test db: %v", err)
	}
	defer testPool.Close()

	return m.Run()
}

// setupTestDB возвращает shared pool и очищает таблицы для изоляции.
func setupTestDB(tb testing.TB) *pgxpool.Pool {
	tb.Helper()
	if testPool == nil {
		tb.Skip("postgres container unavailable")
	}

	if _, err := testPool.Exec(context.Background(), "TRUNCATE battles"); err != nil {
		tb.Logf("cleanup warning: %v", err) // non-fatal
	}
	return testPool
}
