package testutil

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

// StartPostgres запускает PostgreSQL 16 testcontainer и возвращает DSN.
// Использует модуль postgres с BasicWaitStrategies (log occurrence(2) + port check).
// Миграции не применяются: это делает вызывающий пакет.
func StartPostgres(ctx context.Context) (dsn string, stop func(), err error) {
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return "", nil, fmt.Errorf("starting postgres container: %w", err)
	}
	stop = func() { _ = testcontainers.TerminateContainer(container) }

	dsn, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		stop()
		return "", nil, fmt.Errorf("getting connection string: %w", err)
	}
	return dsn, stop, nil
}
