package testutil

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// StartRedis запускает Redis 7 testcontainer и возвращает его адрес host:port.
func StartRedis(ctx context.Context) (addr string, stop func(), err error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	if err != nil {
		return "", nil, fmt.Errorf("starting redis container: %w", err)
	}
	stop = func() { _ = testcontainers.TerminateContainer(container) }

	addr, err = container.Endpoint(ctx, "")
	if err != nil {
		stop()
		return "", nil, fmt.Errorf("getting redis endpoint: %w", err)
	}
	return addr, stop, nil
}
