// Package testutil holds helpers shared by package tests: containers for
// the storage tiers, contexts bound to the test lifetime and battle fixtures.
package testutil

import (
	"context"
	"testing"
	"time"
)

// ContextWithTimeout создаёт context с timeout и отменяет его при завершении теста.
func ContextWithTimeout(t testing.TB, d time.Duration) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), d)
	t.Cleanup(cancel)
	return ctx
}

// ContextWithCancel создаёт отменяемый context; t.Cleanup отменит его в любом случае.
func ContextWithCancel(t testing.TB) (context.Context, context.CancelFunc) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx, cancel
}
