package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.in), tt.in)
	}
}

func TestLoadCatalog(t *testing.T) {
	builtin, err := loadCatalog("")
	require.NoError(t, err)
	assert.Positive(t, builtin.Len())

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extra.yaml"), []byte(`
skills:
  - id: 9001
    name: Poke
    type: active
    priority: 5
    effects:
      - kind: damage
        target: single_enemy
        base: 3
`), 0o644))
	overlay, err := loadCatalog(dir)
	require.NoError(t, err)
	assert.Equal(t, builtin.Len()+1, overlay.Len())

	_, err = loadCatalog(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
