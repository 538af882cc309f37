package data

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"
)

// Reloader periodically checks a catalog directory and swaps a freshly
// loaded Table into the Registry when any file changed. A catalog that
// fails to load or validate is logged and the previous table stays in use.
type Reloader struct {
	registry *Registry
	dir      string
	interval time.Duration
	stamp    string
	onSwap   func(*Table)
}

// NewReloader creates a reloader for dir. onSwap may be nil.
func NewReloader(r *Registry, dir string, interval time.Duration, onSwap func(*Table)) *Reloader {
	rl := &Reloader{registry: r, dir: dir, interval: interval, onSwap: onSwap}
	rl.stamp, _ = dirStamp(dir)
	return rl
}

// Start polls until ctx is cancelled.
func (rl *Reloader) Start(ctx context.Context) error {
	ticker := time.NewTicker(rl.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := rl.Check(); err != nil {
				slog.Error("catalog reload failed", "dir", rl.dir, "err", err)
			}
		}
	}
}

// Check reloads the catalog if the directory changed since the last
// successful check. It reports whether a new table was installed.
func (rl *Reloader) Check() (bool, error) {
	stamp, err := dirStamp(rl.dir)
	if err != nil {
		return false, err
	}
	if stamp == rl.stamp {
		return false, nil
	}

	t, err := LoadDir(rl.dir)
	if err != nil {
		return false, err
	}
	rl.registry.Swap(t)
	rl.stamp = stamp
	slog.Info("catalog reloaded", "dir", rl.dir, "skills", t.Len())
	if rl.onSwap != nil {
		rl.onSwap(t)
	}
	return true, nil
}

// dirStamp fingerprints the catalog files by name, size and mtime.
func dirStamp(dir string) (string, error) {
	files, err := catalogFiles(dir)
	if err != nil {
		return "", err
	}
	var stamp string
	for _, f := range files {
		fi, err := os.Stat(f)
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", f, err)
		}
		stamp += fmt.Sprintf("%s:%d:%d;", f, fi.Size(), fi.ModTime().UnixNano())
	}
	return stamp, nil
}
