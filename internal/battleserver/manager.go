// Package battleserver is the request boundary of the battle engine:
// it validates requests, runs battles on a bounded worker pool and keeps
// the finished records.
package battleserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/udisondev/turnbattle/internal/config"
	"github.com/udisondev/turnbattle/internal/data"
	"github.com/udisondev/turnbattle/internal/game/battle"
	"github.com/udisondev/turnbattle/internal/game/combat"
	"github.com/udisondev/turnbattle/internal/model"
)

var (
	// ErrBattleNotFound is returned when no tier holds the requested battle.
	ErrBattleNotFound = errors.New("battle not found")
	// ErrBattleFailed wraps a panic recovered while resolving a battle.
	ErrBattleFailed = errors.New("battle computation failed")
)

// StartBattleRequest — запрос на расчёт боя.
// Seed is optional; a random one is drawn when it is absent.
type StartBattleRequest struct {
	PlayerID int64        `json:"playerId"`
	Seed     *uint64      `json:"seed,omitempty"`
	TeamOne  []model.Hero `json:"teamOne"`
	TeamTwo  []model.Hero `json:"teamTwo"`
}

// BattleResponse — ответ на запрос боя.
type BattleResponse struct {
	Success    bool          `json:"success"`
	BattleID   string        `json:"battleId,omitempty"`
	BattleData *model.Record `json:"battleData,omitempty"`
	Message    string        `json:"message,omitempty"`
}

// CatalogSource yields the catalog snapshot a battle is resolved against.
type CatalogSource interface {
	Current() *data.Table
}

// Archive is the durable battle history (PostgreSQL).
type Archive interface {
	Save(ctx context.Context, rec *model.Record) error
	Get(ctx context.Context, battleID string) (*model.Record, error)
	ListByPlayer(ctx context.Context, playerID int64, limit, offset int) ([]model.Summary, int, error)
}

// Mirror is the shared replay cache (Redis).
type Mirror interface {
	Put(ctx context.Context, rec *model.Record) error
	Get(ctx context.Context, battleID string) (*model.Record, error)
}

// Recorder receives battle metrics.
type Recorder interface {
	ObserveBattle(result model.Result, rounds int, elapsed time.Duration)
	Rejected(reason string)
	Failed()
	SetStored(n int)
}

// Manager dispatches battle requests.
type Manager struct {
	calc     *battle.Calculator
	catalog  CatalogSource
	maxUnits int
	workers  *semaphore.Weighted
	store    *Store

	archive Archive
	mirror  Mirror
	metrics Recorder
	seeds   func() uint64
}

// Option configures a Manager.
type Option func(*Manager)

// WithArchive enables durable history.
func WithArchive(a Archive) Option {
	return func(m *Manager) { m.archive = a }
}

// WithMirror enables the replay cache.
func WithMirror(mr Mirror) Option {
	return func(m *Manager) { m.mirror = mr }
}

// WithMetrics enables metrics.
func WithMetrics(r Recorder) Option {
	return func(m *Manager) { m.metrics = r }
}

// WithSeedSource replaces the source of seeds for requests without one.
func WithSeedSource(fn func() uint64) Option {
	return func(m *Manager) { m.seeds = fn }
}

// NewManager creates a manager.
func NewManager(cfg config.Battle, catalog CatalogSource, opts ...Option) *Manager {
	workers := max(cfg.Workers, 1)
	m := &Manager{
		calc:     battle.NewCalculator(battle.ConfigFrom(cfg)),
		catalog:  catalog,
		maxUnits: cfg.MaxUnitsPerSide,
		workers:  semaphore.NewWeighted(int64(workers)),
		store:    NewStore(),
		metrics:  nopRecorder{},
		seeds:    rand.Uint64,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Store returns the in-memory record store.
func (m *Manager) Store() *Store {
	return m.store
}

// HandleBattleRequest validates req, resolves the battle and stores the
// record. The response is never nil; err is non-nil exactly when
// Success is false and wraps a validation sentinel, ErrBattleFailed or
// the context error.
func (m *Manager) HandleBattleRequest(ctx context.Context, req StartBattleRequest) (*BattleResponse, error) {
	if err := combat.ValidateRequest(req.PlayerID, req.TeamOne, req.TeamTwo, m.maxUnits); err != nil {
		m.metrics.Rejected("validation")
		slog.Info("battle request rejected", "player_id", req.PlayerID, "err", err)
		return &BattleResponse{Message: err.Error()}, err
	}

	if err := m.workers.Acquire(ctx, 1); err != nil {
		m.metrics.Rejected("busy")
		return &BattleResponse{Message: "server busy"}, fmt.Errorf("waiting for worker: %w", err)
	}
	seed := m.seeds()
	if req.Seed != nil {
		seed = *req.Seed
	}
	rec, err := m.resolve(req, seed)
	m.workers.Release(1)
	if err != nil {
		m.metrics.Failed()
		slog.Error("battle failed", "player_id", req.PlayerID, "seed", seed, "err", err)
		return &BattleResponse{Message: "battle computation failed"}, err
	}

	rec.BattleID = uuid.NewString()
	rec.PlayerID = req.PlayerID
	m.store.Put(rec)
	m.persist(ctx, rec)

	elapsed := rec.EndedAt.Sub(rec.StartedAt)
	m.metrics.ObserveBattle(rec.Result, len(rec.Rounds), elapsed)
	m.metrics.SetStored(m.store.Count())
	slog.Info("battle finished",
		"battle_id", rec.BattleID,
		"player_id", rec.PlayerID,
		"result", rec.Result,
		"rounds", len(rec.Rounds),
		"timed_out", rec.TimedOut,
		"elapsed", elapsed)

	return &BattleResponse{
		Success:    true,
		BattleID:   rec.BattleID,
		BattleData: rec,
		Message:    "battle finished",
	}, nil
}

// HandleBatch resolves independent requests concurrently. The i-th
// response belongs to the i-th request.
func (m *Manager) HandleBatch(ctx context.Context, reqs []StartBattleRequest) []*BattleResponse {
	out := make([]*BattleResponse, len(reqs))
	var g errgroup.Group
	for i := range reqs {
		g.Go(func() error {
			out[i], _ = m.HandleBattleRequest(ctx, reqs[i])
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// resolve runs one battle against the current catalog snapshot.
// A panic is converted to ErrBattleFailed; nothing is stored.
func (m *Manager) resolve(req StartBattleRequest, seed uint64) (rec *model.Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic in battle resolution", "panic", r, "stack", string(debug.Stack()))
			rec, err = nil, fmt.Errorf("%w: %v", ErrBattleFailed, r)
		}
	}()
	return m.calc.Resolve(m.catalog.Current(), req.TeamOne, req.TeamTwo, seed), nil
}

// persist writes rec to the optional tiers. Failures are logged only.
func (m *Manager) persist(ctx context.Context, rec *model.Record) {
	if m.mirror != nil {
		if err := m.mirror.Put(ctx, rec); err != nil {
			slog.Warn("mirroring battle", "battle_id", rec.BattleID, "err", err)
		}
	}
	if m.archive != nil {
		if err := m.archive.Save(ctx, rec); err != nil {
			slog.Error("archiving battle", "battle_id", rec.BattleID, "err", err)
		}
	}
}

// GetBattle looks the battle up in memory, then in the mirror, then in the
// archive. playerID 0 matches any owner; a battle of another player is
// reported as not found.
func (m *Manager) GetBattle(ctx context.Context, battleID string, playerID int64) (*model.Record, error) {
	rec, err := m.lookup(ctx, battleID)
	if err != nil {
		return nil, err
	}
	if rec == nil || (playerID != 0 && rec.PlayerID != playerID) {
		return nil, ErrBattleNotFound
	}
	return rec, nil
}

func (m *Manager) lookup(ctx context.Context, battleID string) (*model.Record, error) {
	if rec, ok := m.store.Get(battleID); ok {
		return rec, nil
	}
	if m.mirror != nil {
		rec, err := m.mirror.Get(ctx, battleID)
		if err != nil {
			slog.Warn("reading battle mirror", "battle_id", battleID, "err", err)
		} else if rec != nil {
			return rec, nil
		}
	}
	if m.archive != nil {
		rec, err := m.archive.Get(ctx, battleID)
		if err != nil {
			return nil, fmt.Errorf("loading battle %s: %w", battleID, err)
		}
		return rec, nil
	}
	return nil, nil
}

// History returns one page of the player's battles, newest first, from the
// archive when configured, otherwise from memory.
func (m *Manager) History(ctx context.Context, playerID int64, limit, offset int) ([]model.Summary, int, error) {
	if m.archive != nil {
		items, total, err := m.archive.ListByPlayer(ctx, playerID, limit, offset)
		if err != nil {
			return nil, 0, fmt.Errorf("listing battles of player %d: %w", playerID, err)
		}
		return items, total, nil
	}
	items, total := m.store.ListByPlayer(playerID, limit, offset)
	return items, total, nil
}

// RunJanitor drops in-memory records older than ttl every interval until
// ctx is done.
func (m *Manager) RunJanitor(ctx context.Context, ttl, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := m.store.CleanExpired(ttl); n > 0 {
				slog.Debug("expired battle records removed", "count", n)
				m.metrics.SetStored(m.store.Count())
			}
		}
	}
}

type nopRecorder struct{}

func (nopRecorder) ObserveBattle(model.Result, int, time.Duration) {}
func (nopRecorder) Rejected(string)                                {}
func (nopRecorder) Failed()                                        {}
func (nopRecorder) SetStored(int)                                  {}
