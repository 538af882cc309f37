package battle

import (
	"log/slog"
	"time"

	"github.com/udisondev/turnbattle/internal/config"
	"github.com/udisondev/turnbattle/internal/data"
	"github.com/udisondev/turnbattle/internal/model"
)

// Config holds the engine tunables of one Calculator.
type Config struct {
	MaxRounds     int
	Defaults      model.StatDefaults
	ManaPerAction int32
	MaxMana       int32
}

// ConfigFrom converts the server battle config.
func ConfigFrom(c config.Battle) Config {
	return Config{
		MaxRounds:     c.MaxRounds,
		Defaults:      model.StatDefaults{CritRate: c.DefaultCritRate, CritDamage: c.DefaultCritDamage},
		ManaPerAction: c.ManaPerAction,
		MaxMana:       c.MaxMana,
	}
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return ConfigFrom(config.DefaultBattle())
}

// Calculator resolves complete battles. It holds no per-battle state and
// may be shared between goroutines; every Resolve builds its own arena,
// status manager and random source.
type Calculator struct {
	cfg Config
}

// NewCalculator creates a calculator.
func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// Resolve runs a battle between teamOne (side A) and teamTwo (side B) to
// completion and returns its record. Rosters must already be validated.
// The same catalog snapshot, rosters and seed always yield the same rounds.
func (c *Calculator) Resolve(catalog data.Catalog, teamOne, teamTwo []model.Hero, seed uint64) *model.Record {
	started := time.Now()
	b := newBattle(c.cfg, catalog, teamOne, teamTwo, seed)

	b.applyPassives()
	b.computeInitiative()

	for !b.finished() && int(b.round) < c.cfg.MaxRounds {
		b.playRound(b.round + 1)
	}

	rec := &model.Record{
		Seed:      seed,
		TeamOne:   teamOne,
		TeamTwo:   teamTwo,
		Rounds:    b.rounds,
		Result:    b.result(),
		TimedOut:  !b.finished(),
		StartedAt: started,
		EndedAt:   time.Now(),
	}
	rec.Statistics = b.statistics(rec.EndedAt.Sub(started))
	rec.Checksum = Checksum(rec)

	slog.Debug("battle resolved",
		"seed", seed,
		"rounds", len(b.rounds),
		"result", rec.Result,
		"timed_out", rec.TimedOut)
	return rec
}
