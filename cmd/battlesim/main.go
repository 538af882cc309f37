// Command battlesim resolves one battle offline from a roster file and
// prints the record as JSON. Replaying a stored battle's rosters and seed
// must reproduce its checksum.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/turnbattle/internal/config"
	"github.com/udisondev/turnbattle/internal/data"
	"github.com/udisondev/turnbattle/internal/game/battle"
	"github.com/udisondev/turnbattle/internal/game/combat"
	"github.com/udisondev/turnbattle/internal/model"
)

// rosterFile is the input format.
type rosterFile struct {
	PlayerID int64        `yaml:"playerId"`
	Seed     uint64       `yaml:"seed"`
	TeamOne  []model.Hero `yaml:"teamOne"`
	TeamTwo  []model.Hero `yaml:"teamTwo"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		slog.Error("battlesim", "err", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("battlesim", flag.ContinueOnError)
	rosterPath := fs.String("roster", "config/rosters/sample.yaml", "roster YAML file")
	catalogDir := fs.String("catalog", "", "catalog directory (built-in skills when empty)")
	configPath := fs.String("config", "", "battle server config for engine tunables")
	seed := fs.Uint64("seed", 0, "override the seed from the roster file")
	summary := fs.Bool("summary", false, "print only the summary and statistics")
	verbose := fs.Bool("v", false, "debug logging to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := config.DefaultBattleServer()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadBattleServer(*configPath); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	raw, err := os.ReadFile(*rosterPath)
	if err != nil {
		return fmt.Errorf("reading roster: %w", err)
	}
	var rf rosterFile
	if err := yaml.Unmarshal(raw, &rf); err != nil {
		return fmt.Errorf("parsing roster %s: %w", *rosterPath, err)
	}
	if *seed != 0 {
		rf.Seed = *seed
	}
	if rf.PlayerID == 0 {
		rf.PlayerID = 1
	}
	if err := combat.ValidateRequest(rf.PlayerID, rf.TeamOne, rf.TeamTwo, cfg.Battle.MaxUnitsPerSide); err != nil {
		return fmt.Errorf("invalid roster: %w", err)
	}

	var table *data.Table
	if *catalogDir == "" {
		table, err = data.LoadDefaults()
	} else {
		table, err = data.LoadDir(*catalogDir)
	}
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	calc := battle.NewCalculator(battle.ConfigFrom(cfg.Battle))
	rec := calc.Resolve(table, rf.TeamOne, rf.TeamTwo, rf.Seed)
	rec.PlayerID = rf.PlayerID

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if *summary {
		return enc.Encode(struct {
			Summary    model.Summary    `json:"summary"`
			TimedOut   bool             `json:"timedOut"`
			Statistics model.Statistics `json:"statistics"`
		}{rec.Summary(), rec.TimedOut, rec.Statistics})
	}
	return enc.Encode(rec)
}
