package config

import (
	"fmt"
	"runtime"
	"time"
)

// Battle holds the engine tunables.
type Battle struct {
	MaxRounds       int `yaml:"max_rounds"`
	MaxUnitsPerSide int `yaml:"max_units_per_side"`

	// Crit chance and multiplier used when a roster unit does not carry
	// the corresponding attribute.
	DefaultCritRate   float64 `yaml:"default_crit_rate"`
	DefaultCritDamage float64 `yaml:"default_crit_damage"`

	// Mana gained after every successful action, capped at MaxMana.
	ManaPerAction int32 `yaml:"mana_per_action"`
	MaxMana       int32 `yaml:"max_mana"`

	// Workers bounds the number of battles resolved at the same time.
	Workers int `yaml:"workers"`
}

// DefaultBattle returns engine defaults.
func DefaultBattle() Battle {
	return Battle{
		MaxRounds:         30,
		MaxUnitsPerSide:   6,
		DefaultCritRate:   0.2,
		DefaultCritDamage: 1.5,
		ManaPerAction:     10,
		MaxMana:           100,
		Workers:           runtime.GOMAXPROCS(0),
	}
}

// Catalog describes where skill and buff definitions are loaded from.
type Catalog struct {
	// Dir with *.yaml catalog files. Empty means built-in definitions only.
	Dir            string        `yaml:"dir"`
	ReloadInterval time.Duration `yaml:"reload_interval"` // 0 disables hot reload
}

// BattleServer holds all configuration for the battle server.
type BattleServer struct {
	// Network
	BindAddress string `yaml:"bind_address"`
	Port        int    `yaml:"port"`
	GinMode     string `yaml:"gin_mode"`

	LogLevel  string `yaml:"log_level"`  // debug, info, warn, error
	LogFormat string `yaml:"log_format"` // text, json

	Battle   Battle         `yaml:"battle"`
	Catalog  Catalog        `yaml:"catalog"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`

	// RecordTTL is how long mirrored records stay in Redis.
	RecordTTL time.Duration `yaml:"record_ttl"`
}

// DefaultBattleServer returns BattleServer config with sensible defaults.
func DefaultBattleServer() BattleServer {
	return BattleServer{
		BindAddress: "0.0.0.0",
		Port:        8080,
		GinMode:     "release",
		LogLevel:    "info",
		LogFormat:   "text",
		Battle:      DefaultBattle(),
		Catalog: Catalog{
			Dir:            "config/catalog",
			ReloadInterval: 5 * time.Second,
		},
		Database: DatabaseConfig{
			Enabled:  false,
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "turnbattle",
			Password: "turnbattle",
			DBName:   "turnbattle",
			SSLMode:  "disable",
		},
		Redis: RedisConfig{
			Enabled: false,
			Address: "127.0.0.1:6379",
		},
		RecordTTL: 24 * time.Hour,
	}
}

// LoadBattleServer loads battle server config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadBattleServer(path string) (BattleServer, error) {
	cfg := DefaultBattleServer()
	if err := loadYAML(path, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the engine cannot run with.
func (c BattleServer) Validate() error {
	b := c.Battle
	switch {
	case b.MaxRounds <= 0:
		return fmt.Errorf("battle.max_rounds must be positive, got %d", b.MaxRounds)
	case b.MaxUnitsPerSide <= 0:
		return fmt.Errorf("battle.max_units_per_side must be positive, got %d", b.MaxUnitsPerSide)
	case b.DefaultCritRate < 0 || b.DefaultCritRate > 1:
		return fmt.Errorf("battle.default_crit_rate must be in [0,1], got %v", b.DefaultCritRate)
	case b.DefaultCritDamage < 1:
		return fmt.Errorf("battle.default_crit_damage must be >= 1, got %v", b.DefaultCritDamage)
	case b.MaxMana < 0 || b.ManaPerAction < 0:
		return fmt.Errorf("battle mana settings must be non-negative")
	case b.Workers <= 0:
		return fmt.Errorf("battle.workers must be positive, got %d", b.Workers)
	}
	return nil
}
