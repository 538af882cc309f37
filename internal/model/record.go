package model

import (
	"fmt"
	"time"
)

// Result is the battle outcome from side A's point of view.
type Result uint8

const (
	ResultVictory Result = iota + 1
	ResultDefeat
	ResultDraw
)

func (r Result) String() string {
	switch r {
	case ResultVictory:
		return "victory"
	case ResultDefeat:
		return "defeat"
	case ResultDraw:
		return "draw"
	}
	return fmt.Sprintf("Result(%d)", uint8(r))
}

// MarshalText implements encoding.TextMarshaler.
func (r Result) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Result) UnmarshalText(b []byte) error {
	switch string(b) {
	case "victory":
		*r = ResultVictory
	case "defeat":
		*r = ResultDefeat
	case "draw":
		*r = ResultDraw
	default:
		return fmt.Errorf("unknown result %q", b)
	}
	return nil
}

// BuffSnapshot is the visible part of an active status at round end.
type BuffSnapshot struct {
	SkillID   int32  `json:"skillId"`
	Kind      string `json:"kind"`
	Stacks    int32  `json:"stacks"`
	Remaining int32  `json:"remaining"`
	Permanent bool   `json:"permanent,omitempty"`
}

// UnitSnapshot — состояние юнита на конец раунда.
type UnitSnapshot struct {
	Ref       UnitRef        `json:"ref"`
	CurrentHP int32          `json:"currentHp"`
	MaxHP     int32          `json:"maxHp"`
	CurrentMP int32          `json:"currentMp"`
	Shield    int32          `json:"shield,omitempty"`
	Alive     bool           `json:"alive"`
	Buffs     []BuffSnapshot `json:"buffs,omitempty"`
}

// Round — один раунд боя: упорядоченные действия и снимок юнитов.
type Round struct {
	Number      int32          `json:"number"`
	Actions     []Action       `json:"actions"`
	Units       []UnitSnapshot `json:"units"`
	Description string         `json:"description,omitempty"`
}

// UnitStatistics — итоговая статистика юнита.
type UnitStatistics struct {
	Ref      UnitRef      `json:"ref"`
	Name     string       `json:"name"`
	Survived bool         `json:"survived"`
	Counters UnitCounters `json:"counters"`
}

// Statistics summarises a finished battle.
type Statistics struct {
	TotalRounds      int              `json:"totalRounds"`
	TotalActions     int              `json:"totalActions"`
	SideAUnitsLeft   int              `json:"sideAUnitsLeft"`
	SideBUnitsLeft   int              `json:"sideBUnitsLeft"`
	SideADamageDealt int64            `json:"sideADamageDealt"`
	SideBDamageDealt int64            `json:"sideBDamageDealt"`
	Duration         time.Duration    `json:"duration"`
	Units            []UnitStatistics `json:"units"`
}

// Record — полный лог боя. Собирается один раз и дальше только читается.
type Record struct {
	BattleID   string     `json:"battleId"`
	PlayerID   int64      `json:"playerId"`
	Seed       uint64     `json:"seed"`
	TeamOne    []Hero     `json:"teamOne"`
	TeamTwo    []Hero     `json:"teamTwo"`
	Rounds     []Round    `json:"rounds"`
	Result     Result     `json:"result"`
	TimedOut   bool       `json:"timedOut,omitempty"`
	StartedAt  time.Time  `json:"startedAt"`
	EndedAt    time.Time  `json:"endedAt"`
	Statistics Statistics `json:"statistics"`
	Checksum   string     `json:"checksum"`
}

// Summary is the lightweight view stored in battle history.
type Summary struct {
	BattleID    string    `json:"battleId"`
	PlayerID    int64     `json:"playerId"`
	Result      Result    `json:"result"`
	TotalRounds int       `json:"totalRounds"`
	Seed        uint64    `json:"seed"`
	Checksum    string    `json:"checksum"`
	StartedAt   time.Time `json:"startedAt"`
	EndedAt     time.Time `json:"endedAt"`
}

// Summary returns the history view of the record.
func (r *Record) Summary() Summary {
	return Summary{
		BattleID:    r.BattleID,
		PlayerID:    r.PlayerID,
		Result:      r.Result,
		TotalRounds: r.Statistics.TotalRounds,
		Seed:        r.Seed,
		Checksum:    r.Checksum,
		StartedAt:   r.StartedAt,
		EndedAt:     r.EndedAt,
	}
}
