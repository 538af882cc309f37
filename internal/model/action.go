package model

import "fmt"

// UnitRef identifies a unit inside a battle record.
type UnitRef struct {
	Side Side  `json:"side"`
	Slot int   `json:"slot"`
	UID  int64 `json:"uid"`
}

// ActionKind classifies a battle action.
type ActionKind uint8

const (
	ActionDamage ActionKind = iota + 1
	ActionHeal
	ActionShield
	ActionBuff
	ActionDebuff
	ActionDispel
	ActionRevive
	ActionReflect
	ActionTickDamage
	ActionTickHeal
	ActionDeath
)

var actionKindNames = map[ActionKind]string{
	ActionDamage:     "damage",
	ActionHeal:       "heal",
	ActionShield:     "shield",
	ActionBuff:       "buff",
	ActionDebuff:     "debuff",
	ActionDispel:     "dispel",
	ActionRevive:     "revive",
	ActionReflect:    "reflect",
	ActionTickDamage: "tick_damage",
	ActionTickHeal:   "tick_heal",
	ActionDeath:      "death",
}

func (k ActionKind) String() string {
	if n, ok := actionKindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("ActionKind(%d)", uint8(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k ActionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ActionKind) UnmarshalText(b []byte) error {
	for v, n := range actionKindNames {
		if n == string(b) {
			*k = v
			return nil
		}
	}
	return fmt.Errorf("unknown action kind %q", b)
}

// Action — одно действие в логе боя. После добавления в раунд не изменяется.
//
// Value — запрошенная величина (урон до щита, лечение до ограничения по maxHP,
// число снятых эффектов для dispel), Actual — фактически применённая.
type Action struct {
	Round       int32      `json:"round"`
	Seq         int        `json:"seq"`
	Kind        ActionKind `json:"kind"`
	SkillID     int32      `json:"skillId,omitempty"`
	Actor       UnitRef    `json:"actor"`
	Targets     []UnitRef  `json:"targets"`
	Value       int32      `json:"value"`
	Actual      int32      `json:"actual"`
	Absorbed    int32      `json:"absorbed,omitempty"`
	Critical    bool       `json:"critical,omitempty"`
	Miss        bool       `json:"miss,omitempty"`
	Blocked     bool       `json:"blocked,omitempty"`
	Description string     `json:"description,omitempty"`
}

// Target returns the first target or the actor when the action has none.
func (a Action) Target() UnitRef {
	if len(a.Targets) > 0 {
		return a.Targets[0]
	}
	return a.Actor
}
