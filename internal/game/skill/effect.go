package skill

import (
	"github.com/udisondev/turnbattle/internal/data"
	"github.com/udisondev/turnbattle/internal/model"
)

// Effect applies one effect kind to one target.
// Apply is called after the trigger-probability roll succeeded and
// reports whether the effect actually did anything.
type Effect interface {
	Kind() data.EffectKind
	Apply(c *Cast, target *model.Unit) bool
}

// ActiveEffect — экземпляр статуса (buff, debuff, shield, reflect) на юните.
type ActiveEffect struct {
	ID       int64
	Source   int // арена-индекс наложившего
	Target   int // арена-индекс носителя
	SkillID  int32
	Kind     data.EffectKind
	Polarity data.Polarity

	Duration  int32 // полная длительность, для refresh
	Remaining int32
	Stacks    int32
	MaxStacks int32

	Modifiers []data.StatMod // на один стак

	TickDamage   int32
	TickHeal     int32
	TickInterval int32
	LastTick     int32 // раунд последнего тика (или наложения)

	Shield  int32   // оставшийся пул поглощения
	Reflect float64 // доля отражаемого урона

	Permanent   bool // пассивки: не истекают
	Dispellable bool
}

// IsExpired returns true if the effect duration has elapsed.
func (ae *ActiveEffect) IsExpired() bool {
	return !ae.Permanent && ae.Remaining <= 0
}

// Advance decrements the remaining duration by one round.
// Returns true if the effect is still active.
func (ae *ActiveEffect) Advance() bool {
	if ae.Permanent {
		return true
	}
	if ae.Remaining > 0 {
		ae.Remaining--
	}
	return ae.Remaining > 0
}

// ShouldTick reports whether a periodic effect is due in round.
func (ae *ActiveEffect) ShouldTick(round int32) bool {
	if ae.TickInterval <= 0 || (ae.TickDamage == 0 && ae.TickHeal == 0) {
		return false
	}
	return round-ae.LastTick >= ae.TickInterval
}

// sameLineage reports whether ae and other stack with each other.
func (ae *ActiveEffect) sameLineage(other *ActiveEffect) bool {
	return ae.SkillID == other.SkillID && ae.Kind == other.Kind
}

// snapshot returns the record view of the instance.
func (ae *ActiveEffect) snapshot() model.BuffSnapshot {
	return model.BuffSnapshot{
		SkillID:   ae.SkillID,
		Kind:      ae.Kind.String(),
		Stacks:    ae.Stacks,
		Remaining: ae.Remaining,
		Permanent: ae.Permanent,
	}
}
