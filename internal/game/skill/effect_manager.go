package skill

import (
	"log/slog"

	"github.com/udisondev/turnbattle/internal/data"
	"github.com/udisondev/turnbattle/internal/model"
)

// EffectManager tracks active statuses of every unit of one battle.
// Lists are indexed by arena index and kept in application order.
//
// Not thread-safe: a battle is resolved by a single goroutine.
type EffectManager struct {
	lists  [][]*ActiveEffect
	nextID int64
}

// NewEffectManager creates an empty manager for an arena of n units.
func NewEffectManager(n int) *EffectManager {
	return &EffectManager{lists: make([][]*ActiveEffect, n)}
}

// Add applies ae to its target according to policy and returns the
// instance now in effect.
//
// Stacking rules (same source skill and effect kind):
//   - StackStack → stacks+1 up to MaxStacks, duration reset
//   - StackRefresh → duration reset, stacks unchanged
//   - StackNone → existing instance replaced
//   - StackIndependent → always a new instance
func (m *EffectManager) Add(ae *ActiveEffect, policy data.StackPolicy) *ActiveEffect {
	list := m.lists[ae.Target]

	if policy != data.StackIndependent {
		for i, existing := range list {
			if !existing.sameLineage(ae) {
				continue
			}
			switch policy {
			case data.StackStack:
				existing.Stacks = min(existing.Stacks+1, max(existing.MaxStacks, 1))
				existing.Remaining = existing.Duration
				existing.Shield += ae.Shield
				return existing
			case data.StackRefresh:
				existing.Remaining = existing.Duration
				existing.Shield = max(existing.Shield, ae.Shield)
				return existing
			default:
				m.assignID(ae)
				list[i] = ae
				return ae
			}
		}
	}

	m.assignID(ae)
	m.lists[ae.Target] = append(list, ae)
	return ae
}

func (m *EffectManager) assignID(ae *ActiveEffect) {
	m.nextID++
	ae.ID = m.nextID
	if ae.Stacks <= 0 {
		ae.Stacks = 1
	}
	if ae.Remaining == 0 {
		ae.Remaining = ae.Duration
	}
}

// StatBonus returns the summed modifier for stat s on unit idx.
func (m *EffectManager) StatBonus(idx int, s model.Stat) float64 {
	var bonus float64
	for _, ae := range m.lists[idx] {
		bonus += ae.StatBonus(s)
	}
	return bonus
}

// Effects returns a copy of the active statuses of unit idx.
func (m *EffectManager) Effects(idx int) []*ActiveEffect {
	out := make([]*ActiveEffect, len(m.lists[idx]))
	copy(out, m.lists[idx])
	return out
}

// Count returns the number of statuses of the given polarity on unit idx.
func (m *EffectManager) Count(idx int, p data.Polarity) int {
	n := 0
	for _, ae := range m.lists[idx] {
		if ae.Polarity == p {
			n++
		}
	}
	return n
}

// Dispel removes dispellable statuses of the selected polarities from unit
// idx, oldest first. limit <= 0 removes all of them. Returns the count removed.
func (m *EffectManager) Dispel(idx int, positive, negative bool, limit int) int {
	removed := 0
	m.lists[idx] = filter(m.lists[idx], func(ae *ActiveEffect) bool {
		if !ae.Dispellable || (limit > 0 && removed >= limit) {
			return true
		}
		if (positive && ae.Polarity == data.PolarityPositive) ||
			(negative && ae.Polarity == data.PolarityNegative) {
			removed++
			return false
		}
		return true
	})
	return removed
}

// Clear drops every status of unit idx, permanent ones included.
// Called when the unit dies.
func (m *EffectManager) Clear(idx int) {
	clear(m.lists[idx])
	m.lists[idx] = m.lists[idx][:0]
}

// AbsorbDamage lets the shields of unit idx soak dmg in application order.
// Depleted shields are removed. Returns the damage left and the amount absorbed.
func (m *EffectManager) AbsorbDamage(idx int, dmg int32) (left, absorbed int32) {
	left = dmg
	for _, ae := range m.lists[idx] {
		if left == 0 {
			break
		}
		if ae.Kind != data.EffectShield || ae.Shield <= 0 {
			continue
		}
		take := min(ae.Shield, left)
		ae.Shield -= take
		left -= take
		absorbed += take
	}
	if absorbed > 0 {
		m.lists[idx] = filter(m.lists[idx], func(ae *ActiveEffect) bool {
			return ae.Kind != data.EffectShield || ae.Shield > 0
		})
	}
	return left, absorbed
}

// ShieldTotal returns the remaining absorb pool of unit idx.
func (m *EffectManager) ShieldTotal(idx int) int32 {
	var total int32
	for _, ae := range m.lists[idx] {
		if ae.Kind == data.EffectShield {
			total += ae.Shield
		}
	}
	return total
}

// ReflectRatio returns the summed reflect ratio of unit idx.
func (m *EffectManager) ReflectRatio(idx int) float64 {
	var ratio float64
	for _, ae := range m.lists[idx] {
		ratio += ae.Reflect * float64(ae.Stacks)
	}
	return ratio
}

// Tick is one due periodic effect, reported by Advance.
type Tick struct {
	Effect *ActiveEffect
	Damage int32
	Heal   int32
}

// Advance moves every status one round forward: timers are decremented,
// expired instances removed, then due periodic effects of the survivors
// are collected. Units are visited in arena order.
func (m *EffectManager) Advance(round int32) []Tick {
	var ticks []Tick
	for idx := range m.lists {
		m.lists[idx] = filter(m.lists[idx], func(ae *ActiveEffect) bool {
			if ae.Advance() {
				return true
			}
			slog.Debug("status expired", "skill", ae.SkillID, "kind", ae.Kind, "target", ae.Target)
			return false
		})
		for _, ae := range m.lists[idx] {
			if !ae.ShouldTick(round) {
				continue
			}
			ae.LastTick = round
			ticks = append(ticks, Tick{
				Effect: ae,
				Damage: ae.TickDamage * ae.Stacks,
				Heal:   ae.TickHeal * ae.Stacks,
			})
		}
	}
	return ticks
}

// Snapshot returns the record view of the statuses of unit idx.
func (m *EffectManager) Snapshot(idx int) []model.BuffSnapshot {
	if len(m.lists[idx]) == 0 {
		return nil
	}
	out := make([]model.BuffSnapshot, 0, len(m.lists[idx]))
	for _, ae := range m.lists[idx] {
		out = append(out, ae.snapshot())
	}
	return out
}

// filter keeps the effects for which keep returns true, in place.
func filter(effects []*ActiveEffect, keep func(*ActiveEffect) bool) []*ActiveEffect {
	n := 0
	for _, ae := range effects {
		if keep(ae) {
			effects[n] = ae
			n++
		}
	}
	clear(effects[n:])
	return effects[:n]
}
