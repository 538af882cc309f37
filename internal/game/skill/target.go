package skill

import (
	"github.com/udisondev/turnbattle/internal/data"
	"github.com/udisondev/turnbattle/internal/game/combat"
	"github.com/udisondev/turnbattle/internal/model"
)

// SelectTargets resolves rule for caster against the arena.
//
// Only living units are considered, except for TargetDeadAlly which picks
// the first dead ally. Units are visited in arena order, so for
// lowest/highest rules the first unit reaching the extreme wins ties.
// Random rules draw count distinct units from dice.
func SelectTargets(rule data.TargetRule, count int, caster *model.Unit, units []*model.Unit, stats StatReader, dice combat.Dice) []*model.Unit {
	allies := func(u *model.Unit) bool { return u.Side == caster.Side && u.IsAlive() }
	enemies := func(u *model.Unit) bool { return u.Side != caster.Side && u.IsAlive() }

	switch rule {
	case data.TargetSelf:
		if caster.IsAlive() {
			return []*model.Unit{caster}
		}
		return nil

	case data.TargetSingleEnemy:
		return first(units, enemies)

	case data.TargetSingleAlly:
		if t := first(units, func(u *model.Unit) bool { return allies(u) && u != caster }); t != nil {
			return t
		}
		return first(units, allies)

	case data.TargetAllEnemies:
		return collect(units, enemies)

	case data.TargetAllAllies:
		return collect(units, allies)

	case data.TargetRandomEnemies:
		return pickRandom(collect(units, enemies), count, dice)

	case data.TargetRandomAllies:
		return pickRandom(collect(units, allies), count, dice)

	case data.TargetEnemyFrontLine:
		return collect(units, func(u *model.Unit) bool { return enemies(u) && u.FrontLine() })

	case data.TargetEnemyBackLine:
		return collect(units, func(u *model.Unit) bool { return enemies(u) && !u.FrontLine() })

	case data.TargetAllyFrontLine:
		return collect(units, func(u *model.Unit) bool { return allies(u) && u.FrontLine() })

	case data.TargetAllyBackLine:
		return collect(units, func(u *model.Unit) bool { return allies(u) && !u.FrontLine() })

	case data.TargetAllyLowestHP:
		return extreme(units, allies, func(u *model.Unit) float64 { return float64(u.CurrentHP()) }, false)

	case data.TargetEnemyLowestHP:
		return extreme(units, enemies, func(u *model.Unit) float64 { return float64(u.CurrentHP()) }, false)

	case data.TargetEnemyHighestHP:
		return extreme(units, enemies, func(u *model.Unit) float64 { return float64(u.CurrentHP()) }, true)

	case data.TargetEnemyHighestAttack:
		return extreme(units, enemies, func(u *model.Unit) float64 { return stats.Stat(u, model.StatAttack) }, true)

	case data.TargetAllyHighestAttack:
		return extreme(units, allies, func(u *model.Unit) float64 { return stats.Stat(u, model.StatAttack) }, true)

	case data.TargetDeadAlly:
		return first(units, func(u *model.Unit) bool { return u.Side == caster.Side && u.IsDead() })
	}
	return nil
}

func first(units []*model.Unit, match func(*model.Unit) bool) []*model.Unit {
	for _, u := range units {
		if match(u) {
			return []*model.Unit{u}
		}
	}
	return nil
}

func collect(units []*model.Unit, match func(*model.Unit) bool) []*model.Unit {
	var out []*model.Unit
	for _, u := range units {
		if match(u) {
			out = append(out, u)
		}
	}
	return out
}

// extreme returns the first unit with the lowest (or highest) key.
func extreme(units []*model.Unit, match func(*model.Unit) bool, key func(*model.Unit) float64, highest bool) []*model.Unit {
	var best *model.Unit
	var bestKey float64
	for _, u := range units {
		if !match(u) {
			continue
		}
		k := key(u)
		if best == nil || (highest && k > bestKey) || (!highest && k < bestKey) {
			best, bestKey = u, k
		}
	}
	if best == nil {
		return nil
	}
	return []*model.Unit{best}
}

// pickRandom draws up to count distinct units without replacement.
// The candidate slice is reordered in place.
func pickRandom(candidates []*model.Unit, count int, dice combat.Dice) []*model.Unit {
	n := min(max(count, 1), len(candidates))
	for i := range n {
		j := i + dice.IntN(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}
	return candidates[:n]
}
