package battle

import (
	"github.com/udisondev/turnbattle/internal/data"
	"github.com/udisondev/turnbattle/internal/model"
)

// conditionsHold evaluates conditions in order and stops at the first one
// that fails, so a random condition only draws when it is reached.
func (b *battle) conditionsHold(u *model.Unit, conds []data.Condition) bool {
	for _, c := range conds {
		if !c.Op.Compare(b.conditionValue(u, c.Type), c.Value) {
			return false
		}
	}
	return true
}

func (b *battle) conditionValue(u *model.Unit, t data.ConditionType) float64 {
	switch t {
	case data.CondSelfHP:
		return u.HPPercentage()
	case data.CondSelfMP:
		return float64(u.CurrentMP())
	case data.CondEnemyCount:
		return float64(b.alive(u.Side.Opponent()))
	case data.CondAllyCount:
		return float64(b.alive(u.Side))
	case data.CondHasBuff:
		return float64(b.sideStatuses(u.Side, data.PolarityPositive))
	case data.CondHasDebuff:
		return float64(b.sideStatuses(u.Side, data.PolarityNegative))
	case data.CondRound:
		return float64(b.round)
	case data.CondEnemyHP:
		lowest := 1.0
		for _, e := range b.units {
			if e.Side != u.Side && e.IsAlive() && e.HPPercentage() < lowest {
				lowest = e.HPPercentage()
			}
		}
		return lowest
	case data.CondRandom:
		return b.dice.Float64()
	}
	return 0
}

// sideStatuses counts statuses of polarity p on the living units of side.
func (b *battle) sideStatuses(side model.Side, p data.Polarity) int {
	n := 0
	for _, u := range b.units {
		if u.Side == side && u.IsAlive() {
			n += b.effects.Count(u.Index, p)
		}
	}
	return n
}
