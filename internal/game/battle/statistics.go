package battle

import (
	"time"

	"github.com/udisondev/turnbattle/internal/model"
)

func (b *battle) statistics(elapsed time.Duration) model.Statistics {
	st := model.Statistics{
		TotalRounds:    len(b.rounds),
		SideAUnitsLeft: b.alive(model.SideA),
		SideBUnitsLeft: b.alive(model.SideB),
		Duration:       elapsed,
		Units:          make([]model.UnitStatistics, 0, len(b.units)),
	}
	for _, r := range b.rounds {
		st.TotalActions += len(r.Actions)
	}
	for _, u := range b.units {
		if u.Side == model.SideA {
			st.SideADamageDealt += u.Stats.DamageDealt
		} else {
			st.SideBDamageDealt += u.Stats.DamageDealt
		}
		st.Units = append(st.Units, model.UnitStatistics{
			Ref:      u.Ref(),
			Name:     u.Name,
			Survived: u.IsAlive(),
			Counters: u.Stats,
		})
	}
	return st
}
