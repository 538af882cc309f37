package skill

import (
	"github.com/udisondev/turnbattle/internal/data"
	"github.com/udisondev/turnbattle/internal/game/combat"
	"github.com/udisondev/turnbattle/internal/model"
)

// HealEffect restores HP, capped at the target's missing HP.
type HealEffect struct{}

func (HealEffect) Kind() data.EffectKind { return data.EffectHeal }

func (HealEffect) Apply(c *Cast, target *model.Unit) bool {
	if target.IsDead() {
		return false
	}
	value := combat.ApplyHealRates(c.scaled(),
		c.ex.Stat(c.Caster, model.StatHealRate),
		c.ex.Stat(target, model.StatHealedRate))
	c.ex.restore(c.Caster, target, value, c.Skill.ID, model.ActionHeal)
	return true
}
