package skill

import (
	"github.com/udisondev/turnbattle/internal/data"
	"github.com/udisondev/turnbattle/internal/game/combat"
	"github.com/udisondev/turnbattle/internal/model"
)

// LifestealEffect deals damage and heals the caster for Ratio of the HP
// actually removed, capped at the caster's missing HP.
type LifestealEffect struct{}

func (LifestealEffect) Kind() data.EffectKind { return data.EffectLifesteal }

func (LifestealEffect) Apply(c *Cast, target *model.Unit) bool {
	p, ok := c.Def.Params.(data.LifestealParams)
	if !ok {
		return false
	}
	h := c.strike(target, c.scaled())
	if h.actual > 0 && c.Caster.IsAlive() {
		if heal := combat.Fraction(h.actual, p.Ratio); heal > 0 {
			c.ex.restore(c.Caster, c.Caster, heal, c.Skill.ID, model.ActionHeal)
		}
	}
	return true
}
