package skill

import (
	"github.com/udisondev/turnbattle/internal/data"
	"github.com/udisondev/turnbattle/internal/model"
)

// StatusEffect applies a buff or debuff: stat modifiers per stack and an
// optional periodic damage/heal.
type StatusEffect struct {
	kind data.EffectKind
}

func (e StatusEffect) Kind() data.EffectKind { return e.kind }

func (e StatusEffect) Apply(c *Cast, target *model.Unit) bool {
	kind := model.ActionBuff
	if e.kind == data.EffectDebuff {
		kind = model.ActionDebuff
	}
	c.addStatus(target, c.newStatus(target), kind, c.Def.Duration)
	return true
}
