package skill

import (
	"github.com/udisondev/turnbattle/internal/data"
	"github.com/udisondev/turnbattle/internal/model"
)

// DamageEffect deals base + scaled damage, reduced by half the target's defense.
type DamageEffect struct{}

func (DamageEffect) Kind() data.EffectKind { return data.EffectDamage }

func (DamageEffect) Apply(c *Cast, target *model.Unit) bool {
	c.strike(target, c.scaled())
	return true
}
