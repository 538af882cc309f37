package skill

import (
	"github.com/udisondev/turnbattle/internal/data"
	"github.com/udisondev/turnbattle/internal/model"
)

// ShieldEffect grants a timed absorb pool equal to the computed value.
type ShieldEffect struct{}

func (ShieldEffect) Kind() data.EffectKind { return data.EffectShield }

func (ShieldEffect) Apply(c *Cast, target *model.Unit) bool {
	value := c.scaled()
	if value <= 0 {
		return false
	}
	ae := c.newStatus(target)
	ae.Shield = value
	c.addStatus(target, ae, model.ActionShield, value)
	return true
}
