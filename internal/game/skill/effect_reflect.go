package skill

import (
	"github.com/udisondev/turnbattle/internal/data"
	"github.com/udisondev/turnbattle/internal/model"
)

// ReflectEffect grants a timed status that returns Ratio of received
// damage to the attacker.
type ReflectEffect struct{}

func (ReflectEffect) Kind() data.EffectKind { return data.EffectReflect }

func (ReflectEffect) Apply(c *Cast, target *model.Unit) bool {
	p, ok := c.Def.Params.(data.ReflectParams)
	if !ok {
		return false
	}
	ae := c.newStatus(target)
	ae.Reflect = p.Ratio
	c.addStatus(target, ae, model.ActionBuff, c.Def.Duration)
	return true
}
