package skill

import (
	"log/slog"

	"github.com/udisondev/turnbattle/internal/data"
	"github.com/udisondev/turnbattle/internal/model"
)

// DispelEffect removes dispellable statuses of the configured polarities.
// The action reports how many instances were removed.
type DispelEffect struct{}

func (DispelEffect) Kind() data.EffectKind { return data.EffectDispel }

func (DispelEffect) Apply(c *Cast, target *model.Unit) bool {
	p, ok := c.Def.Params.(data.DispelParams)
	if !ok {
		return false
	}
	n := int32(c.ex.effects.Dispel(target.Index, p.Positive, p.Negative, p.Max))

	slog.Debug("dispel effect",
		"skill", c.Skill.ID,
		"target", target.UID,
		"positive", p.Positive,
		"negative", p.Negative,
		"removed", n)

	c.ex.emit(model.Action{
		Kind:    model.ActionDispel,
		SkillID: c.Skill.ID,
		Actor:   c.Caster.Ref(),
		Targets: []model.UnitRef{target.Ref()},
		Value:   n,
		Actual:  n,
	})
	return true
}
