package skill

import (
	"log/slog"

	"github.com/udisondev/turnbattle/internal/data"
	"github.com/udisondev/turnbattle/internal/game/combat"
	"github.com/udisondev/turnbattle/internal/model"
)

// ReviveEffect brings a dead unit back with HPFraction of its max HP
// (at least 1). Living targets are left untouched.
type ReviveEffect struct{}

func (ReviveEffect) Kind() data.EffectKind { return data.EffectRevive }

func (ReviveEffect) Apply(c *Cast, target *model.Unit) bool {
	p, ok := c.Def.Params.(data.ReviveParams)
	if !ok || target.IsAlive() {
		return false
	}
	hp := max(1, combat.Fraction(target.MaxHP(), p.HPFraction))
	if !target.Revive(hp) {
		return false
	}
	c.ex.effects.Clear(target.Index)

	slog.Debug("unit revived", "target", target.UID, "hp", hp, "by", c.Caster.UID)

	c.ex.emit(model.Action{
		Kind:    model.ActionRevive,
		SkillID: c.Skill.ID,
		Actor:   c.Caster.Ref(),
		Targets: []model.UnitRef{target.Ref()},
		Value:   hp,
		Actual:  target.CurrentHP(),
	})
	return true
}
