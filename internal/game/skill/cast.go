package skill

import (
	"github.com/udisondev/turnbattle/internal/data"
	"github.com/udisondev/turnbattle/internal/game/combat"
	"github.com/udisondev/turnbattle/internal/model"
)

// Cast is the context of one effect being resolved for one caster.
type Cast struct {
	ex     *Executor
	Caster *model.Unit
	Skill  *data.SkillTemplate
	Def    *data.EffectDef
}

// scaled returns base + floor(caster stat × factor).
func (c *Cast) scaled() int32 {
	return combat.ScaledValue(c.Def.Base, c.ex.Stat(c.Caster, c.Def.ScaleStat), c.Def.ScaleFactor)
}

// hit describes the outcome of one strike.
type hit struct {
	damage   int32 // after defense, crit, block and rates
	actual   int32 // HP removed
	absorbed int32
	crit     bool
	miss     bool
	blocked  bool
}

// strike runs the damage pipeline of one hit on target and emits the
// damage action, followed by death, lifesteal and reflect actions.
//
// Pipeline: dodge → defense → crit → block → damage/reduction rates →
// shields → HP.
func (c *Cast) strike(target *model.Unit, raw int32) hit {
	ex, caster, def := c.ex, c.Caster, c.Def
	var h hit

	if combat.RollIfPositive(ex.dice, combat.MissChance(ex.Stat(caster, model.StatHitRate), ex.Stat(target, model.StatDodgeRate))) {
		h.miss = true
		ex.emit(model.Action{
			Kind:    model.ActionDamage,
			SkillID: c.Skill.ID,
			Actor:   caster.Ref(),
			Targets: []model.UnitRef{target.Ref()},
			Miss:    true,
		})
		return h
	}

	dmg := max(combat.MinDamage, raw)
	if !def.IgnoreDefense {
		dmg = combat.ApplyDefense(raw, ex.Stat(target, model.StatDefense))
	}
	if def.CanCrit && combat.Roll(ex.dice, ex.Stat(caster, model.StatCritRate)) {
		dmg = combat.ApplyCrit(dmg, ex.Stat(caster, model.StatCritDamage))
		h.crit = true
		caster.Stats.Crits++
	}
	if combat.RollIfPositive(ex.dice, combat.BlockChance(ex.Stat(target, model.StatBlockRate), ex.Stat(caster, model.StatPierceRate))) {
		dmg = combat.ApplyBlock(dmg)
		h.blocked = true
	}
	if !def.IgnoreResist {
		bonus := ex.Stat(caster, model.StatDamageRate)
		reduction := ex.Stat(target, model.StatReduceRate)
		if c.Skill.Type != data.SkillBasic {
			bonus += ex.Stat(caster, model.StatSkillDamageRate)
			reduction += ex.Stat(target, model.StatSkillReduceRate)
		}
		dmg = combat.ApplyRates(dmg, bonus, reduction)
	}
	h.damage = dmg

	left, absorbed := ex.effects.AbsorbDamage(target.Index, dmg)
	h.absorbed = absorbed
	h.actual = target.ReduceHP(left)
	caster.Stats.DamageDealt += int64(h.actual)
	target.Stats.DamageReceived += int64(h.actual)

	ex.emit(model.Action{
		Kind:     model.ActionDamage,
		SkillID:  c.Skill.ID,
		Actor:    caster.Ref(),
		Targets:  []model.UnitRef{target.Ref()},
		Value:    dmg,
		Actual:   h.actual,
		Absorbed: absorbed,
		Critical: h.crit,
		Blocked:  h.blocked,
	})
	if h.actual > 0 {
		ex.checkDeath(target, caster, c.Skill.ID)
	}

	if rate := ex.Stat(caster, model.StatLifestealRate); rate > 0 && h.actual > 0 && caster.IsAlive() {
		if heal := combat.Fraction(h.actual, rate); heal > 0 {
			ex.restore(caster, caster, heal, c.Skill.ID, model.ActionHeal)
		}
	}

	if ratio := ex.effects.ReflectRatio(target.Index); ratio > 0 && caster != target && caster.IsAlive() {
		c.reflect(target, combat.Fraction(dmg, ratio))
	}
	return h
}

// reflect returns dmg from holder to the caster. Reflected damage is not
// reflected again and ignores defense.
func (c *Cast) reflect(holder *model.Unit, dmg int32) {
	if dmg <= 0 {
		return
	}
	ex, caster := c.ex, c.Caster
	left, absorbed := ex.effects.AbsorbDamage(caster.Index, dmg)
	actual := caster.ReduceHP(left)
	holder.Stats.DamageDealt += int64(actual)
	caster.Stats.DamageReceived += int64(actual)
	ex.emit(model.Action{
		Kind:     model.ActionReflect,
		SkillID:  c.Skill.ID,
		Actor:    holder.Ref(),
		Targets:  []model.UnitRef{caster.Ref()},
		Value:    dmg,
		Actual:   actual,
		Absorbed: absorbed,
	})
	if actual > 0 {
		ex.checkDeath(caster, holder, c.Skill.ID)
	}
}

// newStatus builds a status instance of the current effect for target.
func (c *Cast) newStatus(target *model.Unit) *ActiveEffect {
	def := c.Def
	ae := &ActiveEffect{
		Source:      c.Caster.Index,
		Target:      target.Index,
		SkillID:     c.Skill.ID,
		Kind:        def.Kind,
		Polarity:    def.Kind.Polarity(),
		Duration:    def.Duration,
		Remaining:   def.Duration,
		Stacks:      1,
		MaxStacks:   def.MaxStacks,
		LastTick:    c.ex.round,
		Dispellable: true,
	}
	if sp := def.Status(); sp != nil {
		ae.Modifiers = sp.Modifiers
		ae.TickDamage = sp.TickDamage
		ae.TickHeal = sp.TickHeal
		ae.TickInterval = sp.TickInterval
		ae.Dispellable = sp.Dispellable
	}
	return ae
}

// addStatus installs ae and emits an action of kind reporting the
// resulting stack count.
func (c *Cast) addStatus(target *model.Unit, ae *ActiveEffect, kind model.ActionKind, value int32) {
	inst := c.ex.effects.Add(ae, c.Def.Stacking)
	c.ex.emit(model.Action{
		Kind:    kind,
		SkillID: c.Skill.ID,
		Actor:   c.Caster.Ref(),
		Targets: []model.UnitRef{target.Ref()},
		Value:   value,
		Actual:  inst.Stacks,
	})
}
