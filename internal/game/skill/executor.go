package skill

import (
	"log/slog"

	"github.com/udisondev/turnbattle/internal/data"
	"github.com/udisondev/turnbattle/internal/game/combat"
	"github.com/udisondev/turnbattle/internal/model"
)

// Death is a unit death observed while resolving effects or ticks.
type Death struct {
	Victim *model.Unit
	Killer *model.Unit
}

// Executor resolves skills against the units of one battle.
// It owns no units: the arena, the EffectManager and the dice are
// shared with the battle loop that created it.
type Executor struct {
	units   []*model.Unit
	effects *EffectManager
	dice    combat.Dice
	round   int32

	actions []model.Action
	deaths  []Death
}

// NewExecutor creates an executor over the arena.
func NewExecutor(units []*model.Unit, effects *EffectManager, dice combat.Dice) *Executor {
	return &Executor{units: units, effects: effects, dice: dice}
}

// SetRound sets the round stamped on emitted actions and used for ticks.
func (ex *Executor) SetRound(round int32) {
	ex.round = round
}

// Effects returns the status manager.
func (ex *Executor) Effects() *EffectManager {
	return ex.effects
}

// Stat implements StatReader.
func (ex *Executor) Stat(u *model.Unit, s model.Stat) float64 {
	return s.Effective(u.Base(s), ex.effects.StatBonus(u.Index, s))
}

// Cast resolves every effect of t for caster, in order, and returns the
// emitted actions. Each effect selects its own targets; each target first
// rolls the effect's trigger probability.
//
// Returns nil when no effect triggered on any target: the skill failed and
// the caller must not charge cost or cooldown.
func (ex *Executor) Cast(caster *model.Unit, t *data.SkillTemplate) []model.Action {
	ex.actions = nil
	allowDead := t.Type == data.SkillTriggered && t.Trigger == data.TriggerOnDeath
	triggered := 0

	for i := range t.Effects {
		if caster.IsDead() && !allowDead {
			break
		}
		def := &t.Effects[i]
		handler, ok := effectRegistry[def.Kind]
		if !ok {
			slog.Warn("no handler for effect kind", "skill", t.ID, "kind", def.Kind)
			continue
		}

		c := &Cast{ex: ex, Caster: caster, Skill: t, Def: def}
		for _, target := range SelectTargets(def.Target, def.TargetCount, caster, ex.units, ex, ex.dice) {
			if caster.IsDead() && !allowDead {
				break
			}
			if !combat.Roll(ex.dice, def.Probability) {
				slog.Debug("effect did not trigger", "skill", t.ID, "kind", def.Kind, "target", target.UID)
				continue
			}
			if target.IsDead() && def.Kind != data.EffectRevive {
				continue
			}
			if handler.Apply(c, target) {
				triggered++
			}
		}
	}

	if triggered == 0 {
		ex.actions = nil
		return nil
	}
	caster.Stats.Actions++
	out := ex.actions
	ex.actions = nil
	return out
}

// ApplyPassive installs the status effects of a passive skill as permanent,
// non-dispellable instances. No probability is rolled and no action is
// emitted. Returns the number of instances applied.
func (ex *Executor) ApplyPassive(caster *model.Unit, t *data.SkillTemplate) int {
	applied := 0
	for i := range t.Effects {
		def := &t.Effects[i]
		if !def.Kind.IsStatus() {
			continue
		}
		c := &Cast{ex: ex, Caster: caster, Skill: t, Def: def}
		for _, target := range SelectTargets(def.Target, def.TargetCount, caster, ex.units, ex, ex.dice) {
			ae := c.newStatus(target)
			ae.Permanent = true
			ae.Dispellable = false
			if def.Kind == data.EffectShield {
				ae.Shield = c.scaled()
			}
			ex.effects.Add(ae, def.Stacking)
			applied++
		}
	}
	return applied
}

// RunTicks advances every status by one round and applies the periodic
// damage and healing that became due. Tick damage bypasses shields.
func (ex *Executor) RunTicks() []model.Action {
	ex.actions = nil
	for _, t := range ex.effects.Advance(ex.round) {
		target := ex.units[t.Effect.Target]
		source := ex.units[t.Effect.Source]
		if target.IsDead() {
			continue
		}

		if t.Damage > 0 {
			actual := target.ReduceHP(t.Damage)
			source.Stats.DamageDealt += int64(actual)
			target.Stats.DamageReceived += int64(actual)
			ex.emit(model.Action{
				Kind:    model.ActionTickDamage,
				SkillID: t.Effect.SkillID,
				Actor:   source.Ref(),
				Targets: []model.UnitRef{target.Ref()},
				Value:   t.Damage,
				Actual:  actual,
			})
			if actual > 0 {
				ex.checkDeath(target, source, t.Effect.SkillID)
			}
		}
		if t.Heal > 0 && target.IsAlive() {
			ex.restore(source, target, t.Heal, t.Effect.SkillID, model.ActionTickHeal)
		}
	}
	out := ex.actions
	ex.actions = nil
	return out
}

// TakeDeaths returns and forgets the deaths observed so far.
func (ex *Executor) TakeDeaths() []Death {
	d := ex.deaths
	ex.deaths = nil
	return d
}

func (ex *Executor) emit(a model.Action) {
	a.Round = ex.round
	ex.actions = append(ex.actions, a)
}

// restore heals target by value (capped at missing HP) and emits an action.
func (ex *Executor) restore(healer, target *model.Unit, value int32, skillID int32, kind model.ActionKind) int32 {
	actual := target.RestoreHP(combat.CalcHeal(value, target.CurrentHP(), target.MaxHP()))
	healer.Stats.HealingDone += int64(actual)
	target.Stats.HealingReceived += int64(actual)
	ex.emit(model.Action{
		Kind:    kind,
		SkillID: skillID,
		Actor:   healer.Ref(),
		Targets: []model.UnitRef{target.Ref()},
		Value:   value,
		Actual:  actual,
	})
	return actual
}

// checkDeath records the death of victim if it just died.
func (ex *Executor) checkDeath(victim, killer *model.Unit, skillID int32) {
	if victim.IsAlive() {
		return
	}
	ex.effects.Clear(victim.Index)
	if killer != victim {
		killer.Stats.Kills++
	}
	ex.deaths = append(ex.deaths, Death{Victim: victim, Killer: killer})
	ex.emit(model.Action{
		Kind:        model.ActionDeath,
		SkillID:     skillID,
		Actor:       killer.Ref(),
		Targets:     []model.UnitRef{victim.Ref()},
		Description: victim.Name + " falls",
	})
	slog.Debug("unit died", "victim", victim.UID, "side", victim.Side, "killer", killer.UID, "round", ex.round)
}
