package battle

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/udisondev/turnbattle/internal/data"
	"github.com/udisondev/turnbattle/internal/game/combat"
	"github.com/udisondev/turnbattle/internal/game/skill"
	"github.com/udisondev/turnbattle/internal/model"
)

// maxTriggerDepth bounds chains of on_kill/on_death triggers within one
// drain so a loop of mutually killing triggers always terminates.
const maxTriggerDepth = 16

// battle is the state of one Resolve call. Never shared.
type battle struct {
	cfg     Config
	catalog data.Catalog

	units     []*model.Unit // arena order: side A slots, then side B slots
	order     []*model.Unit // initiative order
	dice      combat.Dice
	effects   *skill.EffectManager
	exec      *skill.Executor
	cooldowns *skill.Cooldowns

	round  int32
	rounds []model.Round
	cur    *model.Round
}

func newBattle(cfg Config, catalog data.Catalog, teamOne, teamTwo []model.Hero, seed uint64) *battle {
	units := make([]*model.Unit, 0, len(teamOne)+len(teamTwo))
	for slot, h := range teamOne {
		units = append(units, model.NewUnit(h, model.SideA, slot, len(units), cfg.Defaults, cfg.MaxMana))
	}
	for slot, h := range teamTwo {
		units = append(units, model.NewUnit(h, model.SideB, slot, len(units), cfg.Defaults, cfg.MaxMana))
	}

	dice := combat.NewDice(seed)
	effects := skill.NewEffectManager(len(units))
	return &battle{
		cfg:       cfg,
		catalog:   catalog,
		units:     units,
		dice:      dice,
		effects:   effects,
		exec:      skill.NewExecutor(units, effects, dice),
		cooldowns: skill.NewCooldowns(),
	}
}

// applyPassives installs every passive skill of every unit before round 1.
func (b *battle) applyPassives() {
	for _, u := range b.units {
		for _, id := range u.PassiveSkills {
			t, ok := b.catalog.Lookup(id)
			if !ok {
				slog.Debug("passive skill not in catalog", "unit", u.UID, "skill", id)
				continue
			}
			if t.Type != data.SkillPassive {
				continue
			}
			b.exec.ApplyPassive(u, t)
		}
	}
}

// computeInitiative orders units by effective speed, highest first.
// Equal speeds are ordered by a random key drawn per unit in arena order.
func (b *battle) computeInitiative() {
	type entry struct {
		u     *model.Unit
		speed float64
		key   float64
	}
	entries := make([]entry, len(b.units))
	for i, u := range b.units {
		entries[i] = entry{u: u, speed: b.exec.Stat(u, model.StatSpeed), key: b.dice.Float64()}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].speed != entries[j].speed {
			return entries[i].speed > entries[j].speed
		}
		return entries[i].key < entries[j].key
	})

	b.order = make([]*model.Unit, len(entries))
	for i, e := range entries {
		b.order[i] = e.u
	}
}

// playRound runs one full round: ticks, round-start triggers, cooldowns,
// then one turn per living unit in initiative order.
func (b *battle) playRound(n int32) {
	b.round = n
	b.exec.SetRound(n)
	b.cur = &model.Round{Number: n}

	b.record(b.exec.RunTicks())
	b.drainDeaths()

	if !b.finished() {
		for _, u := range b.order {
			if u.IsAlive() {
				b.fireTriggers(u, data.TriggerRoundStart)
			}
		}
		b.drainDeaths()
	}

	b.cooldowns.Tick()

	for _, u := range b.order {
		if b.finished() {
			break
		}
		if u.IsDead() {
			continue
		}
		b.takeTurn(u)
		b.drainDeaths()
	}

	b.cur.Units = b.snapshot()
	b.cur.Description = b.describe()
	b.rounds = append(b.rounds, *b.cur)
	b.cur = nil
}

// takeTurn resolves the acting unit's chosen skill and charges it.
func (b *battle) takeTurn(u *model.Unit) {
	t := b.chooseSkill(u)
	if t == nil {
		slog.Debug("unit has no usable skill", "unit", u.UID, "side", u.Side)
		return
	}

	// Ни одна цель не найдена или не сработала: ход потрачен без cost/cooldown.
	actions := b.exec.Cast(u, t)
	if actions == nil {
		slog.Debug("skill failed", "unit", u.UID, "skill", t.ID)
		return
	}
	if t.Type == data.SkillActive {
		b.cooldowns.Start(u.Index, t.ID, t.Cooldown)
		u.SetCurrentMP(u.CurrentMP() - t.Cost)
	}
	u.SetCurrentMP(u.CurrentMP() + b.cfg.ManaPerAction)
	b.record(actions)
}

// chooseSkill returns the active skill when it is usable, otherwise the
// basic attack. Nil when neither is in the catalog.
func (b *battle) chooseSkill(u *model.Unit) *data.SkillTemplate {
	if u.ActiveSkill != 0 {
		t, ok := b.catalog.Lookup(u.ActiveSkill)
		switch {
		case !ok:
			slog.Debug("active skill not in catalog", "unit", u.UID, "skill", u.ActiveSkill)
		case t.Type == data.SkillActive && b.usable(u, t):
			return t
		}
	}

	t, ok := b.catalog.Lookup(u.AttackSkill)
	if !ok {
		slog.Debug("basic attack not in catalog", "unit", u.UID, "skill", u.AttackSkill)
		return nil
	}
	return t
}

func (b *battle) usable(u *model.Unit, t *data.SkillTemplate) bool {
	if !b.cooldowns.Ready(u.Index, t.ID) || u.CurrentMP() < t.Cost {
		return false
	}
	return b.conditionsHold(u, t.Conditions)
}

// fireTriggers casts every triggered skill of u bound to trigger.
func (b *battle) fireTriggers(u *model.Unit, trigger data.Trigger) {
	for _, id := range u.PassiveSkills {
		t, ok := b.catalog.Lookup(id)
		if !ok || t.Type != data.SkillTriggered || t.Trigger != trigger {
			continue
		}
		b.record(b.exec.Cast(u, t))
	}
}

// drainDeaths fires on_kill and on_death triggers for every pending death,
// including deaths caused by those triggers, up to maxTriggerDepth waves.
func (b *battle) drainDeaths() {
	for depth := 0; depth < maxTriggerDepth; depth++ {
		deaths := b.exec.TakeDeaths()
		if len(deaths) == 0 {
			return
		}
		for _, d := range deaths {
			if d.Killer != nil && d.Killer != d.Victim && d.Killer.IsAlive() {
				b.fireTriggers(d.Killer, data.TriggerOnKill)
			}
			b.fireTriggers(d.Victim, data.TriggerOnDeath)
		}
	}
	if rest := b.exec.TakeDeaths(); len(rest) > 0 {
		slog.Warn("trigger chain truncated", "round", b.round, "pending", len(rest))
	}
}

func (b *battle) record(actions []model.Action) {
	for _, a := range actions {
		a.Seq = len(b.cur.Actions) + 1
		b.cur.Actions = append(b.cur.Actions, a)
	}
}

func (b *battle) alive(side model.Side) int {
	n := 0
	for _, u := range b.units {
		if u.Side == side && u.IsAlive() {
			n++
		}
	}
	return n
}

// finished reports whether at least one side has no living unit.
func (b *battle) finished() bool {
	return b.alive(model.SideA) == 0 || b.alive(model.SideB) == 0
}

func (b *battle) result() model.Result {
	a, o := b.alive(model.SideA), b.alive(model.SideB)
	switch {
	case a > 0 && o == 0:
		return model.ResultVictory
	case a == 0 && o > 0:
		return model.ResultDefeat
	}
	return model.ResultDraw
}

func (b *battle) snapshot() []model.UnitSnapshot {
	out := make([]model.UnitSnapshot, len(b.units))
	for i, u := range b.units {
		out[i] = model.UnitSnapshot{
			Ref:       u.Ref(),
			CurrentHP: u.CurrentHP(),
			MaxHP:     u.MaxHP(),
			CurrentMP: u.CurrentMP(),
			Shield:    b.effects.ShieldTotal(u.Index),
			Alive:     u.IsAlive(),
			Buffs:     b.effects.Snapshot(u.Index),
		}
	}
	return out
}

func (b *battle) describe() string {
	return fmt.Sprintf("round %d: %d actions, side A %d alive, side B %d alive",
		b.round, len(b.cur.Actions), b.alive(model.SideA), b.alive(model.SideB))
}
