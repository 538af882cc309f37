package skill

import (
	"github.com/udisondev/turnbattle/internal/data"
	"github.com/udisondev/turnbattle/internal/model"
)

// stubDice returns queued values, then a fallback. The default fallback
// Float64 0.999 passes any roll with probability 1 and fails the rest.
type stubDice struct {
	floats []float64
	ints   []int
}

func (d *stubDice) Float64() float64 {
	if len(d.floats) == 0 {
		return 0.999
	}
	v := d.floats[0]
	d.floats = d.floats[1:]
	return v
}

func (d *stubDice) IntN(n int) int {
	if len(d.ints) == 0 {
		return 0
	}
	v := d.ints[0] % n
	d.ints = d.ints[1:]
	return v
}

// hero builds a roster entry with crit disabled so damage is exact.
func hero(uid int64, hp, atk, def, spd float64) model.Hero {
	return model.Hero{
		UID: uid,
		Attrs: map[int32]float64{
			model.AttrHP:       hp,
			model.AttrAttack:   atk,
			model.AttrDefense:  def,
			model.AttrSpeed:    spd,
			model.AttrCritRate: 0,
		},
		AttackID: 1001,
	}
}

var testDefaults = model.StatDefaults{CritRate: 0.2, CritDamage: 1.5}

// arena lays side A then side B out in arena order.
func arena(a, b []model.Hero) []*model.Unit {
	var units []*model.Unit
	for slot, h := range a {
		units = append(units, model.NewUnit(h, model.SideA, slot, len(units), testDefaults, 100))
	}
	for slot, h := range b {
		units = append(units, model.NewUnit(h, model.SideB, slot, len(units), testDefaults, 100))
	}
	return units
}

func newTestExecutor(units []*model.Unit, d *stubDice) *Executor {
	ex := NewExecutor(units, NewEffectManager(len(units)), d)
	ex.SetRound(1)
	return ex
}

func skillWith(id int32, typ data.SkillType, effects ...data.EffectDef) *data.SkillTemplate {
	return &data.SkillTemplate{ID: id, Name: "test", Type: typ, Priority: 5, Effects: effects}
}

func effect(kind data.EffectKind, target data.TargetRule, base int32) data.EffectDef {
	return data.EffectDef{
		Kind:        kind,
		Target:      target,
		TargetCount: 1,
		Base:        base,
		MaxStacks:   1,
		Probability: 1,
	}
}

func basicAttack() *data.SkillTemplate {
	e := effect(data.EffectDamage, data.TargetSingleEnemy, 0)
	e.ScaleStat = model.StatAttack
	e.ScaleFactor = 1
	e.CanCrit = true
	return skillWith(1001, data.SkillBasic, e)
}

func actionsOf(actions []model.Action, kind model.ActionKind) []model.Action {
	var out []model.Action
	for _, a := range actions {
		if a.Kind == kind {
			out = append(out, a)
		}
	}
	return out
}
