package battle

import (
	"slices"

	"github.com/udisondev/turnbattle/internal/data"
	"github.com/udisondev/turnbattle/internal/model"
)

// mapCatalog is a Catalog over hand-written templates, bypassing validation.
type mapCatalog map[int32]*data.SkillTemplate

func (c mapCatalog) Lookup(id int32) (*data.SkillTemplate, bool) {
	t, ok := c[id]
	return t, ok
}

func (c mapCatalog) LookupBuff(string) (*data.BuffTemplate, bool) { return nil, false }

func (c mapCatalog) ListAll() []*data.SkillTemplate {
	out := make([]*data.SkillTemplate, 0, len(c))
	for _, t := range c {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b *data.SkillTemplate) int { return int(a.ID - b.ID) })
	return out
}

func catalogOf(skills ...*data.SkillTemplate) mapCatalog {
	c := mapCatalog{}
	for _, s := range skills {
		c[s.ID] = s
	}
	return c
}

func testConfig() Config {
	return Config{
		MaxRounds:     30,
		Defaults:      model.StatDefaults{CritRate: 0.2, CritDamage: 1.5},
		ManaPerAction: 10,
		MaxMana:       100,
	}
}

// hero builds a roster entry with crits disabled.
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

func basicAttack() *data.SkillTemplate {
	return &data.SkillTemplate{
		ID: 1001, Name: "Basic Attack", Type: data.SkillBasic, Priority: 1,
		Effects: []data.EffectDef{{
			Kind: data.EffectDamage, Target: data.TargetSingleEnemy, TargetCount: 1,
			ScaleStat: model.StatAttack, ScaleFactor: 1,
			Stacking: data.StackNone, MaxStacks: 1, Probability: 1, CanCrit: true,
		}},
	}
}

func selfBuff(id int32, typ data.SkillType, stat model.Stat, value float64) *data.SkillTemplate {
	return &data.SkillTemplate{
		ID: id, Name: "buff", Type: typ, Priority: 2,
		Effects: []data.EffectDef{{
			Kind: data.EffectBuff, Target: data.TargetSelf, TargetCount: 1,
			Duration: 1, Stacking: data.StackNone, MaxStacks: 1, Probability: 1,
			Params: &data.StatusParams{Modifiers: []data.StatMod{{Stat: stat, Value: value}}, Dispellable: true},
		}},
	}
}

func healSkill(id int32, target data.TargetRule, base int32) *data.SkillTemplate {
	return &data.SkillTemplate{
		ID: id, Name: "heal", Type: data.SkillTriggered, Priority: 2,
		Effects: []data.EffectDef{{
			Kind: data.EffectHeal, Target: target, TargetCount: 1, Base: base,
			Stacking: data.StackNone, MaxStacks: 1, Probability: 1,
		}},
	}
}

func kinds(actions []model.Action) []model.ActionKind {
	out := make([]model.ActionKind, len(actions))
	for i, a := range actions {
		out[i] = a.Kind
	}
	return out
}
