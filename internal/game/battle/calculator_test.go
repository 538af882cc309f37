package battle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/turnbattle/internal/config"
	"github.com/udisondev/turnbattle/internal/data"
	"github.com/udisondev/turnbattle/internal/model"
)

func TestResolve_Duel(t *testing.T) {
	calc := NewCalculator(testConfig())
	rec := calc.Resolve(catalogOf(basicAttack()),
		[]model.Hero{hero(1, 100, 20, 0, 10)},
		[]model.Hero{hero(2, 100, 10, 4, 5)},
		7)

	require.NotEmpty(t, rec.Rounds)
	first := rec.Rounds[0]
	require.Len(t, first.Actions, 2)

	hit := first.Actions[0]
	assert.Equal(t, model.ActionDamage, hit.Kind)
	assert.Equal(t, int64(1), hit.Actor.UID)
	assert.Equal(t, int32(18), hit.Value)
	assert.Equal(t, int32(18), hit.Actual)
	assert.Equal(t, 1, hit.Seq)
	assert.Equal(t, int32(1), hit.Round)

	assert.Equal(t, int32(10), first.Actions[1].Actual)
	assert.Equal(t, 2, first.Actions[1].Seq)

	require.Len(t, first.Units, 2)
	assert.Equal(t, int32(90), first.Units[0].CurrentHP)
	assert.Equal(t, int32(82), first.Units[1].CurrentHP)
	assert.Equal(t, "round 1: 2 actions, side A 1 alive, side B 1 alive", first.Description)

	// 18 per round: the sixth hit kills, side B never acts in round 6.
	assert.Len(t, rec.Rounds, 6)
	assert.Equal(t, model.ResultVictory, rec.Result)
	assert.False(t, rec.TimedOut)
	last := rec.Rounds[5]
	assert.Equal(t, []model.ActionKind{model.ActionDamage, model.ActionDeath}, kinds(last.Actions))

	st := rec.Statistics
	assert.Equal(t, 6, st.TotalRounds)
	assert.Equal(t, 12, st.TotalActions)
	assert.Equal(t, 1, st.SideAUnitsLeft)
	assert.Equal(t, 0, st.SideBUnitsLeft)
	assert.Equal(t, int64(100), st.SideADamageDealt)
	assert.Equal(t, int64(50), st.SideBDamageDealt)
	require.Len(t, st.Units, 2)
	assert.True(t, st.Units[0].Survived)
	assert.Equal(t, int32(1), st.Units[0].Counters.Kills)
	assert.Equal(t, int32(6), st.Units[0].Counters.Actions)

	assert.Equal(t, uint64(7), rec.Seed)
	assert.Len(t, rec.Checksum, 64)
	assert.False(t, rec.EndedAt.Before(rec.StartedAt))
}

func TestResolve_DuelEqualDefense(t *testing.T) {
	rec := NewCalculator(testConfig()).Resolve(catalogOf(basicAttack()),
		[]model.Hero{hero(1, 100, 20, 5, 10)},
		[]model.Hero{hero(2, 100, 15, 5, 5)},
		11)

	require.NotEmpty(t, rec.Rounds)
	first := rec.Rounds[0].Actions
	require.Len(t, first, 2)
	assert.Equal(t, int32(18), first[0].Actual, "20 - floor(5/2)")
	assert.Equal(t, int32(13), first[1].Actual, "15 - floor(5/2)")

	assert.Len(t, rec.Rounds, 6)
	assert.Equal(t, model.ResultVictory, rec.Result)
	assert.Equal(t, int64(65), rec.Statistics.SideBDamageDealt)
}

func TestResolve_HugeHPStaysAlive(t *testing.T) {
	rec := NewCalculator(testConfig()).Resolve(catalogOf(basicAttack()),
		[]model.Hero{hero(1, 100, 20, 0, 10)},
		[]model.Hero{hero(2, 3e9, 5, 0, 5)},
		2)

	// hp saturates at MaxInt32 instead of wrapping to a dead unit
	require.Len(t, rec.Rounds, 20)
	assert.Equal(t, model.ResultDefeat, rec.Result)
	b := rec.Rounds[0].Units[1]
	assert.Equal(t, int32(math.MaxInt32), b.MaxHP)
	assert.Equal(t, int32(math.MaxInt32-20), b.CurrentHP)
}

func TestResolve_Defeat(t *testing.T) {
	calc := NewCalculator(testConfig())
	rec := calc.Resolve(catalogOf(basicAttack()),
		[]model.Hero{hero(1, 10, 1, 0, 5)},
		[]model.Hero{hero(2, 100, 50, 0, 10)},
		1)

	require.Len(t, rec.Rounds, 1)
	assert.Equal(t, model.ResultDefeat, rec.Result)
	// the slower unit died before its turn
	assert.Equal(t, []model.ActionKind{model.ActionDamage, model.ActionDeath}, kinds(rec.Rounds[0].Actions))
}

func TestResolve_TimeoutIsDraw(t *testing.T) {
	cfg := testConfig()
	cfg.MaxRounds = 5
	rec := NewCalculator(cfg).Resolve(catalogOf(basicAttack()),
		[]model.Hero{hero(1, 1_000_000, 1, 100, 10)},
		[]model.Hero{hero(2, 1_000_000, 1, 100, 5)},
		3)

	assert.Len(t, rec.Rounds, 5)
	assert.Equal(t, model.ResultDraw, rec.Result)
	assert.True(t, rec.TimedOut)
	assert.Equal(t, int32(1), rec.Rounds[0].Actions[0].Actual, "minimum damage")
}

func TestResolve_MissingSkillsDoNotStall(t *testing.T) {
	cfg := testConfig()
	cfg.MaxRounds = 3
	h := hero(1, 100, 20, 0, 10)
	h.AttackID = 4242
	rec := NewCalculator(cfg).Resolve(catalogOf(basicAttack()),
		[]model.Hero{h},
		[]model.Hero{hero(2, 1000, 1, 0, 5)},
		3)

	assert.Len(t, rec.Rounds, 3)
	for _, r := range rec.Rounds {
		for _, a := range r.Actions {
			assert.NotEqual(t, int64(1), a.Actor.UID, "unit without skills never acts")
		}
	}
}

func TestResolve_Passive(t *testing.T) {
	ironSkin := selfBuff(2001, data.SkillPassive, model.StatDefense, 10)
	a := hero(1, 100, 20, 0, 10)
	a.PassiveSkillIDs = []int32{2001, 9999}

	rec := NewCalculator(testConfig()).Resolve(catalogOf(basicAttack(), ironSkin),
		[]model.Hero{a},
		[]model.Hero{hero(2, 100, 10, 0, 5)},
		11)

	assert.Equal(t, int32(5), rec.Rounds[0].Actions[1].Actual, "10 attack against 10 defense")
	require.Len(t, rec.Rounds, 5)
	for _, r := range rec.Rounds {
		require.Len(t, r.Units[0].Buffs, 1)
		assert.True(t, r.Units[0].Buffs[0].Permanent)
		assert.Equal(t, int32(2001), r.Units[0].Buffs[0].SkillID)
	}
}

func TestResolve_RoundStartTrigger(t *testing.T) {
	cry := selfBuff(3001, data.SkillTriggered, model.StatAttack, 5)
	cry.Trigger = data.TriggerRoundStart
	a := hero(1, 100, 20, 0, 10)
	a.PassiveSkillIDs = []int32{3001}

	rec := NewCalculator(testConfig()).Resolve(catalogOf(basicAttack(), cry),
		[]model.Hero{a},
		[]model.Hero{hero(2, 100, 10, 0, 5)},
		5)

	actions := rec.Rounds[0].Actions
	require.GreaterOrEqual(t, len(actions), 2)
	assert.Equal(t, model.ActionBuff, actions[0].Kind)
	assert.Equal(t, int32(3001), actions[0].SkillID)
	assert.Equal(t, int32(25), actions[1].Actual)
}

func TestResolve_DeathTriggers(t *testing.T) {
	bloodlust := healSkill(3002, data.TargetSelf, 10)
	bloodlust.Trigger = data.TriggerOnKill
	martyrdom := healSkill(3003, data.TargetAllAllies, 20)
	martyrdom.Trigger = data.TriggerOnDeath

	a := hero(1, 100, 50, 0, 10)
	a.PassiveSkillIDs = []int32{3002}
	b1 := hero(2, 40, 10, 0, 5)
	b1.PassiveSkillIDs = []int32{3003}
	b2 := hero(3, 40, 10, 0, 5)

	rec := NewCalculator(testConfig()).Resolve(catalogOf(basicAttack(), bloodlust, martyrdom),
		[]model.Hero{a}, []model.Hero{b1, b2}, 9)

	actions := rec.Rounds[0].Actions
	require.Len(t, actions, 5)
	assert.Equal(t, []model.ActionKind{
		model.ActionDamage, model.ActionDeath, model.ActionHeal, model.ActionHeal, model.ActionDamage,
	}, kinds(actions))
	assert.Equal(t, int32(3002), actions[2].SkillID)
	assert.Equal(t, int64(1), actions[2].Actor.UID)
	assert.Equal(t, int32(3003), actions[3].SkillID)
	assert.Equal(t, int64(2), actions[3].Actor.UID, "dead unit casts its on-death skill")
	assert.Equal(t, int64(3), actions[3].Target().UID)

	assert.Len(t, rec.Rounds, 2)
	assert.Equal(t, model.ResultVictory, rec.Result)
	last := rec.Rounds[1].Actions
	assert.Equal(t, int32(10), last[len(last)-1].Actual, "bloodlust heals the damage taken")
}

func heavyRoster() ([]model.Hero, []model.Hero) {
	mk := func(uid int64, skill int32, passives ...int32) model.Hero {
		return model.Hero{
			UID: uid,
			Attrs: map[int32]float64{
				model.AttrHP: 400, model.AttrAttack: 35, model.AttrDefense: 12,
				model.AttrSpeed: 10, model.AttrMana: 100,
			},
			AttackID:        data.SkillBasicAttack,
			SkillID:         skill,
			PassiveSkillIDs: passives,
		}
	}
	one := []model.Hero{
		mk(1, data.SkillFireball, data.SkillBattleCry),
		mk(2, data.SkillHealingLight),
		mk(3, data.SkillChainLightning, data.SkillIronSkin),
		mk(4, data.SkillResurrection),
	}
	two := []model.Hero{
		mk(11, data.SkillMeteor, data.SkillMartyrdom),
		mk(12, data.SkillVampiricStrike, data.SkillBloodlust),
		mk(13, data.SkillThorns, data.SkillSwiftness),
		mk(14, data.SkillPurify),
	}
	return one, two
}

func TestResolve_Deterministic(t *testing.T) {
	catalog, err := data.LoadDefaults()
	require.NoError(t, err)
	one, two := heavyRoster()
	calc := NewCalculator(DefaultConfig())

	r1 := calc.Resolve(catalog, one, two, 42)
	r2 := calc.Resolve(catalog, one, two, 42)

	assert.Equal(t, r1.Rounds, r2.Rounds)
	assert.Equal(t, r1.Result, r2.Result)
	assert.Equal(t, r1.Checksum, r2.Checksum)

	r3 := calc.Resolve(catalog, one, two, 43)
	assert.NotEqual(t, r1.Checksum, r3.Checksum)
}

func TestResolve_Invariants(t *testing.T) {
	catalog, err := data.LoadDefaults()
	require.NoError(t, err)
	one, two := heavyRoster()
	cfg := DefaultConfig()
	calc := NewCalculator(cfg)

	for seed := uint64(1); seed <= 25; seed++ {
		rec := calc.Resolve(catalog, one, two, seed)

		require.LessOrEqual(t, len(rec.Rounds), cfg.MaxRounds)
		require.NotEmpty(t, rec.Rounds)

		dead := map[model.UnitRef]bool{}
		for i, r := range rec.Rounds {
			assert.Equal(t, int32(i+1), r.Number)
			for j, a := range r.Actions {
				assert.Equal(t, j+1, a.Seq)
				assert.Equal(t, r.Number, a.Round)
				switch a.Kind {
				case model.ActionDeath:
					dead[a.Target()] = true
				case model.ActionRevive:
					delete(dead, a.Target())
				case model.ActionDamage:
					assert.False(t, dead[a.Actor], "seed %d: dead unit acted in round %d", seed, r.Number)
				}
			}
			for _, u := range r.Units {
				assert.GreaterOrEqual(t, u.CurrentHP, int32(0))
				assert.LessOrEqual(t, u.CurrentHP, u.MaxHP)
				assert.Equal(t, u.CurrentHP > 0, u.Alive)
			}
		}

		last := rec.Rounds[len(rec.Rounds)-1].Units
		aliveA, aliveB := 0, 0
		for _, u := range last {
			if !u.Alive {
				continue
			}
			if u.Ref.Side == model.SideA {
				aliveA++
			} else {
				aliveB++
			}
		}
		assert.Equal(t, aliveA, rec.Statistics.SideAUnitsLeft)
		assert.Equal(t, aliveB, rec.Statistics.SideBUnitsLeft)
		switch rec.Result {
		case model.ResultVictory:
			assert.True(t, aliveA > 0 && aliveB == 0)
		case model.ResultDefeat:
			assert.True(t, aliveA == 0 && aliveB > 0)
		case model.ResultDraw:
			assert.True(t, rec.TimedOut || (aliveA == 0 && aliveB == 0))
		}
	}
}

func TestConfigFrom(t *testing.T) {
	c := ConfigFrom(config.Battle{MaxRounds: 12, DefaultCritRate: 0.3, DefaultCritDamage: 2, ManaPerAction: 5, MaxMana: 50})
	assert.Equal(t, Config{
		MaxRounds:     12,
		Defaults:      model.StatDefaults{CritRate: 0.3, CritDamage: 2},
		ManaPerAction: 5,
		MaxMana:       50,
	}, c)
	assert.Equal(t, 30, DefaultConfig().MaxRounds)
}
