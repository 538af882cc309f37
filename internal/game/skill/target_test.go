package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/turnbattle/internal/data"
	"github.com/udisondev/turnbattle/internal/model"
)

func uids(units []*model.Unit) []int64 {
	out := make([]int64, 0, len(units))
	for _, u := range units {
		out = append(out, u.UID)
	}
	return out
}

func TestSelectTargets(t *testing.T) {
	// A: 1..4 (slot 3 is back line), B: 11..15
	newArena := func() []*model.Unit {
		units := arena(
			[]model.Hero{hero(1, 100, 20, 0, 10), hero(2, 100, 35, 0, 10), hero(3, 100, 20, 0, 10), hero(4, 100, 20, 0, 10)},
			[]model.Hero{hero(11, 100, 10, 0, 5), hero(12, 100, 40, 0, 5), hero(13, 100, 10, 0, 5), hero(14, 100, 10, 0, 5), hero(15, 100, 40, 0, 5)},
		)
		units[2].SetCurrentHP(30) // uid 3
		units[3].SetCurrentHP(30) // uid 4, same HP: arena order wins
		units[4].SetCurrentHP(0)  // uid 11 dead
		units[6].SetCurrentHP(20) // uid 13
		units[7].SetCurrentHP(90) // uid 14
		return units
	}

	tests := []struct {
		name   string
		rule   data.TargetRule
		caster int
		want   []int64
	}{
		{"self", data.TargetSelf, 0, []int64{1}},
		{"single enemy skips dead", data.TargetSingleEnemy, 0, []int64{12}},
		{"single ally prefers others", data.TargetSingleAlly, 0, []int64{2}},
		{"all enemies", data.TargetAllEnemies, 0, []int64{12, 13, 14, 15}},
		{"all allies", data.TargetAllAllies, 0, []int64{1, 2, 3, 4}},
		{"enemy front line", data.TargetEnemyFrontLine, 0, []int64{12, 13}},
		{"enemy back line", data.TargetEnemyBackLine, 0, []int64{14, 15}},
		{"ally front line", data.TargetAllyFrontLine, 0, []int64{1, 2, 3}},
		{"ally back line", data.TargetAllyBackLine, 0, []int64{4}},
		{"ally lowest hp tie", data.TargetAllyLowestHP, 0, []int64{3}},
		{"enemy lowest hp", data.TargetEnemyLowestHP, 0, []int64{13}},
		{"enemy highest hp tie", data.TargetEnemyHighestHP, 0, []int64{12}},
		{"enemy highest attack tie", data.TargetEnemyHighestAttack, 0, []int64{12}},
		{"ally highest attack", data.TargetAllyHighestAttack, 0, []int64{2}},
		{"dead ally none", data.TargetDeadAlly, 0, nil},
		{"dead ally from B", data.TargetDeadAlly, 6, []int64{11}},
		{"enemies seen from B", data.TargetSingleEnemy, 6, []int64{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			units := newArena()
			ex := newTestExecutor(units, &stubDice{})

			got := SelectTargets(tt.rule, 1, units[tt.caster], units, ex, &stubDice{})
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, uids(got))
		})
	}
}

func TestSelectTargets_SingleAllyFallsBackToSelf(t *testing.T) {
	units := arena([]model.Hero{hero(1, 100, 20, 0, 10)}, []model.Hero{hero(2, 100, 10, 0, 5)})
	ex := newTestExecutor(units, &stubDice{})

	got := SelectTargets(data.TargetSingleAlly, 1, units[0], units, ex, &stubDice{})
	assert.Equal(t, []int64{1}, uids(got))
}

func TestSelectTargets_DeadCasterHasNoSelf(t *testing.T) {
	units := arena([]model.Hero{hero(1, 100, 20, 0, 10)}, []model.Hero{hero(2, 100, 10, 0, 5)})
	units[0].SetCurrentHP(0)
	ex := newTestExecutor(units, &stubDice{})

	assert.Empty(t, SelectTargets(data.TargetSelf, 1, units[0], units, ex, &stubDice{}))
}

func TestSelectTargets_BuffedAttack(t *testing.T) {
	units := arena(
		[]model.Hero{hero(1, 100, 20, 0, 10)},
		[]model.Hero{hero(2, 100, 30, 0, 5), hero(3, 100, 25, 0, 5)},
	)
	ex := newTestExecutor(units, &stubDice{})
	ex.Effects().Add(&ActiveEffect{
		Target:    2,
		SkillID:   1004,
		Kind:      data.EffectBuff,
		Polarity:  data.PolarityPositive,
		Duration:  3,
		Modifiers: []data.StatMod{{Stat: model.StatAttack, Value: 10}},
	}, data.StackNone)

	got := SelectTargets(data.TargetEnemyHighestAttack, 1, units[0], units, ex, &stubDice{})
	assert.Equal(t, []int64{3}, uids(got), "effective attack counts, not base")
}

func TestSelectTargets_RandomDistinct(t *testing.T) {
	units := arena(
		[]model.Hero{hero(1, 100, 20, 0, 10)},
		[]model.Hero{hero(11, 100, 10, 0, 5), hero(12, 100, 10, 0, 5), hero(13, 100, 10, 0, 5)},
	)
	ex := newTestExecutor(units, &stubDice{})

	got := SelectTargets(data.TargetRandomEnemies, 2, units[0], units, ex, &stubDice{ints: []int{2, 0}})
	require.Len(t, got, 2)
	assert.Equal(t, []int64{13, 12}, uids(got))

	got = SelectTargets(data.TargetRandomEnemies, 10, units[0], units, ex, &stubDice{ints: []int{1, 1, 0}})
	require.Len(t, got, 3, "count is capped at the candidates")
	seen := map[int64]bool{}
	for _, u := range got {
		assert.False(t, seen[u.UID])
		seen[u.UID] = true
	}
}
