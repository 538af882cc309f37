package testutil

import "github.com/udisondev/turnbattle/internal/model"

// Hero собирает героя с базовой атакой 1001 и заданными HP/атакой/скоростью.
func Hero(uid int64, hp, attack, speed float64) model.Hero {
	return model.Hero{
		UID: uid,
		Attrs: map[int32]float64{
			model.AttrHP:     hp,
			model.AttrAttack: attack,
			model.AttrSpeed:  speed,
		},
		AttackID: 1001,
	}
}

// DuelRosters returns two rosters where the first side clearly outclasses
// the second.
func DuelRosters() (teamOne, teamTwo []model.Hero) {
	teamOne = []model.Hero{Hero(1, 300, 40, 9), Hero(2, 300, 30, 8)}
	teamTwo = []model.Hero{Hero(1, 200, 20, 9)}
	return teamOne, teamTwo
}
