package model

import "math"

// FrontLineSlots — слоты 0..FrontLineSlots-1 считаются передней линией.
const FrontLineSlots = 3

// FloorInt32 returns floor(v) saturated to the int32 range. NaN gives 0.
func FloorInt32(v float64) int32 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	}
	return int32(math.Floor(v))
}

// StatDefaults holds values used when a hero omits an attribute.
type StatDefaults struct {
	CritRate   float64
	CritDamage float64
}

// UnitCounters — накопительная статистика юнита за бой.
type UnitCounters struct {
	DamageDealt     int64 `json:"damageDealt"`
	DamageReceived  int64 `json:"damageReceived"`
	HealingDone     int64 `json:"healingDone"`
	HealingReceived int64 `json:"healingReceived"`
	Crits           int32 `json:"crits"`
	Actions         int32 `json:"actions"`
	Kills           int32 `json:"kills"`
}

// Unit — участник боя. Принадлежит одному бою и изменяется только
// горутиной, которая этот бой считает, поэтому мьютекса нет.
//
// Инвариант: 0 <= currentHP <= maxHP и alive == (currentHP > 0)
// восстанавливается после каждой мутации.
type Unit struct {
	UID   int64
	Name  string
	Side  Side
	Slot  int // позиция в ростере
	Index int // позиция в арене боя

	AttackSkill   int32
	ActiveSkill   int32
	PassiveSkills []int32

	base      [statCount]float64
	currentHP int32
	maxHP     int32
	currentMP int32
	maxMP     int32
	alive     bool

	Stats UnitCounters
}

// NewUnit создаёт юнита из записи ростера. Текущее HP равно максимальному.
func NewUnit(h Hero, side Side, slot, index int, d StatDefaults, maxMP int32) *Unit {
	u := &Unit{
		UID:           h.UID,
		Name:          h.DisplayName(),
		Side:          side,
		Slot:          slot,
		Index:         index,
		AttackSkill:   h.AttackID,
		ActiveSkill:   h.SkillID,
		PassiveSkills: append([]int32(nil), h.PassiveSkillIDs...),
		maxMP:         maxMP,
	}

	u.base[StatHitRate] = 1
	u.base[StatCritRate] = d.CritRate
	u.base[StatCritDamage] = d.CritDamage

	for id, v := range h.Attrs {
		if s, ok := attrStats[id]; ok {
			u.base[s] = v
		}
	}
	for id, s := range rateBonuses {
		if r, ok := h.Attrs[id]; ok {
			u.base[s] *= 1 + r
		}
	}

	u.maxHP = FloorInt32(u.base[StatMaxHP])
	if u.maxHP < 0 {
		u.maxHP = 0
	}
	u.base[StatMaxHP] = float64(u.maxHP)
	u.SetCurrentHP(u.maxHP)
	if mp, ok := h.Attr(AttrMana); ok {
		u.SetCurrentMP(FloorInt32(mp))
	}
	return u
}

// Base returns the base (unmodified) value of s.
func (u *Unit) Base(s Stat) float64 {
	return u.base[s]
}

// Ref returns the stable reference used in battle records.
func (u *Unit) Ref() UnitRef {
	return UnitRef{Side: u.Side, Slot: u.Slot, UID: u.UID}
}

// CurrentHP возвращает текущее HP.
func (u *Unit) CurrentHP() int32 { return u.currentHP }

// MaxHP возвращает максимальное HP.
func (u *Unit) MaxHP() int32 { return u.maxHP }

// SetCurrentHP устанавливает текущее HP с валидацией (clamp 0..maxHP)
// и пересчитывает флаг жизни.
func (u *Unit) SetCurrentHP(hp int32) {
	if hp < 0 {
		hp = 0
	}
	if hp > u.maxHP {
		hp = u.maxHP
	}
	u.currentHP = hp
	u.alive = hp > 0
}

// ReduceHP снимает до amount HP и возвращает фактически снятое значение.
func (u *Unit) ReduceHP(amount int32) int32 {
	if amount <= 0 || !u.alive {
		return 0
	}
	before := u.currentHP
	u.SetCurrentHP(before - amount)
	return before - u.currentHP
}

// RestoreHP восстанавливает до amount HP живому юниту.
// Возвращает фактически восстановленное значение.
func (u *Unit) RestoreHP(amount int32) int32 {
	if amount <= 0 || !u.alive {
		return 0
	}
	before := u.currentHP
	u.SetCurrentHP(before + amount)
	return u.currentHP - before
}

// Revive поднимает мёртвого юнита с hp здоровья (минимум 1).
// Для живого юнита ничего не делает и возвращает false.
func (u *Unit) Revive(hp int32) bool {
	if u.alive || u.maxHP <= 0 {
		return false
	}
	if hp < 1 {
		hp = 1
	}
	u.SetCurrentHP(hp)
	return true
}

// IsAlive reports whether the unit can act and be targeted.
func (u *Unit) IsAlive() bool { return u.alive }

// IsDead проверяет мёртв ли юнит.
func (u *Unit) IsDead() bool { return !u.alive }

// HPPercentage возвращает долю текущего HP (0.0 - 1.0).
func (u *Unit) HPPercentage() float64 {
	if u.maxHP <= 0 {
		return 0
	}
	return float64(u.currentHP) / float64(u.maxHP)
}

// CurrentMP возвращает текущую ману.
func (u *Unit) CurrentMP() int32 { return u.currentMP }

// MaxMP возвращает максимум маны.
func (u *Unit) MaxMP() int32 { return u.maxMP }

// SetCurrentMP устанавливает ману с валидацией (clamp 0..maxMP).
func (u *Unit) SetCurrentMP(mp int32) {
	if mp < 0 {
		mp = 0
	}
	if mp > u.maxMP {
		mp = u.maxMP
	}
	u.currentMP = mp
}

// FrontLine reports whether the unit stands in the front line.
func (u *Unit) FrontLine() bool {
	return u.Slot < FrontLineSlots
}
