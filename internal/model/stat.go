package model

import "fmt"

// Stat — числовой атрибут юнита. Значения индексируют массив базовых атрибутов.
type Stat uint8

const (
	StatMaxHP Stat = iota
	StatAttack
	StatDefense
	StatSpeed
	StatHitRate
	StatDodgeRate
	StatCritRate
	StatCritDamage
	StatBlockRate
	StatPierceRate
	StatDamageRate
	StatReduceRate
	StatSkillDamageRate
	StatSkillReduceRate
	StatLifestealRate
	StatHealRate
	StatHealedRate

	statCount
)

var statNames = [statCount]string{
	StatMaxHP:           "maxHp",
	StatAttack:          "attack",
	StatDefense:         "defense",
	StatSpeed:           "speed",
	StatHitRate:         "hitRate",
	StatDodgeRate:       "dodgeRate",
	StatCritRate:        "critRate",
	StatCritDamage:      "critDamage",
	StatBlockRate:       "blockRate",
	StatPierceRate:      "pierceRate",
	StatDamageRate:      "damageRate",
	StatReduceRate:      "reduceRate",
	StatSkillDamageRate: "skillDamageRate",
	StatSkillReduceRate: "skillReduceRate",
	StatLifestealRate:   "lifestealRate",
	StatHealRate:        "healRate",
	StatHealedRate:      "healedRate",
}

func (s Stat) String() string {
	if s < statCount {
		return statNames[s]
	}
	return fmt.Sprintf("Stat(%d)", uint8(s))
}

// ParseStat returns the Stat with the given catalog name.
func ParseStat(name string) (Stat, error) {
	for i, n := range statNames {
		if n == name {
			return Stat(i), nil
		}
	}
	return 0, fmt.Errorf("unknown stat %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Stat) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Stat) UnmarshalText(b []byte) error {
	v, err := ParseStat(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// floorsAtZero reports whether the effective value of s is clamped at 0.
// Rate stats may legitimately go negative through debuffs.
func (s Stat) floorsAtZero() bool {
	switch s {
	case StatMaxHP, StatAttack, StatDefense, StatSpeed, StatCritDamage:
		return true
	}
	return false
}

// Effective applies bonus on top of base and clamps where the stat requires it.
func (s Stat) Effective(base, bonus float64) float64 {
	v := base + bonus
	if v < 0 && s.floorsAtZero() {
		return 0
	}
	return v
}

// Attribute IDs used by roster payloads.
const (
	AttrHP        int32 = 1001
	AttrAttack    int32 = 1002
	AttrDefense   int32 = 1003
	AttrSpeed     int32 = 1004
	AttrMana      int32 = 1005
	AttrHPRate    int32 = 2001
	AttrAtkRate   int32 = 2002
	AttrDefRate   int32 = 2003
	AttrSpeedRate int32 = 2004
	AttrManaRate  int32 = 2005

	AttrHitRate         int32 = 3001
	AttrDodgeRate       int32 = 3002
	AttrDamageRate      int32 = 3007
	AttrReduceRate      int32 = 3008
	AttrSkillDamageRate int32 = 3009
	AttrSkillReduceRate int32 = 3010
	AttrCritRate        int32 = 3011
	AttrCritDamage      int32 = 3013
	AttrHealedRate      int32 = 3017
	AttrHealRate        int32 = 3018
	AttrLifestealRate   int32 = 3019
	AttrBlockRate       int32 = 3020
	AttrPierceRate      int32 = 3021
)

// attrStats maps direct attribute IDs onto stats. Rate bonuses (2001-2004)
// are folded in by NewUnit.
var attrStats = map[int32]Stat{
	AttrHP:              StatMaxHP,
	AttrAttack:          StatAttack,
	AttrDefense:         StatDefense,
	AttrSpeed:           StatSpeed,
	AttrHitRate:         StatHitRate,
	AttrDodgeRate:       StatDodgeRate,
	AttrDamageRate:      StatDamageRate,
	AttrReduceRate:      StatReduceRate,
	AttrSkillDamageRate: StatSkillDamageRate,
	AttrSkillReduceRate: StatSkillReduceRate,
	AttrCritRate:        StatCritRate,
	AttrCritDamage:      StatCritDamage,
	AttrHealedRate:      StatHealedRate,
	AttrHealRate:        StatHealRate,
	AttrLifestealRate:   StatLifestealRate,
	AttrBlockRate:       StatBlockRate,
	AttrPierceRate:      StatPierceRate,
}

var rateBonuses = map[int32]Stat{
	AttrHPRate:    StatMaxHP,
	AttrAtkRate:   StatAttack,
	AttrDefRate:   StatDefense,
	AttrSpeedRate: StatSpeed,
}
