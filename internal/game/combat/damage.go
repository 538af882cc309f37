package combat

import (
	"math"

	"github.com/udisondev/turnbattle/internal/model"
)

// MinDamage — урон попавшего удара не бывает меньше.
const MinDamage int32 = 1

// ScaledValue returns base + floor(stat × factor).
func ScaledValue(base int32, stat, factor float64) int32 {
	return model.FloorInt32(float64(base) + math.Floor(stat*factor))
}

// ApplyDefense returns max(1, raw - floor(defense/2)).
func ApplyDefense(raw int32, defense float64) int32 {
	return max(MinDamage, model.FloorInt32(float64(raw)-math.Floor(defense/2)))
}

// ApplyCrit multiplies a damage value by the crit multiplier.
func ApplyCrit(dmg int32, multiplier float64) int32 {
	return model.FloorInt32(float64(dmg) * multiplier)
}

// ApplyRates scales dmg by (1 + bonus - reduction), floored at MinDamage.
// With both rates zero dmg is returned unchanged.
func ApplyRates(dmg int32, bonus, reduction float64) int32 {
	f := 1 + bonus - reduction
	if f == 1 {
		return dmg
	}
	return max(MinDamage, model.FloorInt32(float64(dmg)*f))
}

// ChainFalloff scales raw by (1 - falloff)^hop.
func ChainFalloff(raw int32, falloff float64, hop int) int32 {
	if hop <= 0 {
		return raw
	}
	return model.FloorInt32(float64(raw) * math.Pow(1-falloff, float64(hop)))
}

// MissChance is the dodge chance left after the attacker's hit bonus.
// Hit rate 1 is neutral.
func MissChance(hitRate, dodgeRate float64) float64 {
	return clamp01(dodgeRate - (hitRate - 1))
}

// BlockChance is the block chance left after the attacker's pierce.
func BlockChance(blockRate, pierceRate float64) float64 {
	return clamp01(blockRate - pierceRate)
}

// ApplyBlock halves a blocked hit.
func ApplyBlock(dmg int32) int32 {
	return max(MinDamage, dmg/2)
}

// ApplyHealRates scales a heal by (1 + healRate + healedRate), never below 0.
func ApplyHealRates(value int32, healRate, healedRate float64) int32 {
	f := 1 + healRate + healedRate
	if f == 1 {
		return value
	}
	return max(0, model.FloorInt32(float64(value)*f))
}

// CalcHeal returns how much of value actually lands: min(value, maxHP-currentHP).
func CalcHeal(value, currentHP, maxHP int32) int32 {
	return max(0, min(value, maxHP-currentHP))
}

// Fraction returns floor(v × ratio).
func Fraction(v int32, ratio float64) int32 {
	return model.FloorInt32(float64(v) * ratio)
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
