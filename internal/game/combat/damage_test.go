package combat

import (
	"math"
	"testing"
)

func TestApplyDefense(t *testing.T) {
	tests := []struct {
		name    string
		raw     int32
		defense float64
		want    int32
	}{
		{"half defense", 20, 4, 18},
		{"odd defense floors", 20, 5, 18},
		{"no defense", 20, 0, 20},
		{"clamped to minimum", 5, 100, MinDamage},
		{"exactly zero", 10, 20, MinDamage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyDefense(tt.raw, tt.defense); got != tt.want {
				t.Errorf("ApplyDefense(%d, %v) = %d, want %d", tt.raw, tt.defense, got, tt.want)
			}
		})
	}
}

func TestScaledValue(t *testing.T) {
	if got := ScaledValue(40, 25, 0.8); got != 60 {
		t.Errorf("ScaledValue = %d, want 60", got)
	}
	if got := ScaledValue(0, 33, 0.5); got != 16 {
		t.Errorf("ScaledValue floors: got %d, want 16", got)
	}
}

func TestScaledValue_Saturates(t *testing.T) {
	if got := ScaledValue(10, 3e9, 1); got != math.MaxInt32 {
		t.Errorf("ScaledValue = %d, want MaxInt32", got)
	}
	if got := ScaledValue(0, -3e9, 1); got != math.MinInt32 {
		t.Errorf("ScaledValue = %d, want MinInt32", got)
	}
	if got := ApplyCrit(math.MaxInt32, 2); got != math.MaxInt32 {
		t.Errorf("ApplyCrit = %d, want MaxInt32", got)
	}
	if got := ApplyDefense(50, 1e10); got != MinDamage {
		t.Errorf("ApplyDefense vs huge defense = %d, want %d", got, MinDamage)
	}
}

func TestApplyCrit(t *testing.T) {
	if got := ApplyCrit(18, 1.5); got != 27 {
		t.Errorf("ApplyCrit = %d, want 27", got)
	}
	if got := ApplyCrit(15, 1.5); got != 22 {
		t.Errorf("ApplyCrit floors: got %d, want 22", got)
	}
}

func TestApplyRates(t *testing.T) {
	tests := []struct {
		name             string
		dmg              int32
		bonus, reduction float64
		want             int32
	}{
		{"neutral", 50, 0, 0, 50},
		{"bonus", 50, 0.2, 0, 60},
		{"reduction", 50, 0, 0.5, 25},
		{"cancel out", 50, 0.3, 0.3, 50},
		{"full reduction keeps minimum", 50, 0, 2, MinDamage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyRates(tt.dmg, tt.bonus, tt.reduction); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestChainFalloff(t *testing.T) {
	for hop, want := range []int32{100, 80, 64, 51} {
		if got := ChainFalloff(100, 0.2, hop); got != want {
			t.Errorf("hop %d: got %d, want %d", hop, got, want)
		}
	}
}

func TestChances(t *testing.T) {
	if got := MissChance(1, 0.3); got != 0.3 {
		t.Errorf("neutral hit rate: miss = %v, want 0.3", got)
	}
	if got := MissChance(1.5, 0.3); got != 0 {
		t.Errorf("hit bonus over dodge: miss = %v, want 0", got)
	}
	if got := MissChance(0, 0.5); got != 1 {
		t.Errorf("miss clamps at 1, got %v", got)
	}
	if got := BlockChance(0.4, 0.1); got < 0.299 || got > 0.301 {
		t.Errorf("block = %v, want 0.3", got)
	}
	if got := BlockChance(0.1, 0.4); got != 0 {
		t.Errorf("pierce over block: got %v, want 0", got)
	}
}

func TestApplyBlock(t *testing.T) {
	if got := ApplyBlock(21); got != 10 {
		t.Errorf("ApplyBlock(21) = %d, want 10", got)
	}
	if got := ApplyBlock(1); got != MinDamage {
		t.Errorf("ApplyBlock(1) = %d, want %d", got, MinDamage)
	}
}

func TestHeal(t *testing.T) {
	if got := CalcHeal(50, 90, 100); got != 10 {
		t.Errorf("CalcHeal capped: got %d, want 10", got)
	}
	if got := CalcHeal(50, 100, 100); got != 0 {
		t.Errorf("CalcHeal at full: got %d, want 0", got)
	}
	if got := ApplyHealRates(40, 0.5, 0); got != 60 {
		t.Errorf("ApplyHealRates = %d, want 60", got)
	}
	if got := ApplyHealRates(40, -2, 0); got != 0 {
		t.Errorf("ApplyHealRates never negative: got %d", got)
	}
	if got := Fraction(30, 0.4); got != 12 {
		t.Errorf("Fraction = %d, want 12", got)
	}
}
