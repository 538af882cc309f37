package data

import (
	"errors"
	"testing"

	"github.com/udisondev/turnbattle/internal/model"
)

// TestLoadDefaults_Builtins tests that every built-in definition validates.
func TestLoadDefaults_Builtins(t *testing.T) {
	table, err := LoadDefaults()
	if err != nil {
		t.Fatalf("LoadDefaults() failed: %v", err)
	}
	if table.Len() != len(builtinSkills()) {
		t.Errorf("skills = %d, want %d", table.Len(), len(builtinSkills()))
	}
	if table.BuffCount() != len(builtinBuffs()) {
		t.Errorf("buffs = %d, want %d", table.BuffCount(), len(builtinBuffs()))
	}

	all := table.ListAll()
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Fatalf("ListAll not ordered by id at %d", i)
		}
	}
}

// TestBuild_ResolvesBuffReference tests that status effects inherit the
// named buff's modifiers and ticks.
func TestBuild_ResolvesBuffReference(t *testing.T) {
	raw := builtinSkills()
	table, res := Build(raw, builtinBuffs())
	if !res.OK() {
		t.Fatal(res.Err())
	}

	fireball, ok := table.Lookup(SkillFireball)
	if !ok {
		t.Fatal("fireball not found")
	}
	burn := fireball.Effects[1].Status()
	if burn == nil || burn.TickDamage != 5 || burn.TickInterval != 1 {
		t.Errorf("burn not resolved: %+v", burn)
	}

	weaken, _ := table.Lookup(SkillWeaken)
	if mods := weaken.Effects[0].Status().Modifiers; len(mods) != 2 || mods[0].Stat != model.StatAttack {
		t.Errorf("weaken modifiers = %+v", mods)
	}

	for _, s := range raw {
		if s.ID == SkillFireball && s.Effects[1].Status().TickDamage != 0 {
			t.Error("resolution must copy, not mutate the input")
		}
	}
}

// TestBuild_UnknownBuffRejectsSkill tests that a dangling buff reference
// drops only the skill that carries it.
func TestBuild_UnknownBuffRejectsSkill(t *testing.T) {
	bad := &SkillTemplate{
		ID: 5000, Name: "Broken", Type: SkillActive, Priority: 5,
		Effects: []EffectDef{{
			Kind: EffectBuff, Target: TargetSelf, TargetCount: 1, Duration: 2,
			MaxStacks: 1, Probability: 1, Params: &StatusParams{BuffID: "nope"},
		}},
	}
	table, res := Build(append(builtinSkills(), bad), builtinBuffs())
	if res.OK() {
		t.Fatal("expected a validation error")
	}
	if _, ok := table.Lookup(5000); ok {
		t.Error("broken skill must be left out")
	}
	if _, ok := table.Lookup(SkillBasicAttack); !ok {
		t.Error("valid skills must survive")
	}
	if _, err := build(append(builtinSkills(), bad), builtinBuffs()); !errors.Is(err, ErrInvalidCatalog) {
		t.Errorf("build error = %v, want ErrInvalidCatalog", err)
	}
}

// TestBuild_DuplicatesKeepFirst tests duplicate id handling.
func TestBuild_DuplicatesKeepFirst(t *testing.T) {
	skills := builtinSkills()
	dup := *skills[0]
	dup.Name = "Impostor"
	table, res := Build(append(skills, &dup), builtinBuffs())
	if !res.OK() {
		t.Fatalf("duplicates are warnings only: %v", res.Err())
	}
	if len(res.Warnings) == 0 {
		t.Error("expected a duplicate warning")
	}
	if s, _ := table.Lookup(dup.ID); s.Name == "Impostor" {
		t.Error("first definition must win")
	}
}

// TestRegistry_Swap tests that readers see the swapped table.
func TestRegistry_Swap(t *testing.T) {
	first, _ := Build(builtinSkills()[:1], nil)
	second, _ := LoadDefaults()

	r := NewRegistry(first)
	if _, ok := r.Lookup(SkillFireball); ok {
		t.Fatal("first table has only the basic attack")
	}
	snapshot := r.Current()

	r.Swap(second)
	if _, ok := r.Lookup(SkillFireball); !ok {
		t.Error("swapped table not served")
	}
	if _, ok := snapshot.Lookup(SkillFireball); ok {
		t.Error("an old snapshot must not change")
	}
	if len(r.ListAll()) != second.Len() {
		t.Error("ListAll must read the current table")
	}
	if _, ok := r.LookupBuff("burn"); !ok {
		t.Error("LookupBuff must read the current table")
	}
}

// TestComparison tests the comparison operators.
func TestComparison(t *testing.T) {
	tests := []struct {
		op          Comparison
		left, right float64
		want        bool
	}{
		{CmpGreater, 2, 1, true},
		{CmpGreater, 1, 1, false},
		{CmpLess, 0.49, 0.5, true},
		{CmpGreaterEqual, 1, 1, true},
		{CmpLessEqual, 1.1, 1, false},
		{CmpEqual, 0.3, 0.1 + 0.2, true},
		{CmpEqual, 0.3, 0.302, false},
		{CmpNotEqual, 1, 1.0005, false},
		{CmpNotEqual, 1, 2, true},
	}
	for _, tt := range tests {
		if got := tt.op.Compare(tt.left, tt.right); got != tt.want {
			t.Errorf("%v %s %v = %v, want %v", tt.left, tt.op, tt.right, got, tt.want)
		}
	}
}
