package data

import "github.com/udisondev/turnbattle/internal/model"

// Built-in skill IDs.
const (
	SkillBasicAttack    int32 = 1001
	SkillFireball       int32 = 1002
	SkillHealingLight   int32 = 1003
	SkillRage           int32 = 1004
	SkillChainLightning int32 = 1005
	SkillVampiricStrike int32 = 1006
	SkillDivineShield   int32 = 1007
	SkillPurify         int32 = 1008
	SkillResurrection   int32 = 1009
	SkillThorns         int32 = 1010
	SkillWeaken         int32 = 1011
	SkillRegeneration   int32 = 1012
	SkillMeteor         int32 = 1013
	SkillPiercingShot   int32 = 1014

	SkillIronSkin  int32 = 2001
	SkillSwiftness int32 = 2002

	SkillBattleCry int32 = 3001
	SkillBloodlust int32 = 3002
	SkillMartyrdom int32 = 3003
)

func builtinBuffs() []*BuffTemplate {
	return []*BuffTemplate{
		{ID: "burn", Name: "Burn", Polarity: PolarityNegative, TickDamage: 5, TickInterval: 1, Dispellable: true},
		{ID: "rage", Name: "Rage", Polarity: PolarityPositive, Dispellable: true,
			Modifiers: []StatMod{{Stat: model.StatAttack, Value: 15}}},
		{ID: "weaken", Name: "Weaken", Polarity: PolarityNegative, Dispellable: true,
			Modifiers: []StatMod{{Stat: model.StatAttack, Value: -10}, {Stat: model.StatDefense, Value: -5}}},
		{ID: "regen", Name: "Regeneration", Polarity: PolarityPositive, TickHeal: 8, TickInterval: 1, Dispellable: true},
		{ID: "iron_skin", Name: "Iron Skin", Polarity: PolarityPositive,
			Modifiers: []StatMod{{Stat: model.StatDefense, Value: 10}}},
		{ID: "swift", Name: "Swiftness", Polarity: PolarityPositive,
			Modifiers: []StatMod{{Stat: model.StatSpeed, Value: 5}}},
	}
}

// builtinSkills returns fresh copies of the built-in definitions.
func builtinSkills() []*SkillTemplate {
	return []*SkillTemplate{
		{
			ID: SkillBasicAttack, Name: "Basic Attack", Type: SkillBasic, Priority: 1,
			Effects: []EffectDef{{
				Kind: EffectDamage, Target: TargetSingleEnemy, TargetCount: 1,
				ScaleStat: model.StatAttack, ScaleFactor: 1.0,
				Stacking: StackNone, MaxStacks: 1, Probability: 1, CanCrit: true,
				Params: DamageParams{},
			}},
		},
		{
			ID: SkillFireball, Name: "Fireball", Type: SkillActive, Cost: 20, Cooldown: 2, Priority: 5,
			Description: "Hurls a fireball that may set the target on fire.",
			Effects: []EffectDef{
				{
					Kind: EffectDamage, Target: TargetSingleEnemy, TargetCount: 1,
					Base: 40, ScaleStat: model.StatAttack, ScaleFactor: 0.8,
					Stacking: StackNone, MaxStacks: 1, Probability: 1, CanCrit: true,
					Params: DamageParams{},
				},
				{
					Kind: EffectDebuff, Target: TargetSingleEnemy, TargetCount: 1,
					Duration: 3, Stacking: StackStack, MaxStacks: 3, Probability: 0.7,
					Params: &StatusParams{BuffID: "burn"},
				},
			},
		},
		{
			ID: SkillHealingLight, Name: "Healing Light", Type: SkillActive, Cost: 15, Cooldown: 1, Priority: 6,
			Effects: []EffectDef{{
				Kind: EffectHeal, Target: TargetAllyLowestHP, TargetCount: 1,
				Base: 30, ScaleStat: model.StatAttack, ScaleFactor: 0.5,
				Stacking: StackNone, MaxStacks: 1, Probability: 1,
				Params: HealParams{},
			}},
		},
		{
			ID: SkillRage, Name: "Rage", Type: SkillActive, Cost: 10, Cooldown: 3, Priority: 4,
			Conditions: []Condition{{Type: CondSelfHP, Op: CmpLess, Value: 0.5}},
			Effects: []EffectDef{{
				Kind: EffectBuff, Target: TargetSelf, TargetCount: 1,
				Duration: 3, Stacking: StackStack, MaxStacks: 3, Probability: 1,
				Params: &StatusParams{BuffID: "rage"},
			}},
		},
		{
			ID: SkillChainLightning, Name: "Chain Lightning", Type: SkillActive, Cost: 30, Cooldown: 3, Priority: 7,
			Conditions: []Condition{{Type: CondEnemyCount, Op: CmpGreaterEqual, Value: 2}},
			Effects: []EffectDef{{
				Kind: EffectChain, Target: TargetSingleEnemy, TargetCount: 1,
				Base: 35, ScaleStat: model.StatAttack, ScaleFactor: 1.0,
				Stacking: StackNone, MaxStacks: 1, Probability: 1, CanCrit: true,
				Params: ChainParams{Hops: 3, Falloff: 0.2},
			}},
		},
		{
			ID: SkillVampiricStrike, Name: "Vampiric Strike", Type: SkillActive, Cost: 20, Cooldown: 2, Priority: 5,
			Effects: []EffectDef{{
				Kind: EffectLifesteal, Target: TargetSingleEnemy, TargetCount: 1,
				Base: 30, ScaleStat: model.StatAttack, ScaleFactor: 1.2,
				Stacking: StackNone, MaxStacks: 1, Probability: 1, CanCrit: true,
				Params: LifestealParams{Ratio: 0.4},
			}},
		},
		{
			ID: SkillDivineShield, Name: "Divine Shield", Type: SkillActive, Cost: 25, Cooldown: 4, Priority: 6,
			Effects: []EffectDef{{
				Kind: EffectShield, Target: TargetAllyLowestHP, TargetCount: 1,
				Base: 50, ScaleStat: model.StatDefense, ScaleFactor: 1.0,
				Duration: 5, Stacking: StackRefresh, MaxStacks: 1, Probability: 1,
				Params: ShieldParams{},
			}},
		},
		{
			ID: SkillPurify, Name: "Purify", Type: SkillActive, Cost: 15, Cooldown: 3, Priority: 5,
			Conditions: []Condition{{Type: CondHasDebuff, Op: CmpGreaterEqual, Value: 1}},
			Effects: []EffectDef{{
				Kind: EffectDispel, Target: TargetAllAllies, TargetCount: 1,
				Stacking: StackNone, MaxStacks: 1, Probability: 1,
				Params: DispelParams{Negative: true},
			}},
		},
		{
			ID: SkillResurrection, Name: "Resurrection", Type: SkillActive, Cost: 40, Cooldown: 5, Priority: 9,
			Conditions: []Condition{{Type: CondAllyCount, Op: CmpLess, Value: 6}},
			Effects: []EffectDef{{
				Kind: EffectRevive, Target: TargetDeadAlly, TargetCount: 1,
				Stacking: StackNone, MaxStacks: 1, Probability: 1,
				Params: ReviveParams{HPFraction: 0.3},
			}},
		},
		{
			ID: SkillThorns, Name: "Thorns", Type: SkillActive, Cost: 15, Cooldown: 4, Priority: 3,
			Effects: []EffectDef{{
				Kind: EffectReflect, Target: TargetSelf, TargetCount: 1,
				Duration: 3, Stacking: StackRefresh, MaxStacks: 1, Probability: 1,
				Params: ReflectParams{Ratio: 0.3},
			}},
		},
		{
			ID: SkillWeaken, Name: "Weaken", Type: SkillActive, Cost: 15, Cooldown: 2, Priority: 4,
			Effects: []EffectDef{{
				Kind: EffectDebuff, Target: TargetEnemyHighestAttack, TargetCount: 1,
				Duration: 2, Stacking: StackRefresh, MaxStacks: 1, Probability: 1,
				Params: &StatusParams{BuffID: "weaken"},
			}},
		},
		{
			ID: SkillRegeneration, Name: "Regeneration", Type: SkillActive, Cost: 20, Cooldown: 3, Priority: 4,
			Effects: []EffectDef{{
				Kind: EffectBuff, Target: TargetAllAllies, TargetCount: 1,
				Duration: 3, Stacking: StackRefresh, MaxStacks: 1, Probability: 1,
				Params: &StatusParams{BuffID: "regen"},
			}},
		},
		{
			ID: SkillMeteor, Name: "Meteor", Type: SkillActive, Cost: 40, Cooldown: 4, Priority: 8,
			Effects: []EffectDef{{
				Kind: EffectDamage, Target: TargetAllEnemies, TargetCount: 1,
				Base: 25, ScaleStat: model.StatAttack, ScaleFactor: 0.6,
				Stacking: StackNone, MaxStacks: 1, Probability: 1, CanCrit: true,
				Params: DamageParams{},
			}},
		},
		{
			ID: SkillPiercingShot, Name: "Piercing Shot", Type: SkillActive, Cost: 15, Cooldown: 2, Priority: 5,
			Effects: []EffectDef{{
				Kind: EffectDamage, Target: TargetEnemyBackLine, TargetCount: 1,
				Base: 20, ScaleStat: model.StatAttack, ScaleFactor: 0.9,
				Stacking: StackNone, MaxStacks: 1, Probability: 1, IgnoreDefense: true,
				Params: DamageParams{},
			}},
		},
		{
			ID: SkillIronSkin, Name: "Iron Skin", Type: SkillPassive, Priority: 1,
			Effects: []EffectDef{{
				Kind: EffectBuff, Target: TargetSelf, TargetCount: 1,
				Duration: 1, Stacking: StackNone, MaxStacks: 1, Probability: 1,
				Params: &StatusParams{BuffID: "iron_skin"},
			}},
		},
		{
			ID: SkillSwiftness, Name: "Swiftness", Type: SkillPassive, Priority: 1,
			Effects: []EffectDef{{
				Kind: EffectBuff, Target: TargetSelf, TargetCount: 1,
				Duration: 1, Stacking: StackNone, MaxStacks: 1, Probability: 1,
				Params: &StatusParams{BuffID: "swift"},
			}},
		},
		{
			ID: SkillBattleCry, Name: "Battle Cry", Type: SkillTriggered, Trigger: TriggerRoundStart, Priority: 2,
			Effects: []EffectDef{{
				Kind: EffectBuff, Target: TargetAllAllies, TargetCount: 1,
				Duration: 2, Stacking: StackRefresh, MaxStacks: 1, Probability: 1,
				Params: &StatusParams{Modifiers: []StatMod{{Stat: model.StatAttack, Value: 5}}, Dispellable: true},
			}},
		},
		{
			ID: SkillBloodlust, Name: "Bloodlust", Type: SkillTriggered, Trigger: TriggerOnKill, Priority: 2,
			Effects: []EffectDef{{
				Kind: EffectBuff, Target: TargetSelf, TargetCount: 1,
				Duration: 3, Stacking: StackStack, MaxStacks: 5, Probability: 1,
				Params: &StatusParams{Modifiers: []StatMod{{Stat: model.StatAttack, Value: 8}}, Dispellable: true},
			}},
		},
		{
			ID: SkillMartyrdom, Name: "Martyrdom", Type: SkillTriggered, Trigger: TriggerOnDeath, Priority: 2,
			Effects: []EffectDef{{
				Kind: EffectHeal, Target: TargetAllAllies, TargetCount: 1,
				Base: 20, ScaleStat: model.StatMaxHP, ScaleFactor: 0.1,
				Stacking: StackNone, MaxStacks: 1, Probability: 1,
				Params: HealParams{},
			}},
		},
	}
}
