package data

import "fmt"

var skillTypeNames = map[string]SkillType{
	"basic":     SkillBasic,
	"active":    SkillActive,
	"passive":   SkillPassive,
	"triggered": SkillTriggered,
}

var triggerNames = map[string]Trigger{
	"":            TriggerNone,
	"none":        TriggerNone,
	"round_start": TriggerRoundStart,
	"on_kill":     TriggerOnKill,
	"on_death":    TriggerOnDeath,
}

var effectKindNames = map[string]EffectKind{
	"damage":    EffectDamage,
	"heal":      EffectHeal,
	"shield":    EffectShield,
	"buff":      EffectBuff,
	"debuff":    EffectDebuff,
	"dispel":    EffectDispel,
	"chain":     EffectChain,
	"lifesteal": EffectLifesteal,
	"reflect":   EffectReflect,
	"revive":    EffectRevive,
}

var targetRuleNames = map[string]TargetRule{
	"self":                 TargetSelf,
	"single_enemy":         TargetSingleEnemy,
	"single_ally":          TargetSingleAlly,
	"all_enemies":          TargetAllEnemies,
	"all_allies":           TargetAllAllies,
	"random_enemies":       TargetRandomEnemies,
	"random_allies":        TargetRandomAllies,
	"enemy_front_line":     TargetEnemyFrontLine,
	"enemy_back_line":      TargetEnemyBackLine,
	"ally_front_line":      TargetAllyFrontLine,
	"ally_back_line":       TargetAllyBackLine,
	"ally_lowest_hp":       TargetAllyLowestHP,
	"enemy_lowest_hp":      TargetEnemyLowestHP,
	"enemy_highest_hp":     TargetEnemyHighestHP,
	"enemy_highest_attack": TargetEnemyHighestAttack,
	"ally_highest_attack":  TargetAllyHighestAttack,
	"dead_ally":            TargetDeadAlly,
}

var stackPolicyNames = map[string]StackPolicy{
	"":            StackNone,
	"none":        StackNone,
	"stack":       StackStack,
	"refresh":     StackRefresh,
	"independent": StackIndependent,
}

var polarityNames = map[string]Polarity{
	"positive": PolarityPositive,
	"negative": PolarityNegative,
}

var conditionTypeNames = map[string]ConditionType{
	"self_hp":     CondSelfHP,
	"self_mp":     CondSelfMP,
	"enemy_count": CondEnemyCount,
	"ally_count":  CondAllyCount,
	"has_buff":    CondHasBuff,
	"has_debuff":  CondHasDebuff,
	"round":       CondRound,
	"enemy_hp":    CondEnemyHP,
	"random":      CondRandom,
}

var comparisonNames = map[string]Comparison{
	">":  CmpGreater,
	"<":  CmpLess,
	">=": CmpGreaterEqual,
	"<=": CmpLessEqual,
	"==": CmpEqual,
	"!=": CmpNotEqual,
}

func lookupName[T comparable](what, name string, table map[string]T) (T, error) {
	v, ok := table[name]
	if !ok {
		var zero T
		return zero, fmt.Errorf("unknown %s %q", what, name)
	}
	return v, nil
}

func nameOf[T comparable](v T, table map[string]T) string {
	for n, x := range table {
		if x == v && n != "" {
			return n
		}
	}
	return fmt.Sprintf("%T(%d)", v, any(v))
}

func (t SkillType) String() string   { return nameOf(t, skillTypeNames) }
func (t Trigger) String() string     { return nameOf(t, triggerNames) }
func (k EffectKind) String() string  { return nameOf(k, effectKindNames) }
func (r TargetRule) String() string  { return nameOf(r, targetRuleNames) }
func (p StackPolicy) String() string { return nameOf(p, stackPolicyNames) }
func (p Polarity) String() string    { return nameOf(p, polarityNames) }

func (c ConditionType) String() string { return nameOf(c, conditionTypeNames) }
func (c Comparison) String() string    { return nameOf(c, comparisonNames) }

// ParseTargetRule returns the rule with the given catalog name.
func ParseTargetRule(name string) (TargetRule, error) {
	return lookupName("target rule", name, targetRuleNames)
}

// ParseEffectKind returns the effect kind with the given catalog name.
func ParseEffectKind(name string) (EffectKind, error) {
	return lookupName("effect kind", name, effectKindNames)
}
