package data

import (
	"fmt"

	"github.com/udisondev/turnbattle/internal/model"
)

// SkillType определяет способ активации скилла.
type SkillType uint8

const (
	SkillBasic     SkillType = iota + 1 // базовая атака, без кулдауна и стоимости
	SkillActive                         // активный скилл с кулдауном, стоимостью и условиями
	SkillPassive                        // постоянные статусы, применяются в начале боя
	SkillTriggered                      // срабатывает по событию (Trigger)
)

// Trigger — событие, по которому срабатывает SkillTriggered.
type Trigger uint8

const (
	TriggerNone Trigger = iota
	TriggerRoundStart
	TriggerOnKill
	TriggerOnDeath
)

// EffectKind — вид эффекта. Определяет обработчик и тип Params.
type EffectKind uint8

const (
	EffectDamage EffectKind = iota + 1
	EffectHeal
	EffectShield
	EffectBuff
	EffectDebuff
	EffectDispel
	EffectChain
	EffectLifesteal
	EffectReflect
	EffectRevive
)

// IsStatus reports whether the effect leaves a timed instance on the target.
func (k EffectKind) IsStatus() bool {
	switch k {
	case EffectShield, EffectBuff, EffectDebuff, EffectReflect:
		return true
	}
	return false
}

// IsSpecial reports whether the kind is one of the special effects.
func (k EffectKind) IsSpecial() bool {
	switch k {
	case EffectChain, EffectLifesteal, EffectReflect, EffectRevive:
		return true
	}
	return false
}

// Polarity — положительный (buff) или отрицательный (debuff) статус.
type Polarity uint8

const (
	PolarityPositive Polarity = iota + 1
	PolarityNegative
)

// Polarity returns the polarity of the status the kind produces.
func (k EffectKind) Polarity() Polarity {
	if k == EffectDebuff {
		return PolarityNegative
	}
	return PolarityPositive
}

// TargetRule — правило выбора целей эффекта.
type TargetRule uint8

const (
	TargetSelf TargetRule = iota + 1
	TargetSingleEnemy
	TargetSingleAlly
	TargetAllEnemies
	TargetAllAllies
	TargetRandomEnemies
	TargetRandomAllies
	TargetEnemyFrontLine
	TargetEnemyBackLine
	TargetAllyFrontLine
	TargetAllyBackLine
	TargetAllyLowestHP
	TargetEnemyLowestHP
	TargetEnemyHighestHP
	TargetEnemyHighestAttack
	TargetAllyHighestAttack
	TargetDeadAlly // единственное правило, выбирающее мёртвых юнитов
)

// StackPolicy — поведение при повторном наложении статуса той же линии.
type StackPolicy uint8

const (
	StackNone        StackPolicy = iota + 1 // заменить существующий экземпляр
	StackStack                              // +1 стак до MaxStacks, сбросить длительность
	StackRefresh                            // сбросить длительность
	StackIndependent                        // независимый экземпляр
)

// StatMod — аддитивный модификатор атрибута на один стак.
type StatMod struct {
	Stat  model.Stat
	Value float64
}

// EffectParams — параметры, специфичные для вида эффекта.
// Закрытый набор реализаций; несоответствие виду — ошибка загрузки.
type EffectParams interface {
	accepts(EffectKind) bool
}

// DamageParams is empty: damage uses only the common effect fields.
type DamageParams struct{}

// HealParams is empty: heal uses only the common effect fields.
type HealParams struct{}

// ShieldParams is empty: the absorb pool is the computed effect value.
type ShieldParams struct{}

// StatusParams describes a buff or debuff instance.
type StatusParams struct {
	BuffID       string // ссылка на BuffTemplate, разрешается при загрузке
	Modifiers    []StatMod
	TickDamage   int32
	TickHeal     int32
	TickInterval int32
	Dispellable  bool
}

// ChainParams: damage jumps to Hops extra enemies, each hop scaled by (1-Falloff).
type ChainParams struct {
	Hops    int
	Falloff float64
}

// LifestealParams: the caster heals Ratio of the damage dealt.
type LifestealParams struct {
	Ratio float64
}

// ReflectParams: the holder returns Ratio of received damage to the attacker.
type ReflectParams struct {
	Ratio float64
}

// ReviveParams: a dead target comes back with HPFraction of max HP.
type ReviveParams struct {
	HPFraction float64
}

// DispelParams selects which polarities are removed. Max 0 means all.
type DispelParams struct {
	Positive bool
	Negative bool
	Max      int
}

func (DamageParams) accepts(k EffectKind) bool    { return k == EffectDamage }
func (HealParams) accepts(k EffectKind) bool      { return k == EffectHeal }
func (ShieldParams) accepts(k EffectKind) bool    { return k == EffectShield }
func (*StatusParams) accepts(k EffectKind) bool   { return k == EffectBuff || k == EffectDebuff }
func (ChainParams) accepts(k EffectKind) bool     { return k == EffectChain }
func (LifestealParams) accepts(k EffectKind) bool { return k == EffectLifesteal }
func (ReflectParams) accepts(k EffectKind) bool   { return k == EffectReflect }
func (ReviveParams) accepts(k EffectKind) bool    { return k == EffectRevive }
func (DispelParams) accepts(k EffectKind) bool    { return k == EffectDispel }

// EffectDef описывает один эффект скилла.
type EffectDef struct {
	Kind        EffectKind
	Target      TargetRule
	TargetCount int // для random-правил

	Base        int32
	ScaleStat   model.Stat
	ScaleFactor float64

	Duration    int32 // 0 = мгновенный
	Stacking    StackPolicy
	MaxStacks   int32
	Probability float64

	CanCrit       bool
	IgnoreDefense bool
	IgnoreResist  bool

	Params EffectParams
}

// Status returns the status params of a buff/debuff effect, or nil.
func (e *EffectDef) Status() *StatusParams {
	p, _ := e.Params.(*StatusParams)
	return p
}

// ConditionType — что проверяет условие активного скилла.
type ConditionType uint8

const (
	CondSelfHP ConditionType = iota + 1
	CondSelfMP
	CondEnemyCount
	CondAllyCount
	CondHasBuff
	CondHasDebuff
	CondRound
	CondEnemyHP
	CondRandom
)

// Comparison — оператор сравнения условия.
type Comparison uint8

const (
	CmpGreater Comparison = iota + 1
	CmpLess
	CmpGreaterEqual
	CmpLessEqual
	CmpEqual
	CmpNotEqual
)

// conditionEpsilon is the tolerance used by CmpEqual and CmpNotEqual.
const conditionEpsilon = 0.001

// Compare evaluates "left op right".
func (c Comparison) Compare(left, right float64) bool {
	switch c {
	case CmpGreater:
		return left > right
	case CmpLess:
		return left < right
	case CmpGreaterEqual:
		return left >= right
	case CmpLessEqual:
		return left <= right
	case CmpEqual:
		return left-right < conditionEpsilon && right-left < conditionEpsilon
	case CmpNotEqual:
		return left-right >= conditionEpsilon || right-left >= conditionEpsilon
	}
	return false
}

// Condition — предусловие активного скилла.
type Condition struct {
	Type  ConditionType
	Op    Comparison
	Value float64
}

// SkillTemplate — immutable шаблон скилла.
// Shared across all battles — НЕ модифицировать после загрузки.
type SkillTemplate struct {
	ID          int32
	Name        string
	Type        SkillType
	Trigger     Trigger
	Cost        int32
	Cooldown    int32
	Priority    int32
	Effects     []EffectDef
	Conditions  []Condition
	Description string
}

func (t *SkillTemplate) String() string {
	return fmt.Sprintf("skill %d (%s)", t.ID, t.Name)
}

// BuffTemplate — именованный набор модификаторов, на который ссылаются
// buff/debuff эффекты.
type BuffTemplate struct {
	ID           string
	Name         string
	Polarity     Polarity
	Modifiers    []StatMod
	TickDamage   int32
	TickHeal     int32
	TickInterval int32
	Dispellable  bool
}
