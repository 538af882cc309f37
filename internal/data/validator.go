package data

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationResult collects problems found in a catalog.
// Errors reject the definition, warnings are only logged.
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

// OK reports whether no errors were found.
func (r *ValidationResult) OK() bool {
	return len(r.Errors) == 0
}

// Err joins all errors into one, or returns nil.
func (r *ValidationResult) Err() error {
	if r.OK() {
		return nil
	}
	return errors.New(strings.Join(r.Errors, "; "))
}

func (r *ValidationResult) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) merge(o ValidationResult) {
	r.Errors = append(r.Errors, o.Errors...)
	r.Warnings = append(r.Warnings, o.Warnings...)
}

// ValidateSkill checks one skill template.
func ValidateSkill(t *SkillTemplate) ValidationResult {
	var r ValidationResult

	if t.ID <= 0 {
		r.errorf("skill id must be positive, got %d", t.ID)
	}
	if t.Name == "" {
		r.warnf("skill %d has no name", t.ID)
	}
	if t.Cost < 0 {
		r.errorf("skill %d: cost must be non-negative, got %d", t.ID, t.Cost)
	}
	if t.Cooldown < 0 {
		r.errorf("skill %d: cooldown must be non-negative, got %d", t.ID, t.Cooldown)
	}
	if t.Priority < 1 || t.Priority > 10 {
		r.warnf("skill %d: priority %d outside 1..10", t.ID, t.Priority)
	}
	if len(t.Effects) == 0 {
		r.errorf("skill %d: at least one effect is required", t.ID)
	}

	switch t.Type {
	case SkillBasic, SkillActive, SkillPassive:
		if t.Trigger != TriggerNone {
			r.warnf("skill %d: trigger is ignored for %s skills", t.ID, t.Type)
		}
	case SkillTriggered:
		if t.Trigger == TriggerNone {
			r.errorf("skill %d: triggered skill needs a trigger", t.ID)
		}
	default:
		r.errorf("skill %d: unknown skill type %d", t.ID, t.Type)
	}

	if t.Type != SkillActive && len(t.Conditions) > 0 {
		r.warnf("skill %d: conditions are only checked for active skills", t.ID)
	}

	for i := range t.Effects {
		e := &t.Effects[i]
		r.merge(validateEffect(t.ID, i, e))
		if t.Type == SkillPassive && !e.Kind.IsStatus() {
			r.warnf("skill %d effect %d: passive skills only apply status effects, %s is ignored", t.ID, i, e.Kind)
		}
	}
	return r
}

func validateEffect(skillID int32, idx int, e *EffectDef) ValidationResult {
	var r ValidationResult
	where := fmt.Sprintf("skill %d effect %d", skillID, idx)

	if e.Params == nil || !e.Params.accepts(e.Kind) {
		r.errorf("%s: params do not match kind %s", where, e.Kind)
		return r
	}
	if e.Target == 0 {
		r.errorf("%s: target rule is required", where)
	}
	if e.Probability < 0 || e.Probability > 1 {
		r.errorf("%s: probability must be in [0,1], got %v", where, e.Probability)
	}
	if e.Duration < 0 {
		r.errorf("%s: duration must be non-negative, got %d", where, e.Duration)
	}
	if e.MaxStacks < 0 {
		r.errorf("%s: max stacks must be non-negative, got %d", where, e.MaxStacks)
	}
	if (e.Target == TargetRandomEnemies || e.Target == TargetRandomAllies) && e.TargetCount <= 0 {
		r.errorf("%s: random target rule needs a positive target count", where)
	}
	if e.Kind.IsStatus() && e.Duration == 0 {
		r.errorf("%s: %s effect needs a duration", where, e.Kind)
	}
	if e.Kind == EffectRevive && e.Target != TargetDeadAlly {
		r.warnf("%s: revive only affects dead units, target %s selects living ones", where, e.Target)
	}

	switch p := e.Params.(type) {
	case *StatusParams:
		if len(p.Modifiers) == 0 && p.TickDamage == 0 && p.TickHeal == 0 {
			r.warnf("%s: status has no modifiers and no tick", where)
		}
		if p.TickInterval < 0 {
			r.errorf("%s: tick interval must be non-negative", where)
		}
		if (p.TickDamage != 0 || p.TickHeal != 0) && p.TickInterval == 0 {
			r.errorf("%s: tick effect needs a tick interval", where)
		}
	case ChainParams:
		if p.Hops <= 0 {
			r.errorf("%s: chain hops must be positive", where)
		}
		if p.Falloff < 0 || p.Falloff >= 1 {
			r.errorf("%s: chain falloff must be in [0,1)", where)
		}
	case LifestealParams:
		if p.Ratio <= 0 || p.Ratio > 1 {
			r.errorf("%s: lifesteal ratio must be in (0,1]", where)
		}
	case ReflectParams:
		if p.Ratio <= 0 {
			r.errorf("%s: reflect ratio must be positive", where)
		}
	case ReviveParams:
		if p.HPFraction <= 0 || p.HPFraction > 1 {
			r.errorf("%s: revive hp fraction must be in (0,1]", where)
		}
	case DispelParams:
		if !p.Positive && !p.Negative {
			r.errorf("%s: dispel must remove at least one polarity", where)
		}
		if p.Max < 0 {
			r.errorf("%s: dispel max must be non-negative", where)
		}
	}
	return r
}

// ValidateBuff checks one buff template.
func ValidateBuff(b *BuffTemplate) ValidationResult {
	var r ValidationResult
	if b.ID == "" {
		r.errorf("buff id is required")
	}
	if b.Polarity != PolarityPositive && b.Polarity != PolarityNegative {
		r.errorf("buff %q: polarity must be positive or negative", b.ID)
	}
	if b.TickInterval < 0 {
		r.errorf("buff %q: tick interval must be non-negative", b.ID)
	}
	if (b.TickDamage != 0 || b.TickHeal != 0) && b.TickInterval == 0 {
		r.errorf("buff %q: tick effect needs a tick interval", b.ID)
	}
	return r
}
