package data

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/turnbattle/internal/model"
)

var (
	// ErrUnknownBuff is returned when a status effect names a missing buff.
	ErrUnknownBuff = errors.New("unknown buff")
	// ErrInvalidCatalog is returned when a catalog fails validation.
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// catalogFile is the on-disk layout of one catalog YAML file.
type catalogFile struct {
	Buffs  []buffYAML  `yaml:"buffs"`
	Skills []skillYAML `yaml:"skills"`
}

type buffYAML struct {
	ID           string    `yaml:"id"`
	Name         string    `yaml:"name"`
	Polarity     string    `yaml:"polarity"`
	Modifiers    []modYAML `yaml:"modifiers"`
	TickDamage   int32     `yaml:"tickDamage"`
	TickHeal     int32     `yaml:"tickHeal"`
	TickInterval int32     `yaml:"tickInterval"`
	Dispellable  *bool     `yaml:"dispellable"`
}

type modYAML struct {
	Stat  string  `yaml:"stat"`
	Value float64 `yaml:"value"`
}

type skillYAML struct {
	ID          int32           `yaml:"id"`
	Name        string          `yaml:"name"`
	Type        string          `yaml:"type"`
	Trigger     string          `yaml:"trigger"`
	Cost        int32           `yaml:"cost"`
	Cooldown    int32           `yaml:"cooldown"`
	Priority    int32           `yaml:"priority"`
	Description string          `yaml:"description"`
	Conditions  []conditionYAML `yaml:"conditions"`
	Effects     []effectYAML    `yaml:"effects"`
}

type conditionYAML struct {
	Type  string  `yaml:"type"`
	Op    string  `yaml:"op"`
	Value float64 `yaml:"value"`
}

type scaleYAML struct {
	Stat   string  `yaml:"stat"`
	Factor float64 `yaml:"factor"`
}

type effectYAML struct {
	Kind          string     `yaml:"kind"`
	Target        string     `yaml:"target"`
	Count         int        `yaml:"count"`
	Base          int32      `yaml:"base"`
	Scale         *scaleYAML `yaml:"scale"`
	Duration      int32      `yaml:"duration"`
	Stacking      string     `yaml:"stacking"`
	MaxStacks     int32      `yaml:"maxStacks"`
	Probability   *float64   `yaml:"probability"`
	CanCrit       bool       `yaml:"canCrit"`
	IgnoreDefense bool       `yaml:"ignoreDefense"`
	IgnoreResist  bool       `yaml:"ignoreResist"`

	// Ровно один блок параметров, соответствующий Kind.
	Status *struct {
		Buff         string    `yaml:"buff"`
		Modifiers    []modYAML `yaml:"modifiers"`
		TickDamage   int32     `yaml:"tickDamage"`
		TickHeal     int32     `yaml:"tickHeal"`
		TickInterval int32     `yaml:"tickInterval"`
		Dispellable  *bool     `yaml:"dispellable"`
	} `yaml:"status"`
	Chain *struct {
		Hops    int     `yaml:"hops"`
		Falloff float64 `yaml:"falloff"`
	} `yaml:"chain"`
	Lifesteal *struct {
		Ratio float64 `yaml:"ratio"`
	} `yaml:"lifesteal"`
	Reflect *struct {
		Ratio float64 `yaml:"ratio"`
	} `yaml:"reflect"`
	Revive *struct {
		HPFraction float64 `yaml:"hpFraction"`
	} `yaml:"revive"`
	Dispel *struct {
		Positive bool `yaml:"positive"`
		Negative bool `yaml:"negative"`
		Max      int  `yaml:"max"`
	} `yaml:"dispel"`
}

// LoadDefaults builds a Table from the built-in definitions.
func LoadDefaults() (*Table, error) {
	return build(builtinSkills(), builtinBuffs())
}

// LoadDir builds a Table from the built-in definitions overlaid with every
// *.yaml file in dir. A file entry replaces a built-in entry with the same id;
// between files the first definition wins.
func LoadDir(dir string) (*Table, error) {
	files, err := catalogFiles(dir)
	if err != nil {
		return nil, err
	}

	skills := builtinSkills()
	buffs := builtinBuffs()
	seenSkill := make(map[int32]string)
	seenBuff := make(map[string]string)

	for _, path := range files {
		fs, fb, err := ParseFile(path)
		if err != nil {
			return nil, err
		}
		for _, b := range fb {
			if prev, ok := seenBuff[b.ID]; ok {
				slog.Warn("duplicate buff skipped", "buff", b.ID, "file", path, "first", prev)
				continue
			}
			seenBuff[b.ID] = path
			buffs = slices.DeleteFunc(buffs, func(x *BuffTemplate) bool { return x.ID == b.ID })
			buffs = append(buffs, b)
		}
		for _, s := range fs {
			if prev, ok := seenSkill[s.ID]; ok {
				slog.Warn("duplicate skill skipped", "skill", s.ID, "file", path, "first", prev)
				continue
			}
			seenSkill[s.ID] = path
			skills = slices.DeleteFunc(skills, func(x *SkillTemplate) bool { return x.ID == s.ID })
			skills = append(skills, s)
		}
	}

	t, err := build(skills, buffs)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", dir, err)
	}
	slog.Info("loaded catalog", "dir", dir, "files", len(files), "skills", t.Len(), "buffs", t.BuffCount())
	return t, nil
}

func build(skills []*SkillTemplate, buffs []*BuffTemplate) (*Table, error) {
	t, res := Build(skills, buffs)
	for _, w := range res.Warnings {
		slog.Warn("catalog warning", "msg", w)
	}
	if !res.OK() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, res.Err())
	}
	return t, nil
}

// catalogFiles returns the sorted *.yaml/*.yml files in dir.
func catalogFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading catalog dir %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".yaml", ".yml":
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	slices.Sort(files)
	return files, nil
}

// ParseFile decodes one catalog file without validating it.
func ParseFile(path string) ([]*SkillTemplate, []*BuffTemplate, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	skills, buffs, err := Parse(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return skills, buffs, nil
}

// Parse decodes catalog YAML.
func Parse(raw []byte) ([]*SkillTemplate, []*BuffTemplate, error) {
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, nil, err
	}

	buffs := make([]*BuffTemplate, 0, len(f.Buffs))
	for i := range f.Buffs {
		b, err := f.Buffs[i].convert()
		if err != nil {
			return nil, nil, fmt.Errorf("buff %q: %w", f.Buffs[i].ID, err)
		}
		buffs = append(buffs, b)
	}

	skills := make([]*SkillTemplate, 0, len(f.Skills))
	for i := range f.Skills {
		s, err := f.Skills[i].convert()
		if err != nil {
			return nil, nil, fmt.Errorf("skill %d: %w", f.Skills[i].ID, err)
		}
		skills = append(skills, s)
	}
	return skills, buffs, nil
}

func (y *buffYAML) convert() (*BuffTemplate, error) {
	pol, err := lookupName("polarity", y.Polarity, polarityNames)
	if err != nil {
		return nil, err
	}
	mods, err := convertMods(y.Modifiers)
	if err != nil {
		return nil, err
	}
	return &BuffTemplate{
		ID:           y.ID,
		Name:         y.Name,
		Polarity:     pol,
		Modifiers:    mods,
		TickDamage:   y.TickDamage,
		TickHeal:     y.TickHeal,
		TickInterval: y.TickInterval,
		Dispellable:  y.Dispellable == nil || *y.Dispellable,
	}, nil
}

func convertMods(in []modYAML) ([]StatMod, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]StatMod, 0, len(in))
	for _, m := range in {
		st, err := model.ParseStat(m.Stat)
		if err != nil {
			return nil, err
		}
		out = append(out, StatMod{Stat: st, Value: m.Value})
	}
	return out, nil
}

func (y *skillYAML) convert() (*SkillTemplate, error) {
	st, err := lookupName("skill type", y.Type, skillTypeNames)
	if err != nil {
		return nil, err
	}
	trig, err := lookupName("trigger", y.Trigger, triggerNames)
	if err != nil {
		return nil, err
	}

	t := &SkillTemplate{
		ID:          y.ID,
		Name:        y.Name,
		Type:        st,
		Trigger:     trig,
		Cost:        y.Cost,
		Cooldown:    y.Cooldown,
		Priority:    y.Priority,
		Description: y.Description,
	}

	for _, c := range y.Conditions {
		ct, err := lookupName("condition", c.Type, conditionTypeNames)
		if err != nil {
			return nil, err
		}
		op, err := lookupName("comparison", c.Op, comparisonNames)
		if err != nil {
			return nil, err
		}
		t.Conditions = append(t.Conditions, Condition{Type: ct, Op: op, Value: c.Value})
	}

	for i := range y.Effects {
		e, err := y.Effects[i].convert()
		if err != nil {
			return nil, fmt.Errorf("effect %d: %w", i, err)
		}
		t.Effects = append(t.Effects, e)
	}
	return t, nil
}

func (y *effectYAML) convert() (EffectDef, error) {
	kind, err := ParseEffectKind(y.Kind)
	if err != nil {
		return EffectDef{}, err
	}
	target, err := ParseTargetRule(y.Target)
	if err != nil {
		return EffectDef{}, err
	}
	stacking, err := lookupName("stacking policy", y.Stacking, stackPolicyNames)
	if err != nil {
		return EffectDef{}, err
	}

	e := EffectDef{
		Kind:          kind,
		Target:        target,
		TargetCount:   y.Count,
		Base:          y.Base,
		Duration:      y.Duration,
		Stacking:      stacking,
		MaxStacks:     y.MaxStacks,
		Probability:   1,
		CanCrit:       y.CanCrit,
		IgnoreDefense: y.IgnoreDefense,
		IgnoreResist:  y.IgnoreResist,
	}
	if y.Probability != nil {
		e.Probability = *y.Probability
	}
	if e.TargetCount == 0 {
		e.TargetCount = 1
	}
	if e.MaxStacks == 0 {
		e.MaxStacks = 1
	}
	if y.Scale != nil {
		st, err := model.ParseStat(y.Scale.Stat)
		if err != nil {
			return EffectDef{}, err
		}
		e.ScaleStat, e.ScaleFactor = st, y.Scale.Factor
	}

	params, err := y.params(kind)
	if err != nil {
		return EffectDef{}, err
	}
	e.Params = params
	return e, nil
}

// params builds the variant for kind and rejects blocks that belong to
// other kinds.
func (y *effectYAML) params(kind EffectKind) (EffectParams, error) {
	var p EffectParams
	blocks := 0

	if y.Status != nil {
		blocks++
		mods, err := convertMods(y.Status.Modifiers)
		if err != nil {
			return nil, err
		}
		p = &StatusParams{
			BuffID:       y.Status.Buff,
			Modifiers:    mods,
			TickDamage:   y.Status.TickDamage,
			TickHeal:     y.Status.TickHeal,
			TickInterval: y.Status.TickInterval,
			Dispellable:  y.Status.Dispellable == nil || *y.Status.Dispellable,
		}
	}
	if y.Chain != nil {
		blocks++
		p = ChainParams{Hops: y.Chain.Hops, Falloff: y.Chain.Falloff}
	}
	if y.Lifesteal != nil {
		blocks++
		p = LifestealParams{Ratio: y.Lifesteal.Ratio}
	}
	if y.Reflect != nil {
		blocks++
		p = ReflectParams{Ratio: y.Reflect.Ratio}
	}
	if y.Revive != nil {
		blocks++
		p = ReviveParams{HPFraction: y.Revive.HPFraction}
	}
	if y.Dispel != nil {
		blocks++
		p = DispelParams{Positive: y.Dispel.Positive, Negative: y.Dispel.Negative, Max: y.Dispel.Max}
	}

	if blocks > 1 {
		return nil, fmt.Errorf("%s effect has %d parameter blocks, want at most one", kind, blocks)
	}
	if p == nil {
		switch kind {
		case EffectDamage:
			p = DamageParams{}
		case EffectHeal:
			p = HealParams{}
		case EffectShield:
			p = ShieldParams{}
		default:
			return nil, fmt.Errorf("%s effect needs a parameter block", kind)
		}
	}
	if !p.accepts(kind) {
		return nil, fmt.Errorf("parameter block does not match kind %s", kind)
	}
	return p, nil
}
