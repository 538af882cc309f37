package data

import (
	"cmp"
	"fmt"
	"slices"
	"sync/atomic"
)

// Catalog is the read-only view of skill and buff definitions the engine uses.
type Catalog interface {
	Lookup(id int32) (*SkillTemplate, bool)
	LookupBuff(id string) (*BuffTemplate, bool)
	ListAll() []*SkillTemplate
}

// Table — неизменяемый снимок каталога. Безопасен для конкурентного чтения.
type Table struct {
	skills map[int32]*SkillTemplate
	buffs  map[string]*BuffTemplate
	sorted []*SkillTemplate
}

// Build validates the definitions and assembles a Table.
// Buff references in status effects are resolved against buffs.
// Definitions with errors are left out; duplicates keep the first entry.
func Build(skills []*SkillTemplate, buffs []*BuffTemplate) (*Table, ValidationResult) {
	var res ValidationResult
	t := &Table{
		skills: make(map[int32]*SkillTemplate, len(skills)),
		buffs:  make(map[string]*BuffTemplate, len(buffs)),
	}

	for _, b := range buffs {
		if _, dup := t.buffs[b.ID]; dup {
			res.warnf("duplicate buff %q skipped", b.ID)
			continue
		}
		r := ValidateBuff(b)
		res.merge(r)
		if r.OK() {
			t.buffs[b.ID] = b
		}
	}

	for _, s := range skills {
		if _, dup := t.skills[s.ID]; dup {
			res.warnf("duplicate skill %d skipped", s.ID)
			continue
		}
		resolved, err := t.resolveBuffRefs(s)
		if err != nil {
			res.errorf("skill %d: %v", s.ID, err)
			continue
		}
		r := ValidateSkill(resolved)
		res.merge(r)
		if r.OK() {
			t.skills[s.ID] = resolved
			t.sorted = append(t.sorted, resolved)
		}
	}

	slices.SortFunc(t.sorted, func(a, b *SkillTemplate) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return t, res
}

// resolveBuffRefs returns a copy of s where every status effect that
// names a buff carries the buff's modifiers and tick data. Inline values
// on the effect take precedence.
func (t *Table) resolveBuffRefs(s *SkillTemplate) (*SkillTemplate, error) {
	out := *s
	out.Effects = make([]EffectDef, len(s.Effects))
	copy(out.Effects, s.Effects)
	out.Conditions = slices.Clone(s.Conditions)

	for i := range out.Effects {
		sp := out.Effects[i].Status()
		if sp == nil || sp.BuffID == "" {
			continue
		}
		b, ok := t.buffs[sp.BuffID]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownBuff, sp.BuffID)
		}
		p := *sp
		if len(p.Modifiers) == 0 {
			p.Modifiers = slices.Clone(b.Modifiers)
		}
		if p.TickDamage == 0 && p.TickHeal == 0 {
			p.TickDamage, p.TickHeal = b.TickDamage, b.TickHeal
		}
		if p.TickInterval == 0 {
			p.TickInterval = b.TickInterval
		}
		p.Dispellable = p.Dispellable || b.Dispellable
		out.Effects[i].Params = &p
	}
	return &out, nil
}

// Lookup returns the skill with the given id.
func (t *Table) Lookup(id int32) (*SkillTemplate, bool) {
	s, ok := t.skills[id]
	return s, ok
}

// LookupBuff returns the buff with the given id.
func (t *Table) LookupBuff(id string) (*BuffTemplate, bool) {
	b, ok := t.buffs[id]
	return b, ok
}

// ListAll returns all skills ordered by id.
func (t *Table) ListAll() []*SkillTemplate {
	return slices.Clone(t.sorted)
}

// Len returns the number of skills.
func (t *Table) Len() int { return len(t.skills) }

// BuffCount returns the number of buffs.
func (t *Table) BuffCount() int { return len(t.buffs) }

// Registry хранит текущий Table и атомарно подменяет его при перезагрузке.
// Бой берёт Current() один раз и работает с этим снимком до конца.
type Registry struct {
	current atomic.Pointer[Table]
}

// NewRegistry creates a registry serving t.
func NewRegistry(t *Table) *Registry {
	r := &Registry{}
	r.current.Store(t)
	return r
}

// Current returns the table in effect right now.
func (r *Registry) Current() *Table {
	return r.current.Load()
}

// Swap replaces the served table.
func (r *Registry) Swap(t *Table) {
	r.current.Store(t)
}

// Lookup implements Catalog against the current table.
func (r *Registry) Lookup(id int32) (*SkillTemplate, bool) {
	return r.Current().Lookup(id)
}

// LookupBuff implements Catalog against the current table.
func (r *Registry) LookupBuff(id string) (*BuffTemplate, bool) {
	return r.Current().LookupBuff(id)
}

// ListAll implements Catalog against the current table.
func (r *Registry) ListAll() []*SkillTemplate {
	return r.Current().ListAll()
}
