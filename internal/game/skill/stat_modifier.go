package skill

import "github.com/udisondev/turnbattle/internal/model"

// StatReader returns the effective value of a stat: base plus every
// active modifier. Modifiers are never written back to the base.
type StatReader interface {
	Stat(u *model.Unit, s model.Stat) float64
}

// StatBonus sums the modifiers of ae for s, multiplied by stacks.
func (ae *ActiveEffect) StatBonus(s model.Stat) float64 {
	var bonus float64
	for _, m := range ae.Modifiers {
		if m.Stat == s {
			bonus += m.Value
		}
	}
	return bonus * float64(ae.Stacks)
}
