package skill

import (
	"slices"

	"github.com/udisondev/turnbattle/internal/data"
	"github.com/udisondev/turnbattle/internal/game/combat"
	"github.com/udisondev/turnbattle/internal/model"
)

// ChainEffect hits the primary target, then jumps to up to Hops further
// living units on the primary's side. Every hop scales the raw value by
// (1 - Falloff); a unit is never hit twice by the same chain.
type ChainEffect struct{}

func (ChainEffect) Kind() data.EffectKind { return data.EffectChain }

func (ChainEffect) Apply(c *Cast, target *model.Unit) bool {
	p, ok := c.Def.Params.(data.ChainParams)
	if !ok {
		return false
	}
	raw := c.scaled()
	c.strike(target, raw)

	hit := []*model.Unit{target}
	for hop := 1; hop <= p.Hops; hop++ {
		if c.Caster.IsDead() {
			break
		}
		var candidates []*model.Unit
		for _, u := range c.ex.units {
			if u.Side == target.Side && u.IsAlive() && !slices.Contains(hit, u) {
				candidates = append(candidates, u)
			}
		}
		if len(candidates) == 0 {
			break
		}
		next := candidates[c.ex.dice.IntN(len(candidates))]
		hit = append(hit, next)
		c.strike(next, combat.ChainFalloff(raw, p.Falloff, hop))
	}
	return true
}
