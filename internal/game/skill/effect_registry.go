package skill

import (
	"fmt"

	"github.com/udisondev/turnbattle/internal/data"
)

// effectRegistry maps effect kind → handler.
// Populated by init() below; handlers are stateless.
var effectRegistry = map[data.EffectKind]Effect{}

// RegisterEffect registers the handler for its kind.
func RegisterEffect(e Effect) {
	effectRegistry[e.Kind()] = e
}

// HandlerFor returns the handler of kind.
func HandlerFor(kind data.EffectKind) (Effect, error) {
	e, ok := effectRegistry[kind]
	if !ok {
		return nil, fmt.Errorf("unknown effect kind: %s", kind)
	}
	return e, nil
}

func init() {
	RegisterEffect(DamageEffect{})
	RegisterEffect(HealEffect{})
	RegisterEffect(ShieldEffect{})
	RegisterEffect(StatusEffect{kind: data.EffectBuff})
	RegisterEffect(StatusEffect{kind: data.EffectDebuff})
	RegisterEffect(DispelEffect{})
	RegisterEffect(ChainEffect{})
	RegisterEffect(LifestealEffect{})
	RegisterEffect(ReflectEffect{})
	RegisterEffect(ReviveEffect{})
}
