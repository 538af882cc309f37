package model

import "fmt"

// Hero is one roster entry submitted with a battle request.
// Attrs is keyed by attribute ID (AttrHP, AttrAttack, ...).
type Hero struct {
	UID             int64             `json:"uid" yaml:"uid"`
	Name            string            `json:"name,omitempty" yaml:"name,omitempty"`
	Attrs           map[int32]float64 `json:"attrs" yaml:"attrs"`
	AttackID        int32             `json:"attackId" yaml:"attackId"`
	SkillID         int32             `json:"skillId,omitempty" yaml:"skillId,omitempty"`
	PassiveSkillIDs []int32           `json:"passiveSkillIds,omitempty" yaml:"passiveSkillIds,omitempty"`
}

// Attr returns the raw attribute value and whether the hero carries it.
func (h Hero) Attr(id int32) (float64, bool) {
	v, ok := h.Attrs[id]
	return v, ok
}

// DisplayName returns Name or a generated label.
func (h Hero) DisplayName() string {
	if h.Name != "" {
		return h.Name
	}
	return fmt.Sprintf("Hero#%d", h.UID)
}

// Side — сторона битвы. SideA — команда игрока, SideB — противник.
type Side uint8

const (
	SideA Side = iota
	SideB
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

func (s Side) String() string {
	if s == SideA {
		return "A"
	}
	return "B"
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Side) UnmarshalText(b []byte) error {
	switch string(b) {
	case "A":
		*s = SideA
	case "B":
		*s = SideB
	default:
		return fmt.Errorf("unknown side %q", b)
	}
	return nil
}
