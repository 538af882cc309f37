package combat

import (
	"errors"
	"fmt"
	"math"

	"github.com/udisondev/turnbattle/internal/model"
)

// Ошибки валидации запроса на бой.
var (
	ErrInvalidPlayer = errors.New("invalid player id")
	ErrRosterSize    = errors.New("invalid roster size")
	ErrDuplicateUnit = errors.New("duplicate unit id")
	ErrInvalidHP     = errors.New("unit hp must be positive")
	ErrInvalidAttr   = errors.New("unit attribute out of range")
)

// ValidateRequest validates a battle request before any state is built.
//
// Checks:
//   - player id is positive
//   - each roster holds 1..maxUnits heroes
//   - hero ids are unique within a roster
//   - every attribute is finite and fits int32
//   - every hero starts with positive HP that fits int32
func ValidateRequest(playerID int64, teamOne, teamTwo []model.Hero, maxUnits int) error {
	if playerID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPlayer, playerID)
	}
	if err := ValidateRoster(model.SideA, teamOne, maxUnits); err != nil {
		return err
	}
	return ValidateRoster(model.SideB, teamTwo, maxUnits)
}

// ValidateRoster validates one side.
func ValidateRoster(side model.Side, roster []model.Hero, maxUnits int) error {
	if len(roster) == 0 || len(roster) > maxUnits {
		return fmt.Errorf("%w: side %s has %d units, want 1..%d", ErrRosterSize, side, len(roster), maxUnits)
	}

	seen := make(map[int64]struct{}, len(roster))
	for _, h := range roster {
		if _, dup := seen[h.UID]; dup {
			return fmt.Errorf("%w: side %s uid %d", ErrDuplicateUnit, side, h.UID)
		}
		seen[h.UID] = struct{}{}

		for id, v := range h.Attrs {
			if math.IsNaN(v) || math.Abs(v) > math.MaxInt32 {
				return fmt.Errorf("%w: side %s uid %d attr %d = %v", ErrInvalidAttr, side, h.UID, id, v)
			}
		}

		hp, _ := h.Attr(model.AttrHP)
		if rate, ok := h.Attr(model.AttrHPRate); ok {
			hp *= 1 + rate
		}
		if hp < 1 {
			return fmt.Errorf("%w: side %s uid %d", ErrInvalidHP, side, h.UID)
		}
		if hp > math.MaxInt32 {
			return fmt.Errorf("%w: side %s uid %d hp %v", ErrInvalidAttr, side, h.UID, hp)
		}
	}
	return nil
}
