package skill

// cooldownKey identifies a skill of a unit.
type cooldownKey struct {
	unit  int
	skill int32
}

// Cooldowns tracks remaining cooldown rounds per unit and skill.
// Owned by a single battle.
type Cooldowns struct {
	remaining map[cooldownKey]int32
}

// NewCooldowns creates an empty tracker.
func NewCooldowns() *Cooldowns {
	return &Cooldowns{remaining: make(map[cooldownKey]int32)}
}

// Start puts skill of unit on cooldown for rounds.
func (c *Cooldowns) Start(unit int, skill int32, rounds int32) {
	if rounds <= 0 {
		delete(c.remaining, cooldownKey{unit, skill})
		return
	}
	c.remaining[cooldownKey{unit, skill}] = rounds
}

// Remaining returns the rounds left before skill of unit is usable.
func (c *Cooldowns) Remaining(unit int, skill int32) int32 {
	return c.remaining[cooldownKey{unit, skill}]
}

// Ready reports whether skill of unit is off cooldown.
func (c *Cooldowns) Ready(unit int, skill int32) bool {
	return c.Remaining(unit, skill) == 0
}

// Tick decrements every cooldown by one round.
func (c *Cooldowns) Tick() {
	for k, v := range c.remaining {
		if v <= 1 {
			delete(c.remaining, k)
			continue
		}
		c.remaining[k] = v - 1
	}
}
