package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCooldowns(t *testing.T) {
	cd := NewCooldowns()
	assert.True(t, cd.Ready(0, 1003))

	cd.Start(0, 1003, 2)
	assert.False(t, cd.Ready(0, 1003))
	assert.True(t, cd.Ready(1, 1003), "cooldowns are per unit")
	assert.Equal(t, int32(2), cd.Remaining(0, 1003))

	cd.Tick()
	assert.Equal(t, int32(1), cd.Remaining(0, 1003))
	cd.Tick()
	assert.True(t, cd.Ready(0, 1003))

	cd.Tick()
	assert.Zero(t, cd.Remaining(0, 1003), "never negative")
}

func TestCooldowns_StartZero(t *testing.T) {
	cd := NewCooldowns()
	cd.Start(0, 1003, 3)
	cd.Start(0, 1003, 0)
	assert.True(t, cd.Ready(0, 1003))
}
