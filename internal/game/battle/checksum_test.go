package battle

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/turnbattle/internal/model"
)

func TestChecksum(t *testing.T) {
	rec := &model.Record{
		Seed:    5,
		TeamOne: []model.Hero{hero(1, 100, 20, 0, 10)},
		TeamTwo: []model.Hero{hero(2, 100, 10, 4, 5)},
		Result:  model.ResultVictory,
	}
	sum := Checksum(rec)
	assert.Len(t, sum, 64)

	moved := *rec
	moved.StartedAt = time.Now()
	moved.BattleID = "another"
	moved.PlayerID = 77
	assert.Equal(t, sum, Checksum(&moved), "ids and timestamps are not hashed")

	changed := *rec
	changed.Result = model.ResultDraw
	assert.NotEqual(t, sum, Checksum(&changed))

	changed = *rec
	changed.TimedOut = true
	assert.NotEqual(t, sum, Checksum(&changed))
}

func TestChecksum_Unencodable(t *testing.T) {
	h := hero(1, 100, 20, 0, 10)
	h.Attrs[model.AttrAttack] = math.NaN()
	assert.Empty(t, Checksum(&model.Record{TeamOne: []model.Hero{h}}))
}
