package battleserver

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/turnbattle/internal/model"
)

func storedAt(id string, player int64, started time.Time) *model.Record {
	return &model.Record{BattleID: id, PlayerID: player, StartedAt: started, Result: model.ResultVictory}
}

func TestStore_PutGet(t *testing.T) {
	s := NewStore()
	rec := storedAt("b1", 1, time.Now())
	s.Put(rec)

	got, ok := s.Get("b1")
	require.True(t, ok)
	assert.Same(t, rec, got)

	_, ok = s.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Count())
}

func TestStore_ListByPlayer(t *testing.T) {
	s := NewStore()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range 5 {
		s.Put(storedAt(fmt.Sprintf("p1-%d", i), 1, base.Add(time.Duration(i)*time.Minute)))
	}
	s.Put(storedAt("p1-tie", 1, base.Add(4*time.Minute)))
	s.Put(storedAt("p2-0", 2, base))

	items, total := s.ListByPlayer(1, 3, 0)
	assert.Equal(t, 6, total)
	require.Len(t, items, 3)
	assert.Equal(t, "p1-4", items[0].BattleID, "newest first, ties by id")
	assert.Equal(t, "p1-tie", items[1].BattleID)
	assert.Equal(t, "p1-3", items[2].BattleID)

	items, _ = s.ListByPlayer(1, 3, 4)
	require.Len(t, items, 2)
	assert.Equal(t, "p1-0", items[1].BattleID)

	items, total = s.ListByPlayer(1, 3, 10)
	assert.Empty(t, items)
	assert.Equal(t, 6, total)

	items, total = s.ListByPlayer(3, 10, 0)
	assert.Empty(t, items)
	assert.Zero(t, total)
}

func TestStore_CleanExpired(t *testing.T) {
	s := NewStore()
	s.Put(storedAt("old", 1, time.Now()))
	time.Sleep(20 * time.Millisecond)
	s.Put(storedAt("fresh", 1, time.Now()))

	assert.Equal(t, 1, s.CleanExpired(10*time.Millisecond))
	_, ok := s.Get("old")
	assert.False(t, ok)
	_, ok = s.Get("fresh")
	assert.True(t, ok)
	assert.Zero(t, s.CleanExpired(time.Hour))
}
