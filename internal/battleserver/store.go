package battleserver

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/udisondev/turnbattle/internal/model"
)

// Store keeps finished battle records in memory.
// Thread-safe через sync.Map: запись не меняется после Put, удаляет её только janitor.
type Store struct {
	records sync.Map // map[string]*storedRecord
}

type storedRecord struct {
	rec      *model.Record
	storedAt time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Put сохраняет запись под её BattleID.
func (s *Store) Put(rec *model.Record) {
	s.records.Store(rec.BattleID, &storedRecord{rec: rec, storedAt: time.Now()})
}

// Get возвращает запись по id.
func (s *Store) Get(battleID string) (*model.Record, bool) {
	v, ok := s.records.Load(battleID)
	if !ok {
		return nil, false
	}
	return v.(*storedRecord).rec, true
}

// ListByPlayer returns one page of the player's battles, newest first,
// and the player's total battle count.
func (s *Store) ListByPlayer(playerID int64, limit, offset int) ([]model.Summary, int) {
	var all []model.Summary
	s.records.Range(func(_, v any) bool {
		rec := v.(*storedRecord).rec
		if rec.PlayerID == playerID {
			all = append(all, rec.Summary())
		}
		return true
	})
	slices.SortFunc(all, func(a, b model.Summary) int {
		if c := b.StartedAt.Compare(a.StartedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.BattleID, b.BattleID)
	})

	total := len(all)
	if offset >= total {
		return nil, total
	}
	end := min(offset+limit, total)
	return all[offset:end], total
}

// CleanExpired удаляет записи старше ttl и возвращает их количество.
func (s *Store) CleanExpired(ttl time.Duration) int {
	now := time.Now()
	removed := 0
	s.records.Range(func(key, v any) bool {
		if now.Sub(v.(*storedRecord).storedAt) > ttl {
			s.records.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

// Count возвращает количество записей.
func (s *Store) Count() int {
	count := 0
	s.records.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}
