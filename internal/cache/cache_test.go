package cache

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/turnbattle/internal/config"
	"github.com/udisondev/turnbattle/internal/model"
	"github.com/udisondev/turnbattle/internal/testutil"
)

// testAddr — адрес Redis из testcontainer, пустой если Docker недоступен.
var testAddr string

func TestMain(m *testing.M) {
	os.Exit(runWithRedis(m))
}

func runWithRedis(m *testing.M) int {
	addr, stop, err := testutil.StartRedis(context.Background())
	if err != nil {
		log.Printf("redis unavailable, skipping cache tests: %v", err)
		return m.Run()
	}
	defer stop()

	testAddr = addr
	return m.Run()
}

func newTestCache(t *testing.T, ttl time.Duration) *RecordCache {
	t.Helper()
	if testAddr == "" {
		t.Skip("redis container unavailable")
	}
	c, err := New(context.Background(), config.RedisConfig{Address: testAddr}, ttl)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestKey(t *testing.T) {
	assert.Equal(t, "battle:abc", Key("abc"))
}

func TestRecordCache_PutGet(t *testing.T) {
	c := newTestCache(t, time.Minute)
	ctx := context.Background()

	rec := &model.Record{
		BattleID: "0b7c7a52-0000-4000-8000-000000000001",
		PlayerID: 9,
		Seed:     77,
		Result:   model.ResultDraw,
		TimedOut: true,
		Checksum: "ff",
	}
	require.NoError(t, c.Put(ctx, rec))

	got, err := c.Get(ctx, rec.BattleID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec.Seed, got.Seed)
	assert.Equal(t, model.ResultDraw, got.Result)
	assert.True(t, got.TimedOut)
	assert.NoError(t, c.Ping(ctx))
}

func TestRecordCache_Missing(t *testing.T) {
	c := newTestCache(t, time.Minute)

	got, err := c.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestNew_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := New(ctx, config.RedisConfig{Address: "127.0.0.1:1"}, time.Minute)
	assert.Error(t, err)
}
