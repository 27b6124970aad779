package services

import (
	"context"
	"testing"
	"time"

	"orderalone/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisLeaderboard(t *testing.T) {
	ctx := context.Background()
	_, client := newTestRedis(t)
	board := NewRedisLeaderboard(client)

	require.NoError(t, board.Record(ctx, 1, 0))
	require.NoError(t, board.Record(ctx, 2, 7))
	require.NoError(t, board.Record(ctx, 3, 4))
	// absolute scores, so a replay leaves the value unchanged
	require.NoError(t, board.Record(ctx, 3, 4))

	top, err := board.Top(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []LeaderboardEntry{{GameID: 2, Score: 7}, {GameID: 3, Score: 4}}, top)

	all, err := board.Top(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := board.Top(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRedisLeaderboard_KeepsHighestScore(t *testing.T) {
	ctx := context.Background()
	_, client := newTestRedis(t)
	board := NewRedisLeaderboard(client)

	// a stale write landing after a newer one must not lower the score
	require.NoError(t, board.Record(ctx, 1, 7))
	require.NoError(t, board.Record(ctx, 1, 3))
	require.NoError(t, board.Record(ctx, 2, 5))

	top, err := board.Top(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []LeaderboardEntry{{GameID: 1, Score: 7}, {GameID: 2, Score: 5}}, top)
}

func TestRedisLeaderboard_SkipsForeignMembers(t *testing.T) {
	ctx := context.Background()
	_, client := newTestRedis(t)
	board := NewRedisLeaderboard(client)

	require.NoError(t, client.ZAdd(ctx, leaderboardKey, redis.Z{Score: 99, Member: "not-a-game"}).Err())
	require.NoError(t, board.Record(ctx, 5, 3))

	top, err := board.Top(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []LeaderboardEntry{{GameID: 5, Score: 3}}, top)
}

func TestRedisMenuCache(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	cache := NewRedisMenuCache(client, time.Minute)

	_, err := cache.Get(ctx, 9)
	assert.ErrorIs(t, err, ErrCacheMiss)

	menu := &models.Menu{
		ID:    9,
		Name:  "Cafe",
		Level: 3,
		Data: datatypes.NewJSONType([]models.Category{{
			Kategorie: "Coffee",
			Menus:     []models.MenuItem{{Name: "Latte"}},
		}}),
	}
	require.NoError(t, cache.Set(ctx, menu))
	assert.True(t, mr.Exists("menu:9"))
	assert.Equal(t, time.Minute, mr.TTL("menu:9"))

	got, err := cache.Get(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "Cafe", got.Name)
	assert.Equal(t, 3, got.Level)
	assert.Equal(t, "Latte", got.Categories()[0].Menus[0].Name)

	require.NoError(t, cache.Invalidate(ctx, 9))
	_, err = cache.Get(ctx, 9)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisMenuCache_CorruptEntry(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	require.NoError(t, mr.Set("menu:1", "{not json"))

	_, err := NewRedisMenuCache(client, time.Minute).Get(ctx, 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}
