package services

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "leaderboard:games"

// RedisLeaderboard keeps every game's current score in a sorted set.
type RedisLeaderboard struct {
	Client *redis.Client
	Key    string
}

var _ Leaderboard = (*RedisLeaderboard)(nil)

func NewRedisLeaderboard(client *redis.Client) *RedisLeaderboard {
	return &RedisLeaderboard{Client: client, Key: leaderboardKey}
}

// Record stores the absolute score. Game scores never decrease, so GT keeps
// the highest value when writes from concurrent scorers arrive out of order.
func (l *RedisLeaderboard) Record(ctx context.Context, gameID uint, score int) error {
	return l.Client.ZAddArgs(ctx, l.Key, redis.ZAddArgs{
		GT: true,
		Members: []redis.Z{{
			Score:  float64(score),
			Member: strconv.FormatUint(uint64(gameID), 10),
		}},
	}).Err()
}

func (l *RedisLeaderboard) Top(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		return nil, nil
	}
	members, err := l.Client.ZRevRangeWithScores(ctx, l.Key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(members))
	for _, m := range members {
		member, ok := m.Member.(string)
		if !ok {
			continue
		}
		id, err := strconv.ParseUint(member, 10, 64)
		if err != nil {
			continue
		}
		entries = append(entries, LeaderboardEntry{GameID: uint(id), Score: int(m.Score)})
	}
	return entries, nil
}
