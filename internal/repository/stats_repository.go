package repository

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/go-redis/redis/v8"
)

const statsKeyPrefix = "orion:stats:hits:"

// StatsRepository считает обращения к эндпоинтам. Счетчики — единственное,
// что живет в Redis: ответы апстримов не кэшируются.
type StatsRepository interface {
	Hit(ctx context.Context, endpoint string)
	Snapshot(ctx context.Context) (map[string]int64, error)
}

type redisStatsRepository struct {
	client *redis.Client
}

func NewStatsRepository(client *redis.Client) StatsRepository {
	return &redisStatsRepository{client: client}
}

func (r *redisStatsRepository) Hit(ctx context.Context, endpoint string) {
	if err := r.client.Incr(ctx, statsKeyPrefix+endpoint).Err(); err != nil {
		log.Printf("stats: failed to increment %s: %v", endpoint, err)
	}
}

func (r *redisStatsRepository) Snapshot(ctx context.Context) (map[string]int64, error) {
	keys, err := r.client.Keys(ctx, statsKeyPrefix+"*").Result()
	if err != nil {
		return nil, err
	}

	hits := make(map[string]int64, len(keys))
	for _, key := range keys {
		val, err := r.client.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, err
		}
		count, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			continue
		}
		hits[strings.TrimPrefix(key, statsKeyPrefix)] = count
	}

	return hits, nil
}

// noopStatsRepository используется когда Redis недоступен: сервис
// стартует и работает, просто без статистики.
type noopStatsRepository struct{}

func NewNoopStatsRepository() StatsRepository {
	return noopStatsRepository{}
}

func (noopStatsRepository) Hit(ctx context.Context, endpoint string) {}

func (noopStatsRepository) Snapshot(ctx context.Context) (map[string]int64, error) {
	return map[string]int64{}, nil
}
