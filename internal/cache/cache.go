package cache

//go:generate mockgen -source=cache.go -destination=mock_cache.go -package=cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/GlebRadaev/coinkids/internal/domain"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Store is the subset of *redis.Client used here.
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type Source interface {
	ListActiveByType(ctx context.Context, achievementType domain.AchievementType) ([]domain.Achievement, error)
}

// AchievementCatalog is a read-through cache of active achievements per type.
// Redis errors fall back to the source.
type AchievementCatalog struct {
	source Source
	store  Store
	ttl    time.Duration
}

func NewAchievementCatalog(source Source, store Store, ttl time.Duration) *AchievementCatalog {
	return &AchievementCatalog{source: source, store: store, ttl: ttl}
}

const keyPrefix = "coinkids:achievements:"

var achievementTypes = []domain.AchievementType{
	domain.AchievementWalletCreated,
	domain.AchievementSavingGoalReached,
	domain.AchievementSpendingTracked,
	domain.AchievementLessonComplete,
	domain.AchievementMilestone,
}

func key(t domain.AchievementType) string {
	return keyPrefix + string(t)
}

func (c *AchievementCatalog) ListActiveByType(ctx context.Context, achievementType domain.AchievementType) ([]domain.Achievement, error) {
	k := key(achievementType)
	raw, err := c.store.Get(ctx, k).Bytes()
	switch {
	case err == nil:
		var list []domain.Achievement
		if err := json.Unmarshal(raw, &list); err == nil {
			return list, nil
		}
		zap.L().Warn("dropping corrupt cache entry", zap.String("key", k))
	case !errors.Is(err, redis.Nil):
		zap.L().Warn("cache read failed", zap.String("key", k), zap.Error(err))
	}

	list, err := c.source.ListActiveByType(ctx, achievementType)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(list)
	if err != nil {
		zap.L().Warn("cache encode failed", zap.String("key", k), zap.Error(err))
		return list, nil
	}
	if err := c.store.Set(ctx, k, b, c.ttl).Err(); err != nil {
		zap.L().Warn("cache write failed", zap.String("key", k), zap.Error(err))
	}
	return list, nil
}

// Invalidate drops every cached achievement list.
func (c *AchievementCatalog) Invalidate(ctx context.Context) error {
	keys := make([]string, 0, len(achievementTypes))
	for _, t := range achievementTypes {
		keys = append(keys, key(t))
	}
	return c.store.Del(ctx, keys...).Err()
}
