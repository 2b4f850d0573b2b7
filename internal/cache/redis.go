// Package cache fronts the read-mostly aggregates with a short-TTL redis
// cache. Misses and redis failures degrade to the store; invalidation is
// explicit and runs after the write transaction commits.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type Redis struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func New(addr, password string, db int, ttl time.Duration, log logger.Logger) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Redis{client: client, ttl: ttl, logger: log}, nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}

func eventKey(eventID string) string  { return "event:" + eventID }
func financeKey(userID string) string { return "finance:" + userID }

func (r *Redis) GetEvent(ctx context.Context, eventID string) (*domain.EventDetails, bool) {
	var d domain.EventDetails
	if !r.get(ctx, eventKey(eventID), &d) {
		return nil, false
	}
	return &d, true
}

func (r *Redis) SetEvent(ctx context.Context, d *domain.EventDetails) {
	r.set(ctx, eventKey(d.Event.ID), d)
}

func (r *Redis) InvalidateEvent(ctx context.Context, eventID string) {
	r.invalidate(ctx, eventKey(eventID))
}

func (r *Redis) GetFinance(ctx context.Context, userID string) (*domain.Finance, bool) {
	var f domain.Finance
	if !r.get(ctx, financeKey(userID), &f) {
		return nil, false
	}
	return &f, true
}

func (r *Redis) SetFinance(ctx context.Context, userID string, f *domain.Finance) {
	r.set(ctx, financeKey(userID), f)
}

func (r *Redis) InvalidateFinance(ctx context.Context, userID string) {
	r.invalidate(ctx, financeKey(userID))
}

func (r *Redis) get(ctx context.Context, key string, dest any) bool {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.logger.Error("cache get failed",
				logger.String("key", key),
				logger.String("error", err.Error()),
			)
		}
		return false
	}

	if err = json.Unmarshal(raw, dest); err != nil {
		r.logger.Error("cache entry corrupted",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
		return false
	}

	return true
}

func (r *Redis) set(ctx context.Context, key string, val any) {
	raw, err := json.Marshal(val)
	if err != nil {
		r.logger.Error("cache marshal failed",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
		return
	}

	if err = r.client.Set(ctx, key, raw, r.ttl).Err(); err != nil {
		r.logger.Error("cache set failed",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	}
}

func (r *Redis) invalidate(ctx context.Context, key string) {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("cache invalidate failed",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	}
}
