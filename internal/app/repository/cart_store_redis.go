package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pehchaan/storefront-backend/internal/app/model"
	"github.com/pehchaan/storefront-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// redisCartStore keeps one key per cart. Retention is enforced by key TTL,
// so PurgeStale has nothing to do.
type redisCartStore struct {
	client    *redis.Client
	retention time.Duration
}

func NewRedisCartStore(client *redis.Client, retention time.Duration) CartStore {
	return &redisCartStore{
		client:    client,
		retention: retention,
	}
}

func cartKey(cartID string) string {
	return fmt.Sprintf("cart:%s", cartID)
}

func (s *redisCartStore) Load(ctx context.Context, cartID string) (model.Cart, error) {
	payload, err := s.client.Get(ctx, cartKey(cartID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.Cart{}, nil
		}
		logger.Error("Failed to load cart snapshot from Redis", err, map[string]interface{}{
			"cart_id": cartID,
		})
		return nil, err
	}

	return decodeCart(cartID, payload), nil
}

func (s *redisCartStore) Save(ctx context.Context, cartID string, cart model.Cart) error {
	payload, err := encodeCart(cart)
	if err != nil {
		logger.Error("Failed to encode cart snapshot", err, map[string]interface{}{
			"cart_id": cartID,
		})
		return err
	}

	if err := s.client.Set(ctx, cartKey(cartID), payload, s.retention).Err(); err != nil {
		logger.Error("Failed to save cart snapshot to Redis", err, map[string]interface{}{
			"cart_id": cartID,
		})
		return err
	}

	logger.Debug("Cart snapshot saved to Redis", map[string]interface{}{
		"cart_id": cartID,
		"items":   len(cart),
	})
	return nil
}

func (s *redisCartStore) Clear(ctx context.Context, cartID string) error {
	if err := s.client.Del(ctx, cartKey(cartID)).Err(); err != nil {
		logger.Error("Failed to clear cart snapshot in Redis", err, map[string]interface{}{
			"cart_id": cartID,
		})
		return err
	}
	return nil
}

func (s *redisCartStore) PurgeStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	// Keys expire on their own.
	return 0, nil
}
