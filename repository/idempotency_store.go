package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisIdempotencyStore records checkout reservations keyed by payment
// intent id. It is a fast-path guard in front of the unique index on
// orders.payment_intent_id, which remains the durable one.
type RedisIdempotencyStore struct {
	client *redis.Client
}

func NewRedisIdempotencyStore(client *redis.Client) *RedisIdempotencyStore {
	return &RedisIdempotencyStore{client: client}
}

func (s *RedisIdempotencyStore) key(paymentIntentID string) string {
	return "idem:order:" + paymentIntentID
}

// Reserve claims the payment intent id for the calling checkout. It
// returns false when another checkout already holds the reservation.
func (s *RedisIdempotencyStore) Reserve(ctx context.Context, paymentIntentID string, ttl time.Duration) (bool, error) {
	return s.client.SetNX(ctx, s.key(paymentIntentID), "pending", ttl).Result()
}

// Release drops the reservation so a failed checkout can be retried.
func (s *RedisIdempotencyStore) Release(ctx context.Context, paymentIntentID string) error {
	return s.client.Del(ctx, s.key(paymentIntentID)).Err()
}
