package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/JP-maker/gamegauge-api/internal/logger"
	"github.com/redis/go-redis/v9"
)

// ResetThrottleRepository limits password reset requests per email using Redis keys with a TTL.
type ResetThrottleRepository struct {
	client *redis.Client
	exp    time.Duration // window during which a second request is refused
}

func NewResetThrottleRepository(client *redis.Client, expiration time.Duration) *ResetThrottleRepository {
	return &ResetThrottleRepository{
		client: client,
		exp:    expiration,
	}
}

// Acquire reports whether a reset request for email may proceed now.
// The first call in a window wins; later calls return false until the key expires.
func (r *ResetThrottleRepository) Acquire(ctx context.Context, email string) (bool, error) {
	key := fmt.Sprintf("reset_throttle:%s", strings.ToLower(email))
	ok, err := r.client.SetNX(ctx, key, time.Now().Unix(), r.exp).Result()

	logger.FromContext(ctx).Infow("redis setnx",
		"key", key,
		"result", ok,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return ok, nil
}
