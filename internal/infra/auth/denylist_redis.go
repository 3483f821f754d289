package auth

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"

	domain "github.com/BruksfildServices01/parlour-booking/internal/domain/auth"
)

const redisKeyPrefix = "velura:revoked:"

// RedisDenylist shares revocations between instances.
type RedisDenylist struct {
	client *redis.Client
}

func NewRedisDenylist(url string) (*RedisDenylist, error) {
	if url == "" {
		return nil, errors.New("redis URL is required")
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(err, "parsing redis URL")
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "connecting to redis")
	}

	return &RedisDenylist{client: client}, nil
}

func (d *RedisDenylist) Add(ctx context.Context, tokenID string, ttl time.Duration) error {
	// redis treats a zero expiration as no expiry
	if err := d.client.Set(ctx, redisKeyPrefix+tokenID, 1, ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set")
	}
	return nil
}

func (d *RedisDenylist) Contains(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, redisKeyPrefix+tokenID).Result()
	if err != nil {
		return false, errors.Wrap(err, "redis exists")
	}
	return n > 0, nil
}

func (d *RedisDenylist) Close() error {
	return d.client.Close()
}

// Compile-time check
var _ domain.Denylist = (*RedisDenylist)(nil)
