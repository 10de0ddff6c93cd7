package storage

import (
	"context"
	"errors"
	"time"

	"ecosnap/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// Redis implements the KV interface on a Redis instance. Documents are
// plain string values under their persistence keys.
type Redis struct {
	client *redis.Client
	log    *logger.Logger
}

// NewRedis connects to the Redis instance at addr and pings it to ensure
// connectivity.
func NewRedis(addr string, l *logger.Logger) (*Redis, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	const defaultTimeout = 10 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		l.Sugar().Errorf("Redis ping failed: %s", err)
		return &Redis{client: client, log: l}, err
	}

	return &Redis{client: client, log: l}, nil
}

// Get returns the stored document for key, reporting whether it existed.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		r.log.Sugar().Errorf("Redis GET %s failed: %s", key, err)
		return nil, false, err
	}
	return value, true, nil
}

// Set stores the document under key with no expiration.
func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		r.log.Sugar().Errorf("Redis SET %s failed: %s", key, err)
		return err
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.log.Sugar().Errorf("Redis DEL %s failed: %s", key, err)
		return err
	}
	return nil
}

// Close closes the Redis connection.
func (r *Redis) Close() {
	r.client.Close()
}
