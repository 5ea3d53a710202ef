// internal/storage/redis.go
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisClient is the part of *redis.Client the store needs.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Close() error
}

type RedisOptions struct {
	Addr       string
	Password   string
	DB         int
	MaxRetries int
}

// RedisStore keeps the document under a plain redis string key without TTL.
type RedisStore struct {
	client     redisClient
	maxRetries int
	backoff    time.Duration
}

func NewRedisStore(opts RedisOptions) *RedisStore {
	// withRetry owns retries, so the client's own are disabled.
	client := redis.NewClient(&redis.Options{
		Addr:       opts.Addr,
		Password:   opts.Password,
		DB:         opts.DB,
		MaxRetries: -1,
	})
	return newRedisStore(client, opts.MaxRetries)
}

func newRedisStore(client redisClient, maxRetries int) *RedisStore {
	return &RedisStore{
		client:     client,
		maxRetries: maxRetries,
		backoff:    100 * time.Millisecond,
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.withRetry(ctx, func() error {
		v, err := s.client.Get(ctx, key).Result()
		if err != nil {
			return err
		}
		value = v
		return nil
	})
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.withRetry(ctx, func() error {
		return s.client.Set(ctx, key, value, 0).Err()
	})
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

// withRetry retries connection level failures with exponential backoff.
func (s *RedisStore) withRetry(ctx context.Context, operation func() error) error {
	var lastErr error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		err := operation()
		if err == nil || !isRetryableError(err) {
			return err
		}
		lastErr = err

		if attempt == s.maxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.backoff * time.Duration(1<<attempt)):
		}
	}
	return fmt.Errorf("redis operation failed after %d retries: %w", s.maxRetries, lastErr)
}

func isRetryableError(err error) bool {
	if err == nil || errors.Is(err, redis.Nil) {
		return false
	}

	errStr := err.Error()
	retryableErrors := []string{
		"connection refused",
		"connection reset",
		"timeout",
		"broken pipe",
		"no such host",
		"network is unreachable",
	}
	for _, retryableErr := range retryableErrors {
		if strings.Contains(errStr, retryableErr) {
			return true
		}
	}
	return false
}
