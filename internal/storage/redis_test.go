package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	values   map[string]string
	failures []error
	calls    int
	closed   bool
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}}
}

func (f *fakeRedis) nextFailure() error {
	f.calls++
	if len(f.failures) == 0 {
		return nil
	}
	err := f.failures[0]
	f.failures = f.failures[1:]
	return err
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if err := f.nextFailure(); err != nil {
		return redis.NewStringResult("", err)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if err := f.nextFailure(); err != nil {
		return redis.NewStatusResult("", err)
	}
	f.values[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Close() error {
	f.closed = true
	return nil
}

func newTestRedisStore(client *fakeRedis, retries int) *RedisStore {
	s := newRedisStore(client, retries)
	s.backoff = time.Millisecond
	return s
}

func TestRedisStoreGetSet(t *testing.T) {
	client := newFakeRedis()
	s := newTestRedisStore(client, 2)
	ctx := context.Background()

	_, err := s.Get(ctx, "skuGenerator")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "skuGenerator", []byte(`{"products":[]}`)))
	got, err := s.Get(ctx, "skuGenerator")
	require.NoError(t, err)
	assert.Equal(t, `{"products":[]}`, string(got))

	require.NoError(t, s.Close())
	assert.True(t, client.closed)
}

func TestRedisStoreRetriesConnectionErrors(t *testing.T) {
	client := newFakeRedis()
	client.failures = []error{errors.New("dial tcp: connection refused"), errors.New("i/o timeout")}
	s := newTestRedisStore(client, 3)

	require.NoError(t, s.Set(context.Background(), "k", []byte("v")))
	assert.Equal(t, 3, client.calls)
	assert.Equal(t, "v", client.values["k"])
}

func TestRedisStoreGivesUpAfterMaxRetries(t *testing.T) {
	client := newFakeRedis()
	client.failures = []error{
		errors.New("connection reset"),
		errors.New("connection reset"),
		errors.New("connection reset"),
	}
	s := newTestRedisStore(client, 2)

	err := s.Set(context.Background(), "k", []byte("v"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 retries")
	assert.Equal(t, 3, client.calls)
}

func TestRedisStoreDoesNotRetryLogicalErrors(t *testing.T) {
	client := newFakeRedis()
	client.failures = []error{errBoom}
	s := newTestRedisStore(client, 3)

	_, err := s.Get(context.Background(), "k")
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, client.calls)
}

func TestNewRedisStoreDisablesClientRetries(t *testing.T) {
	s := NewRedisStore(RedisOptions{Addr: "localhost:6379", MaxRetries: 4})
	defer s.Close()

	client, ok := s.client.(*redis.Client)
	require.True(t, ok)
	// go-redis turns -1 into 0 retries; leaving it unset would mean 3
	assert.Equal(t, 0, client.Options().MaxRetries)
	assert.Equal(t, 4, s.maxRetries)
}
