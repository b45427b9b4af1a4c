package tokencache_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uatoken/pkg/tokencache"
	"github.com/dmitrymomot/uatoken/pkg/uatoken"
)

const androidUA = "Mozilla/5.0 (Linux; U; Android 2.3.5; en-us) AppleWebKit/533.1 (KHTML, like Gecko) Version/4.0 Mobile Safari/533.1"

// MockRedisClient is a mock implementation of the RedisClient interface
type MockRedisClient struct {
	mock.Mock
}

func (m *MockRedisClient) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	return args.Get(0).(*redis.StringCmd)
}

func (m *MockRedisClient) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)
	return args.Get(0).(*redis.StatusCmd)
}

func TestRedis_Key(t *testing.T) {
	t.Parallel()

	r := tokencache.NewRedis(&MockRedisClient{})

	k1 := r.Key(androidUA)
	assert.True(t, strings.HasPrefix(k1, tokencache.DefaultKeyPrefix))
	assert.Len(t, k1, len(tokencache.DefaultKeyPrefix)+36)
	assert.Equal(t, k1, r.Key(androidUA), "keys are deterministic")
	assert.NotEqual(t, k1, r.Key(androidUA+" "))

	custom := tokencache.NewRedis(&MockRedisClient{}, tokencache.WithKeyPrefix("ua:"))
	assert.True(t, strings.HasPrefix(custom.Key(androidUA), "ua:"))
}

func TestRedis_Get(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("hit", func(t *testing.T) {
		t.Parallel()
		client := &MockRedisClient{}
		r := tokencache.NewRedis(client)

		payload := `{"tokens":{"android":"2.3.5","linux":true},"security":"U","localization":"en-us"}`
		client.On("Get", ctx, r.Key(androidUA)).Return(redis.NewStringResult(payload, nil))

		tokens, ok, err := r.Get(ctx, androidUA)
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, tokens.Has("android", ">=2.3"))
		assert.True(t, tokens.Has("linux"))
		assert.Equal(t, uatoken.SecurityStrong, tokens.Security())
		assert.Equal(t, "en-us", tokens.Localization())
		client.AssertExpectations(t)
	})

	t.Run("miss", func(t *testing.T) {
		t.Parallel()
		client := &MockRedisClient{}
		r := tokencache.NewRedis(client)
		client.On("Get", ctx, mock.Anything).Return(redis.NewStringResult("", redis.Nil))

		tokens, ok, err := r.Get(ctx, androidUA)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, tokens)
	})

	t.Run("connection error", func(t *testing.T) {
		t.Parallel()
		client := &MockRedisClient{}
		r := tokencache.NewRedis(client)
		client.On("Get", ctx, mock.Anything).Return(redis.NewStringResult("", errors.New("connection refused")))

		_, ok, err := r.Get(ctx, androidUA)
		assert.False(t, ok)
		assert.ErrorIs(t, err, tokencache.ErrCacheRead)
	})

	t.Run("corrupt payload", func(t *testing.T) {
		t.Parallel()
		client := &MockRedisClient{}
		r := tokencache.NewRedis(client)
		client.On("Get", ctx, mock.Anything).Return(redis.NewStringResult("not json", nil))

		_, ok, err := r.Get(ctx, androidUA)
		assert.False(t, ok)
		assert.ErrorIs(t, err, tokencache.ErrCacheRead)
		assert.ErrorIs(t, err, uatoken.ErrSnapshotDecode)
	})
}

func TestRedis_Set(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("stores snapshot with ttl", func(t *testing.T) {
		t.Parallel()
		client := &MockRedisClient{}
		r := tokencache.NewRedis(client, tokencache.WithTTL(time.Hour))
		tokens := uatoken.Parse(androidUA)

		client.On("Set", ctx, r.Key(androidUA), mock.MatchedBy(func(v []byte) bool {
			decoded, err := uatoken.DecodeSnapshot(v)
			return err == nil && decoded.Has("android", "2.3.5") && decoded.Localization() == "en-us"
		}), time.Hour).Return(redis.NewStatusResult("OK", nil))

		require.NoError(t, r.Set(ctx, androidUA, tokens))
		client.AssertExpectations(t)
	})

	t.Run("write error", func(t *testing.T) {
		t.Parallel()
		client := &MockRedisClient{}
		r := tokencache.NewRedis(client)
		client.On("Set", ctx, mock.Anything, mock.Anything, time.Duration(0)).
			Return(redis.NewStatusResult("", errors.New("READONLY")))

		err := r.Set(ctx, androidUA, uatoken.Parse(androidUA))
		assert.ErrorIs(t, err, tokencache.ErrCacheWrite)
	})

	t.Run("nil tokens are skipped", func(t *testing.T) {
		t.Parallel()
		client := &MockRedisClient{}
		r := tokencache.NewRedis(client)

		require.NoError(t, r.Set(ctx, androidUA, nil))
		client.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestNewRedis_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { tokencache.NewRedis(nil) })
	assert.Panics(t, func() { tokencache.WithTTL(-time.Second) })
}

func TestConnect_InvalidURL(t *testing.T) {
	t.Parallel()

	_, err := tokencache.Connect(context.Background(), tokencache.RedisConfig{
		ConnectionURL: "://bad",
		RetryAttempts: 1,
	})
	assert.ErrorIs(t, err, tokencache.ErrFailedToParseRedisConnString)
}
