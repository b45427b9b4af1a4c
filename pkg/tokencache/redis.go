package tokencache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/uatoken/pkg/uatoken"
)

// DefaultKeyPrefix is prepended to every Redis key.
const DefaultKeyPrefix = "uatoken:"

// keyNamespace scopes the name-based UUIDs used as Redis keys.
var keyNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/dmitrymomot/uatoken"))

// RedisClient is the subset of the go-redis API used by the Redis tier.
// *redis.Client, *redis.ClusterClient and redis.UniversalClient satisfy it.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// Redis is a shared tier storing JSON snapshots of parsed tokens.
type Redis struct {
	client RedisClient
	prefix string
	ttl    time.Duration
}

// RedisOption configures the Redis tier.
type RedisOption func(*Redis)

// WithKeyPrefix overrides DefaultKeyPrefix.
func WithKeyPrefix(prefix string) RedisOption {
	return func(r *Redis) { r.prefix = prefix }
}

// WithTTL sets the expiration of stored entries. Zero means no expiration.
func WithTTL(ttl time.Duration) RedisOption {
	if ttl < 0 {
		panic("tokencache: ttl must not be negative")
	}
	return func(r *Redis) { r.ttl = ttl }
}

// NewRedis wraps a go-redis client as a cache tier.
func NewRedis(client RedisClient, opts ...RedisOption) *Redis {
	if client == nil {
		panic("tokencache: nil redis client")
	}
	r := &Redis{client: client, prefix: DefaultKeyPrefix}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Redis) Name() string { return "redis" }

// Key returns the Redis key for a User-Agent. Keys have a fixed length
// regardless of the User-Agent size.
func (r *Redis) Key(ua string) string {
	return r.prefix + uuid.NewSHA1(keyNamespace, []byte(ua)).String()
}

// Get returns ok=false without an error when the key does not exist.
func (r *Redis) Get(ctx context.Context, ua string) (*uatoken.Tokens, bool, error) {
	data, err := r.client.Get(ctx, r.Key(ua)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Join(ErrCacheRead, err)
	}

	tokens, err := uatoken.DecodeSnapshot(data)
	if err != nil {
		return nil, false, errors.Join(ErrCacheRead, err)
	}
	return tokens, true, nil
}

func (r *Redis) Set(ctx context.Context, ua string, tokens *uatoken.Tokens) error {
	if tokens == nil {
		return nil
	}
	data, err := json.Marshal(tokens)
	if err != nil {
		return errors.Join(ErrCacheWrite, err)
	}
	if err := r.client.Set(ctx, r.Key(ua), data, r.ttl).Err(); err != nil {
		return errors.Join(ErrCacheWrite, err)
	}
	return nil
}
