package tokencache

import (
	"context"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/uatoken/pkg/logger"
	"github.com/dmitrymomot/uatoken/pkg/uatoken"
)

// Store is one tier of the cache.
type Store interface {
	// Name identifies the tier in logs.
	Name() string
	// Get returns ok=false with a nil error on a miss.
	Get(ctx context.Context, ua string) (*uatoken.Tokens, bool, error)
	Set(ctx context.Context, ua string, tokens *uatoken.Tokens) error
}

// Cache memoizes uatoken parsing across one or more tiers, checked in order.
// A hit in a later tier is copied into the earlier ones. Tier failures are
// logged and treated as misses, so Parse always returns tokens.
type Cache struct {
	tiers  []Store
	rules  *uatoken.Rules
	log    *slog.Logger
	group  singleflight.Group
	hits   atomic.Uint64
	misses atomic.Uint64
}

// Option configures a Cache.
type Option func(*Cache)

// WithStore appends a tier. Tiers are consulted in the order they are added.
func WithStore(s Store) Option {
	return func(c *Cache) {
		if s != nil {
			c.tiers = append(c.tiers, s)
		}
	}
}

// WithRules sets the rule set used on a miss.
func WithRules(r *uatoken.Rules) Option {
	return func(c *Cache) {
		if r != nil {
			c.rules = r
		}
	}
}

// WithLogger sets the logger used to report tier failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *Cache) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a cache. Without WithStore it uses a single Memory tier of
// DefaultMemorySize.
func New(opts ...Option) *Cache {
	c := &Cache{
		rules: uatoken.DefaultRules(),
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if len(c.tiers) == 0 {
		c.tiers = []Store{NewMemory(DefaultMemorySize, 0)}
	}
	c.log = c.log.With(logger.Component("tokencache"))
	return c
}

// Parse returns the tokens for a User-Agent, parsing it at most once per
// concurrent burst of identical requests. Its signature matches
// uatoken.ParseFunc.
func (c *Cache) Parse(ctx context.Context, ua string) *uatoken.Tokens {
	if ua == "" {
		return c.rules.Parse(ua)
	}

	for i, tier := range c.tiers {
		tokens, ok, err := tier.Get(ctx, ua)
		if err != nil {
			c.log.WarnContext(ctx, "cache tier read failed",
				logger.CacheTier(tier.Name()),
				logger.UserAgent(ua),
				logger.Error(err),
			)
			continue
		}
		if ok {
			c.hits.Add(1)
			c.fill(ctx, c.tiers[:i], ua, tokens)
			return tokens
		}
	}

	c.misses.Add(1)
	v, _, _ := c.group.Do(ua, func() (any, error) {
		tokens := c.rules.Parse(ua)
		c.fill(ctx, c.tiers, ua, tokens)
		return tokens, nil
	})
	return v.(*uatoken.Tokens)
}

func (c *Cache) fill(ctx context.Context, tiers []Store, ua string, tokens *uatoken.Tokens) {
	for _, tier := range tiers {
		if err := tier.Set(ctx, ua, tokens); err != nil {
			c.log.WarnContext(ctx, "cache tier write failed",
				logger.CacheTier(tier.Name()),
				logger.UserAgent(ua),
				logger.Error(err),
			)
		}
	}
}

// Stats is a snapshot of the cache counters.
type Stats struct {
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
}

// Stats returns the hit and miss counts since the cache was created.
func (c *Cache) Stats() Stats {
	return Stats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}
