// Package tokencache memoizes User-Agent parsing.
//
// Real traffic repeats the same few thousand User-Agent strings, so parsing
// each request from scratch wastes work. A Cache checks its tiers in order
// and only runs uatoken on a miss; concurrent misses for the same string are
// collapsed into one parse.
//
// Two tiers are provided:
//
//   - Memory: a per-process LRU with an optional lifetime.
//   - Redis: a shared tier storing JSON snapshots under a fixed-length key
//     derived from the User-Agent (a name-based UUID).
//
// # Usage
//
//	client, err := tokencache.Connect(ctx, redisCfg)
//	if err != nil {
//		return err
//	}
//	cache := tokencache.New(
//		tokencache.WithStore(tokencache.NewMemory(10_000, time.Hour)),
//		tokencache.WithStore(tokencache.NewRedis(client, tokencache.WithTTL(24*time.Hour))),
//		tokencache.WithLogger(log),
//	)
//
//	router.Use(uatoken.MiddlewareWith(cache.Parse))
//
// # Error Handling
//
// Tier failures never reach the caller. They are logged at warn level and the
// lookup falls through to the next tier or to a fresh parse.
package tokencache
