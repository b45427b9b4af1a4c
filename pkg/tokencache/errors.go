package tokencache

import "errors"

var (
	ErrCacheRead                    = errors.New("failed to read tokens from cache")
	ErrCacheWrite                   = errors.New("failed to write tokens to cache")
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("redis did not become ready within the given time period")
	ErrHealthcheckFailed            = errors.New("redis healthcheck failed")
)
