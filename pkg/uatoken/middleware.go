package uatoken

import (
	"context"
	"net/http"
)

// ParseFunc resolves a User-Agent string into tokens. It lets middleware use
// a caching parser instead of Parse.
type ParseFunc func(ctx context.Context, ua string) *Tokens

// Middleware parses the request's User-Agent with the default rules and
// stores the result in the request context.
func Middleware(next http.Handler) http.Handler {
	return MiddlewareWith(func(_ context.Context, ua string) *Tokens {
		return Parse(ua)
	})(next)
}

// MiddlewareWith is like Middleware but resolves tokens through parse.
func MiddlewareWith(parse ParseFunc) func(http.Handler) http.Handler {
	if parse == nil {
		panic("MiddlewareWith: nil parse func")
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			tokens := parse(ctx, r.UserAgent())
			next.ServeHTTP(w, r.WithContext(WithContext(ctx, tokens)))
		})
	}
}
