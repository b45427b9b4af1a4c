package uatoken

import "context"

type contextKey struct{}

// WithContext stores parsed tokens in the context.
func WithContext(ctx context.Context, t *Tokens) context.Context {
	return context.WithValue(ctx, contextKey{}, t)
}

// FromContext returns the tokens stored by WithContext or Middleware.
func FromContext(ctx context.Context) (*Tokens, bool) {
	if ctx == nil {
		return nil, false
	}
	t, ok := ctx.Value(contextKey{}).(*Tokens)
	return t, ok && t != nil
}
