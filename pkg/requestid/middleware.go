package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

// Header is the request and response header carrying the ID.
const Header = "X-Request-ID"

const maxIDLength = 128

var validID = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type config struct {
	header   string
	generate func() string
}

// Option configures the middleware built by New.
type Option func(*config)

// WithHeader reads and writes the ID under a different header name.
func WithHeader(name string) Option {
	if name == "" {
		panic("requestid: empty header name")
	}
	return func(c *config) { c.header = name }
}

// WithGenerator replaces the UUID generator used for requests without a
// usable ID.
func WithGenerator(fn func() string) Option {
	if fn == nil {
		panic("requestid: nil generator")
	}
	return func(c *config) { c.generate = fn }
}

// New builds the request ID middleware.
func New(opts ...Option) func(http.Handler) http.Handler {
	cfg := config{
		header:   Header,
		generate: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(cfg.header)
			if !Valid(id) {
				id = cfg.generate()
			}
			w.Header().Set(cfg.header, id)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
		})
	}
}

// Middleware is New with the default options.
func Middleware(next http.Handler) http.Handler {
	return New()(next)
}

// Valid reports whether a client-supplied ID can be reused: non-empty, at
// most 128 bytes, letters, digits, '-' and '_' only.
func Valid(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	return validID.MatchString(id)
}
