package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/uatoken/pkg/httpserver"
	"github.com/dmitrymomot/uatoken/pkg/logger"
	"github.com/dmitrymomot/uatoken/pkg/requestid"
	"github.com/dmitrymomot/uatoken/pkg/tokencache"
	"github.com/dmitrymomot/uatoken/pkg/uatoken"
)

type limits struct {
	maxBatch     int
	maxBodyBytes int64
}

type api struct {
	cache  *tokencache.Cache
	log    *slog.Logger
	limits limits
}

func newRouter(log *slog.Logger, cache *tokencache.Cache, checks map[string]httpserver.Check, l limits) http.Handler {
	a := &api{cache: cache, log: log, limits: l}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.RealIP)
	r.Use(accessLog(log))
	r.Use(middleware.Recoverer)

	r.Get("/health/live", httpserver.Liveness())
	r.Get("/health/ready", httpserver.Readiness(log, checks))

	r.Route("/v1", func(r chi.Router) {
		callerTokens := r.With(requestTokens(cache.Parse))
		callerTokens.Get("/tokens", a.getTokens)
		callerTokens.Get("/has", a.has)

		r.Post("/tokens", a.postTokens)
		r.Get("/split", a.split)
		r.Get("/stats", a.stats)
	})

	return r
}

// requestTokens parses the caller's User-Agent into the request context
// unless a "ua" query parameter names another one.
func requestTokens(parse uatoken.ParseFunc) func(http.Handler) http.Handler {
	withTokens := uatoken.MiddlewareWith(parse)
	return func(next http.Handler) http.Handler {
		parsed := withTokens(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("ua") != "" {
				next.ServeHTTP(w, r)
				return
			}
			parsed.ServeHTTP(w, r)
		})
	}
}

type tokensResponse struct {
	UserAgent string `json:"user_agent"`
	uatoken.Snapshot
}

// tokensFor returns the tokens of the "ua" query parameter, falling back to
// the caller's own User-Agent parsed by the middleware.
func (a *api) tokensFor(r *http.Request) (string, *uatoken.Tokens) {
	if ua := r.URL.Query().Get("ua"); ua != "" {
		return ua, a.cache.Parse(r.Context(), ua)
	}
	tokens, ok := uatoken.FromContext(r.Context())
	if !ok {
		tokens = a.cache.Parse(r.Context(), r.UserAgent())
	}
	return r.UserAgent(), tokens
}

func (a *api) getTokens(w http.ResponseWriter, r *http.Request) {
	ua, tokens := a.tokensFor(r)
	writeJSON(w, http.StatusOK, tokensResponse{UserAgent: ua, Snapshot: tokens.Snapshot()})
}

type batchRequest struct {
	UserAgents []string `json:"user_agents"`
}

type batchResponse struct {
	Results []tokensResponse `json:"results"`
}

func (a *api) postTokens(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, a.limits.maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(req.UserAgents) == 0 {
		writeError(w, http.StatusBadRequest, "user_agents must not be empty")
		return
	}
	if a.limits.maxBatch > 0 && len(req.UserAgents) > a.limits.maxBatch {
		writeError(w, http.StatusBadRequest, "too many user_agents")
		return
	}

	resp := batchResponse{Results: make([]tokensResponse, 0, len(req.UserAgents))}
	for _, ua := range req.UserAgents {
		tokens := a.cache.Parse(r.Context(), ua)
		resp.Results = append(resp.Results, tokensResponse{UserAgent: ua, Snapshot: tokens.Snapshot()})
	}
	writeJSON(w, http.StatusOK, resp)
}

type hasResponse struct {
	Name       string `json:"name"`
	Constraint string `json:"constraint,omitempty"`
	Has        bool   `json:"has"`
	Version    string `json:"version,omitempty"`
}

func (a *api) has(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := q.Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	constraint := q.Get("constraint")

	_, tokens := a.tokensFor(r)
	resp := hasResponse{Name: name, Constraint: constraint, Version: tokens.Version(name)}
	if constraint == "" {
		resp.Has = tokens.Has(name)
	} else {
		resp.Has = tokens.Has(name, constraint)
	}
	writeJSON(w, http.StatusOK, resp)
}

type splitPart struct {
	Part   string   `json:"part"`
	Tokens []string `json:"tokens"`
}

type splitResponse struct {
	UserAgent string      `json:"user_agent"`
	Parts     []splitPart `json:"parts"`
}

func (a *api) split(w http.ResponseWriter, r *http.Request) {
	ua := r.URL.Query().Get("ua")
	if ua == "" {
		ua = r.UserAgent()
	}
	parts := uatoken.Split(ua)
	resp := splitResponse{UserAgent: ua, Parts: make([]splitPart, 0, len(parts))}
	for _, p := range parts {
		resp.Parts = append(resp.Parts, splitPart{Part: p, Tokens: uatoken.Tokenize(p)})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) stats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, a.cache.Stats())
}

func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			log.DebugContext(r.Context(), "http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				logger.Duration(time.Since(start)),
				logger.UserAgent(r.UserAgent()),
			)
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
