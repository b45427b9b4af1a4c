// Command uatokend serves User-Agent tokenization over HTTP.
//
//	GET  /v1/tokens?ua=...                  tokens of ua, or of the caller's User-Agent
//	POST /v1/tokens {"user_agents": [...]}  tokens of several User-Agents
//	GET  /v1/has?name=android&constraint=>=4.0[&ua=...]
//	GET  /v1/split?ua=...                   parts and word tokens, for debugging rules
//	GET  /v1/stats                          cache hit and miss counts
//	GET  /health/live, /health/ready
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/uatoken/pkg/config"
	"github.com/dmitrymomot/uatoken/pkg/httpserver"
	"github.com/dmitrymomot/uatoken/pkg/logger"
	"github.com/dmitrymomot/uatoken/pkg/requestid"
	"github.com/dmitrymomot/uatoken/pkg/tokencache"
	"github.com/dmitrymomot/uatoken/pkg/uatoken"
)

const serviceName = "uatokend"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load[Config]()
	if err != nil {
		return err
	}

	logOpts, err := cfg.Log.Options()
	if err != nil {
		return err
	}
	log := logger.New(append(logOpts,
		logger.WithService(serviceName, cfg.Version),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)...)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rules, err := loadRules(cfg.RulesFile)
	if err != nil {
		return err
	}

	cacheOpts := []tokencache.Option{
		tokencache.WithRules(rules),
		tokencache.WithLogger(log),
		tokencache.WithStore(tokencache.NewMemory(cfg.CacheSize, cfg.CacheTTL)),
	}
	checks := map[string]httpserver.Check{}

	if cfg.Redis.ConnectionURL != "" {
		client, err := tokencache.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()

		cacheOpts = append(cacheOpts, tokencache.WithStore(tokencache.NewRedis(client,
			tokencache.WithKeyPrefix(cfg.Redis.KeyPrefix),
			tokencache.WithTTL(cfg.Redis.TTL),
		)))
		checks["redis"] = tokencache.Healthcheck(client)
		log.InfoContext(ctx, "redis cache tier enabled")
	}

	cache := tokencache.New(cacheOpts...)
	router := newRouter(log, cache, checks, limits{
		maxBatch:     cfg.MaxBatch,
		maxBodyBytes: cfg.MaxBodyBytes,
	})

	srv := httpserver.New(cfg.HTTP, log)
	return srv.Run(ctx, router)
}

func loadRules(path string) (*uatoken.Rules, error) {
	if path == "" {
		return uatoken.DefaultRules(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(uatoken.ErrRulesDecode, err)
	}
	defer f.Close()

	rules, err := uatoken.LoadRules(f)
	if err != nil {
		return nil, fmt.Errorf("rules file %s: %w", path, err)
	}
	slog.Info("custom token rules loaded", slog.String("path", path))
	return rules, nil
}
