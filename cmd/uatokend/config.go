package main

import (
	"time"

	"github.com/dmitrymomot/uatoken/pkg/httpserver"
	"github.com/dmitrymomot/uatoken/pkg/logger"
	"github.com/dmitrymomot/uatoken/pkg/tokencache"
)

// Config is the uatokend configuration, read from the environment and an
// optional .env file.
type Config struct {
	Version string `env:"APP_VERSION"`

	Log   logger.Config
	HTTP  httpserver.Config
	Redis tokencache.RedisConfig

	CacheSize int           `env:"UATOKEN_CACHE_SIZE" envDefault:"10000"`
	CacheTTL  time.Duration `env:"UATOKEN_CACHE_TTL" envDefault:"1h"`
	// RulesFile is an optional YAML rule document; see uatoken.LoadRules.
	RulesFile string `env:"UATOKEN_RULES_FILE"`
	MaxBatch  int    `env:"UATOKEN_MAX_BATCH" envDefault:"100"`
	// MaxBodyBytes bounds POST request bodies.
	MaxBodyBytes int64 `env:"UATOKEN_MAX_BODY_BYTES" envDefault:"1048576"`
}
