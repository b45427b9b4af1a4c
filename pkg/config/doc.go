// Package config loads service configuration from the environment.
//
// It combines github.com/joho/godotenv, which reads optional .env files, with
// github.com/caarlos0/env/v11, which maps variables onto struct fields through
// `env` and `envDefault` tags. Values set in the process environment always
// take precedence over dotenv files.
//
//	type Config struct {
//		AppEnv    string        `env:"APP_ENV" envDefault:"development"`
//		CacheSize int           `env:"UATOKEN_CACHE_SIZE" envDefault:"10000"`
//		CacheTTL  time.Duration `env:"UATOKEN_CACHE_TTL" envDefault:"1h"`
//	}
//
//	cfg := config.MustLoad[Config]()
//
// Failures wrap ErrParsingConfig or ErrLoadingEnvFile.
package config
