package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Deployment environments recognized by WithEnvironment.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Format is the record encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ErrInvalidConfig is returned by Config.Options for an unknown level or
// format.
var ErrInvalidConfig = errors.New("invalid logger configuration")

// preset is what an environment implies when no explicit level or format
// was given.
type preset struct {
	level     slog.Level
	format    Format
	addSource bool
}

var presets = map[string]preset{
	EnvDevelopment: {level: slog.LevelDebug, format: FormatText, addSource: true},
	EnvStaging:     {level: slog.LevelInfo, format: FormatJSON},
	EnvProduction:  {level: slog.LevelInfo, format: FormatJSON},
}

var envAliases = map[string]string{
	"dev":   EnvDevelopment,
	"local": EnvDevelopment,
	"stage": EnvStaging,
	"prod":  EnvProduction,
}

// NormalizeEnv maps an APP_ENV value to one of the Env constants. Aliases
// such as "prod" are resolved and anything unknown is development.
func NormalizeEnv(env string) string {
	env = strings.ToLower(strings.TrimSpace(env))
	if _, ok := presets[env]; ok {
		return env
	}
	if canonical, ok := envAliases[env]; ok {
		return canonical
	}
	return EnvDevelopment
}

// Config is the logging part of a service configuration. Empty Level and
// Format defer to the environment preset.
type Config struct {
	Env    string `env:"APP_ENV" envDefault:"development"`
	Level  string `env:"LOG_LEVEL"`
	Format string `env:"LOG_FORMAT"`
}

// Options converts cfg into factory options.
func (cfg Config) Options() ([]Option, error) {
	opts := []Option{WithEnvironment(cfg.Env)}

	if cfg.Level != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
		opts = append(opts, WithLevel(level))
	}

	if cfg.Format != "" {
		f := Format(strings.ToLower(cfg.Format))
		if f != FormatJSON && f != FormatText {
			return nil, errors.Join(ErrInvalidConfig, fmt.Errorf("log format %q", cfg.Format))
		}
		opts = append(opts, WithFormat(f))
	}

	return opts, nil
}

type config struct {
	env        string
	level      *slog.Level
	format     Format
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
}

// Option configures New.
type Option func(*config)

// WithEnvironment selects the preset for env and tags records with it.
func WithEnvironment(env string) Option {
	return func(c *config) { c.env = NormalizeEnv(env) }
}

// WithService tags every record with the service name and, when set, its
// version.
func WithService(name, version string) Option {
	return func(c *config) {
		if name != "" {
			c.attrs = append(c.attrs, slog.String("service", name))
		}
		if version != "" {
			c.attrs = append(c.attrs, slog.String("version", version))
		}
	}
}

// WithLevel overrides the preset level.
func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = &l }
}

// WithFormat overrides the preset format. It panics on anything other than
// FormatJSON or FormatText.
func WithFormat(f Format) Option {
	if f != FormatJSON && f != FormatText {
		panic(fmt.Errorf("invalid log format %q", f))
	}
	return func(c *config) { c.format = f }
}

// WithOutput sets the destination. Nil is ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithContextExtractors registers functions that add attributes from the
// logging context. Nil extractors are ignored.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

// New builds a logger. Without options it writes JSON at info level to
// stdout, the production preset, and adds no environment attribute.
func New(opts ...Option) *slog.Logger {
	cfg := &config{output: os.Stdout}
	for _, opt := range opts {
		opt(cfg)
	}

	p := presets[EnvProduction]
	if cfg.env != "" {
		p = presets[cfg.env]
	}
	handlerOpts := &slog.HandlerOptions{Level: p.level, AddSource: p.addSource}
	if cfg.level != nil {
		handlerOpts.Level = *cfg.level
	}
	format := p.format
	if cfg.format != "" {
		format = cfg.format
	}

	var handler slog.Handler
	if format == FormatText {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}

	attrs := cfg.attrs
	if cfg.env != "" {
		attrs = append([]slog.Attr{slog.String("env", cfg.env)}, attrs...)
	}
	if len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}

	return slog.New(NewContextHandler(handler, cfg.extractors...))
}

// SetAsDefault installs l as the slog default logger.
func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}
