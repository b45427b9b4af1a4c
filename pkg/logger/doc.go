// Package logger builds slog loggers for the uatoken service and defines the
// attribute helpers used across the repository.
//
// New creates a *slog.Logger from Option values. WithEnvironment picks a
// preset (development is text at debug with source locations, staging and
// production are JSON at info); WithLevel and WithFormat override it no
// matter where they appear. WithService tags records with the service name
// and version, and ContextExtractor callbacks copy request-scoped values,
// such as the request id, from the context into every record. Config holds
// the APP_ENV, LOG_LEVEL and LOG_FORMAT settings and converts them into
// options.
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler for the configured
// Format and wraps it with NewContextHandler, which runs the extractors before
// delegating. Attribute helpers in attr.go keep key names consistent:
//
//	log.WarnContext(ctx, "cache tier read failed",
//		logger.CacheTier("redis"),
//		logger.UserAgent(ua),
//		logger.Error(err),
//	)
//
// # Usage
//
//	opts, err := cfg.Log.Options()
//	if err != nil {
//		return err
//	}
//	log := logger.New(append(opts,
//		logger.WithService("uatokend", cfg.Version),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)...)
//	logger.SetAsDefault(log)
//
// # Error Handling
//
// Error and Errors return an empty attribute for nil errors, which slog drops,
// so callers can pass errors without a nil check.
package logger
