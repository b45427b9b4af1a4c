package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/uatoken/pkg/logger"
)

// LoggerExtractor adds the request ID of the record's context to log output.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		id := FromContext(ctx)
		if id == "" {
			return slog.Attr{}, false
		}
		return logger.RequestID(id), true
	}
}
