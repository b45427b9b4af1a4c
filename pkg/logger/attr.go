package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// maxUserAgentLen bounds the User-Agent attribute; hostile clients send
// multi-kilobyte headers.
const maxUserAgentLen = 256

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// UserAgent records a User-Agent under the key "user_agent", truncated to
// 256 bytes.
func UserAgent(ua string) slog.Attr {
	if len(ua) > maxUserAgentLen {
		ua = ua[:maxUserAgentLen] + "..."
	}
	return slog.String("user_agent", ua)
}

// CacheTier records the cache tier name under the key "cache_tier".
func CacheTier(name string) slog.Attr {
	return slog.String("cache_tier", name)
}

// TokenCount records the number of parsed tokens under the key "tokens".
func TokenCount(n int) slog.Attr {
	return slog.Int("tokens", n)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
