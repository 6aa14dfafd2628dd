package middleware

import (
	"log/slog"

	"messenger/config"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// NewAccessLogger logs one line per request. Debug mode adds the request headers.
// Bodies are never logged since they carry passwords.
func NewAccessLogger(logger *slog.Logger, cfg *config.Config) echo.MiddlewareFunc {
	return slogecho.NewWithConfig(logger, slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,

		WithUserAgent:     true,
		WithRequestID:     true,
		WithRequestHeader: cfg.Env.Debug,

		Filters: []slogecho.Filter{
			slogecho.IgnorePath("/health"),
		},
	})
}
