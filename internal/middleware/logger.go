package middleware

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/linkbox/internal/handlers"
	"go.uber.org/zap"
)

// RequestLogger logs every request once it has been handled.
// It must run after RequestMeta to pick up the client IP.
func RequestLogger(logger *zap.Logger) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()

		next(ctx)

		meta := handlers.RequestMetaFromContext(ctx.Context())
		u := ctx.URL()

		logger.Info("request handled",
			zap.String("method", ctx.Method()),
			zap.String("path", u.Path),
			zap.Int("status", ctx.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("clientIp", meta.ClientIP),
		)
	}
}
