package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/jgbarallobre/Contable/internal/core/domain"
)

// contextKey is a private type for context keys set by this package. Using a
// custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey   = contextKey("logger")
	authUserCtxKey = contextKey("authUser")
)

// GetLoggerFromCtx retrieves the request-scoped logger from the context. It
// returns the default logger if none was injected.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// GetAuthUserFromContext retrieves the authenticated caller identity set by
// the auth middleware. The second return value reports whether one was found.
func GetAuthUserFromContext(c *gin.Context) (domain.AuthUser, bool) {
	if v, exists := c.Get(string(authUserCtxKey)); exists {
		if user, ok := v.(domain.AuthUser); ok {
			return user, true
		}
	}
	if user, ok := c.Request.Context().Value(authUserCtxKey).(domain.AuthUser); ok {
		return user, true
	}
	return domain.AuthUser{}, false
}
