package middleware

import (
	"strings"

	"financequest/internal/module/identity/authtoken/service"
	"financequest/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	UserKey = "current_user"
)

// Middleware validates bearer tokens and stashes the resolved user id in
// the gin context.
type Middleware struct {
	tokens service.Service
}

// NewMiddleware creates a new auth middleware.
func NewMiddleware(tokens service.Service) *Middleware {
	return &Middleware{tokens: tokens}
}

// AuthMiddleware resolves the authenticated user id from the bearer
// token or aborts with Unauthenticated.
func (m *Middleware) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLogger(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			shared.RespondWithAppError(c, shared.ErrUnauthenticated.WithDetails("reason", "authorization header required"))
			c.Abort()
			return
		}

		tokenString := authHeader
		switch {
		case strings.HasPrefix(authHeader, "Bearer "):
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		case strings.HasPrefix(authHeader, "bearer "):
			tokenString = strings.TrimPrefix(authHeader, "bearer ")
		}
		tokenString = strings.TrimSpace(tokenString)

		if tokenString == "" {
			shared.RespondWithAppError(c, shared.ErrUnauthenticated.WithDetails("reason", "token required"))
			c.Abort()
			return
		}

		userID, err := m.tokens.Validate(tokenString)
		if err != nil {
			logger.Warn("Authentication failed: invalid token",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			shared.RespondWithAppError(c, shared.ErrUnauthenticated.WithDetails("reason", "invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(UserKey, userID)
		c.Set("user_id", userID.String())

		logger.Debug("Authentication successful",
			zap.String("user_id", userID.String()),
			zap.String("path", c.Request.URL.Path),
		)

		c.Next()
	}
}

// GetCurrentUser retrieves the authenticated user id from context.
func GetCurrentUser(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(UserKey)
	if !exists {
		return uuid.Nil, false
	}

	userID, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}

	return userID, true
}
