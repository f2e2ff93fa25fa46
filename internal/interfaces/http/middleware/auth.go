package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pulseboard/internal/infrastructure/auth"
	"pulseboard/internal/shared/logger"
	"pulseboard/internal/shared/utils"
)

// ContextKeyUserID is where RequireAuth stores the verified subject.
const ContextKeyUserID = "user_id"

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		subject := claims.SubjectID()
		if subject == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "token carries no subject")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, subject)
		c.Next()
	}
}
