package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/campushq-id/bootcamp-api/internal/constants"
	apperrors "github.com/campushq-id/bootcamp-api/internal/errors"
	"github.com/campushq-id/bootcamp-api/internal/service"
	"github.com/campushq-id/bootcamp-api/pkg/ctxutil"
	"github.com/campushq-id/bootcamp-api/pkg/logger"
)

type JWTMiddleware struct {
	jwtService *service.JWTService
}

func NewJWTMiddleware(jwtService *service.JWTService) *JWTMiddleware {
	return &JWTMiddleware{jwtService: jwtService}
}

// RequireAuth validates the bearer token and stores the caller's identity in
// both the gin context and the request context.
func (m *JWTMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.GetLogger().Warn("Missing Authorization header",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method))
			m.reject(c)
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			logger.GetLogger().Warn("Invalid Authorization header format",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method))
			m.reject(c)
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenParts[1])
		if err != nil {
			logger.GetLogger().Warn("Invalid or expired token",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
				zap.Error(err))
			m.reject(c)
			return
		}

		userIDFloat, ok := claims["user_id"].(float64)
		if !ok {
			logger.GetLogger().Warn("Token missing user ID",
				zap.String("path", c.Request.URL.Path))
			m.reject(c)
			return
		}
		userID := uint(userIDFloat)

		email, _ := claims["email"].(string)
		role, _ := claims["role"].(string)

		c.Set("user_id", userID)
		c.Set("email", email)
		c.Set("role", role)
		c.Request = c.Request.WithContext(ctxutil.WithUserID(c.Request.Context(), userID))

		c.Next()
	}
}

// RequireRole restricts a route to the given roles. Must run after
// RequireAuth.
func (m *JWTMiddleware) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		logger.GetLogger().Warn("Role not permitted",
			zap.String("role", role),
			zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusForbidden, constants.BuildErrorResponse("role not permitted for this resource"))
		c.Abort()
	}
}

func (m *JWTMiddleware) reject(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(apperrors.ErrUnauthorized.Message))
	c.Abort()
}
