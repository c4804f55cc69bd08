package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"bloom-express/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	jwt *jwt.Service
}

const (
	ctxAdminIDKey    = "admin_id"
	ctxAdminEmailKey = "admin_email"
)

func NewAuthMiddleware(jwtService *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtService}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxAdminIDKey, claims.AdminID)
		c.Set(ctxAdminEmailKey, claims.Email)
		c.Set("jwt_claims", map[string]any{
			"admin_id": claims.AdminID.String(),
			"email":    claims.Email,
		})
		c.Next()
	}
}

func GetAdminID(c *gin.Context) (uuid.UUID, bool) {
	adminID, exists := c.Get(ctxAdminIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := adminID.(uuid.UUID)
	return id, ok
}

func GetAdminEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(ctxAdminEmailKey)
	if !exists {
		return "", false
	}

	e, ok := email.(string)
	return e, ok
}
