package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"nexora.lk/campuscore/internal/model"
	"nexora.lk/campuscore/internal/service"
	"nexora.lk/campuscore/pkg/apperror"
	"nexora.lk/campuscore/pkg/response"
)

type AuthMiddleware struct {
	auth service.AuthService
}

func NewAuthMiddleware(auth service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// RequireAuth authenticates the bearer token, loads the account and stores
// it in the request context for handlers and role gates downstream.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")

		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			response.Error(c, apperror.ErrUnauthorized)
			c.Abort()
			return
		}

		account, err := m.auth.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set("account_id", account.ID.String())
		c.Set("account", account)
		c.Next()
	}
}

// RequireRoles gates a route to the given roles. Must run after RequireAuth.
func (m *AuthMiddleware) RequireRoles(allowed ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("account")
		if !exists {
			response.Error(c, apperror.ErrUnauthorized)
			c.Abort()
			return
		}

		account, ok := value.(*model.Account)
		if !ok {
			response.Error(c, apperror.ErrUnauthorized)
			c.Abort()
			return
		}

		if err := m.auth.Authorize(account, allowed...); err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Next()
	}
}
