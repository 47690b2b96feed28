// Package middleware provides HTTP middleware for the todo service.
package middleware

import (
	"net/http"
	"strings"

	"github.com/MaxKtzv/TodoAppPetProject/internal/service"
	"github.com/gin-gonic/gin"
)

// userContextKey is the gin context key holding the verified claims.
const userContextKey = "currentUser"

// Authenticate returns middleware that verifies the bearer token from
// the Authorization header and stores its claims in the request
// context. Missing and invalid tokens are rejected with the same
// response.
func Authenticate(jwtService service.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := jwtService.Validate(extractToken(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": service.ErrInvalidCredentials.Error(),
			})
			return
		}

		c.Set(userContextKey, claims)
		c.Next()
	}
}

// CurrentUser returns the claims stored by Authenticate, or nil when
// the request did not pass through it.
func CurrentUser(c *gin.Context) *service.Claims {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*service.Claims)
	if !ok {
		return nil
	}
	return claims
}

func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	parts := strings.Split(bearerToken, " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}
