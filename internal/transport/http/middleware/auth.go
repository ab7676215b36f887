package middleware

import (
	"net/http"
	"strings"

	"github.com/ErlanBelekov/communication-service/internal/token"
	"github.com/gin-gonic/gin"
)

const errUnauthorized = "Unauthorized"

type AccessTokenValidator interface {
	ValidateAccessToken(raw string) (*token.Claims, error)
}

// Auth validates a Bearer access token and sets "userID" and "email" in the
// gin context. Refresh tokens are rejected.
func Auth(tokens AccessTokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		claims, err := tokens.ValidateAccessToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		c.Set("userID", claims.Subject)
		c.Set("email", claims.Email)
		c.Next()
	}
}
