package middleware

import (
	"net/http"
	"strings"

	"orderalone/services"

	"github.com/gin-gonic/gin"
)

const UserIDKey = "user_id"

// TokenParser is satisfied by *services.TokenManager.
type TokenParser interface {
	Parse(tokenString, tokenType string) (*services.Claims, error)
}

// AuthMiddleware accepts an access token from the Authorization header or,
// for websocket upgrades, from the token query parameter.
func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		if header := c.GetHeader("Authorization"); header != "" {
			if !strings.HasPrefix(header, "Bearer ") {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header"})
				return
			}
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
			return
		}

		claims, err := tokens.Parse(tokenString, services.AccessToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}
