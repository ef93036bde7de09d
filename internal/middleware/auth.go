package middleware

import (
	"net/http"
	"strings"

	"github.com/Aysaleh/player-app/internal/services"

	"github.com/gin-gonic/gin"
)

// SessionCookie carries the signed session token between requests.
const SessionCookie = "auth_token"

// SessionAuth guards every route except health, register, login and logout.
// A request either enters with a valid token or is rejected here.
func SessionAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
			return
		}

		userID, email, err := authService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set("user_id", userID)
		c.Set("email", email)
		c.Next()
	}
}

// tokenFromRequest prefers the session cookie; a Bearer header works for
// non-browser clients.
func tokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
		return token
	}

	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
