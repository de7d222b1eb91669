package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/LiteBots/VelorieMarket/domain"
)

// UserAuthMiddleware validates marketplace user tokens and checks the
// session still exists in Redis.
func UserAuthMiddleware(tokenSvc domain.TokenService, sessionRepo domain.SessionRepository) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		token, ok := extractBearer(c)
		if !ok {
			return
		}

		claims, err := tokenSvc.ValidateUserToken(token)
		if err != nil {
			abortForTokenError(c, err)
			return
		}

		if claims.SessionID != "" {
			session, err := sessionRepo.FindByID(c.Request.Context(), claims.SessionID)
			if err != nil || session == nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Session invalid or expired"})
				c.Abort()
				return
			}
			if session.UserID != claims.UserID {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Session user mismatch"})
				c.Abort()
				return
			}
			c.Set("session_id", claims.SessionID)
		}

		c.Set("user_id", fmt.Sprintf("%d", claims.UserID))
		c.Set("user_role", claims.Role)
		c.Next()
	})
}

// AdminAuthMiddleware validates admin session tokens minted by the OTP
// flow. There is no server-side session to check: the token is the whole
// session.
func AdminAuthMiddleware(tokenSvc domain.TokenService) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		token, ok := extractBearer(c)
		if !ok {
			return
		}

		claims, err := tokenSvc.ValidateAdminToken(token)
		if err != nil {
			abortForTokenError(c, err)
			return
		}

		if claims.Role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Administrator access required"})
			c.Abort()
			return
		}

		c.Set("recipient_id", claims.RecipientID)
		c.Set("user_role", claims.Role)
		c.Next()
	})
}

func extractBearer(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
		c.Abort()
		return "", false
	}

	tokenParts := strings.SplitN(authHeader, " ", 2)
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
		c.Abort()
		return "", false
	}

	return tokenParts[1], true
}

func abortForTokenError(c *gin.Context, err error) {
	switch err {
	case domain.ErrTokenExpired:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
	case domain.ErrTokenInvalid, domain.ErrTokenMalformed:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
	default:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token validation failed"})
	}
	c.Abort()
}
