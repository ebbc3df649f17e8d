package middleware

import (
	"net/http"
	"strings"

	"fhr-mart/models"
	"fhr-mart/services"
	"fhr-mart/utils"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware resolves the bearer token to a live session and stores it
// in the request context under "session".
func SessionMiddleware(sessionSvc *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Authorization header required",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateSessionToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid or expired token",
				Error:   err.Error(),
			})
			c.Abort()
			return
		}

		sess, err := sessionSvc.Get(claims.SessionID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Session no longer exists",
			})
			c.Abort()
			return
		}

		c.Set("session", sess)
		c.Next()
	}
}
