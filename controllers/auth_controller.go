package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// @Summary Login
// @Description Demo login stub: unconditionally assigns the fixed demo user to the session. No credentials, no logout.
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	sess := currentSession(c)

	user := sess.Login()
	sess.ShowToast(fmt.Sprintf("Welcome back, %s!", user.Name))

	c.JSON(200, gin.H{
		"success": true,
		"message": "Logged in",
		"data":    user,
	})
}

// @Summary Get profile
// @Description Get the logged-in user for this session
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/profile [get]
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	sess := currentSession(c)

	user, ok := sess.CurrentUser()
	if !ok {
		c.JSON(401, gin.H{"success": false, "message": "Not logged in"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Profile retrieved",
		"data":    user,
	})
}
