package controllers

import (
	"fhr-mart/services"
	"fhr-mart/utils"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	Sessions *services.SessionService
}

func NewSessionController(sessions *services.SessionService) *SessionController {
	return &SessionController{Sessions: sessions}
}

// @Summary Start a session
// @Description Create a fresh browsing session (empty bag and wishlist) and return its bearer token
// @Tags Session
// @Produce json
// @Success 201 {object} models.Response
// @Router /session [post]
func (ctrl *SessionController) CreateSession(c *gin.Context) {
	sess := ctrl.Sessions.Create()

	token, err := utils.GenerateSessionToken(sess.ID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create session token"})
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Session created",
		"data":    gin.H{"token": token},
	})
}
