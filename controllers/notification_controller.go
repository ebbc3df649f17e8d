package controllers

import (
	"github.com/gin-gonic/gin"
)

type NotificationController struct{}

func NewNotificationController() *NotificationController {
	return &NotificationController{}
}

// @Summary Get current toast
// @Description Get the transient status message for this session, if one is still visible
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /notifications/toast [get]
func (ctrl *NotificationController) GetToast(c *gin.Context) {
	sess := currentSession(c)

	message := sess.Toast()
	c.JSON(200, gin.H{
		"success": true,
		"message": "Toast retrieved",
		"data":    gin.H{"message": message, "visible": message != ""},
	})
}
