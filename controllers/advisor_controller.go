package controllers

import (
	"fhr-mart/models"
	"fhr-mart/services"

	"github.com/gin-gonic/gin"
)

type AdvisorController struct {
	Advice *services.AdviceService
}

func NewAdvisorController(advice *services.AdviceService) *AdvisorController {
	return &AdvisorController{Advice: advice}
}

// @Summary Ask the shopping assistant
// @Description Forward a free-text query to the AI assistant. Always answers with a displayable message, even when the assistant is offline or failing.
// @Tags Advisor
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AdviceRequest true "Advice Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /advisor [post]
func (ctrl *AdvisorController) Ask(c *gin.Context) {
	sess := currentSession(c)

	var req models.AdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	// One outstanding advisory call per session.
	if !sess.BeginAdvice() {
		c.JSON(409, gin.H{"success": false, "message": "The assistant is still thinking"})
		return
	}
	defer sess.EndAdvice()

	advice := ctrl.Advice.GetShoppingAdvice(c.Request.Context(), req.Query)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Advice retrieved",
		"data":    gin.H{"message": advice},
	})
}
