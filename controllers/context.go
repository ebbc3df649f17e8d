package controllers

import (
	"fhr-mart/services"

	"github.com/gin-gonic/gin"
)

// currentSession pulls the session placed in the context by the session
// middleware. Routes outside the session group never reach this.
func currentSession(c *gin.Context) *services.Session {
	value, _ := c.Get("session")
	sess, _ := value.(*services.Session)
	return sess
}
