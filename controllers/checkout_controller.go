package controllers

import (
	"errors"

	"fhr-mart/models"
	"fhr-mart/services"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct{}

func NewCheckoutController() *CheckoutController {
	return &CheckoutController{}
}

// @Summary Get checkout state
// @Description Get the current checkout step and whether the cart drawer is open
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /checkout [get]
func (ctrl *CheckoutController) GetCheckout(c *gin.Context) {
	sess := currentSession(c)

	step, cartOpen := sess.Checkout()
	c.JSON(200, gin.H{
		"success": true,
		"message": "Checkout state retrieved",
		"data":    models.CheckoutResponse{Step: step, CartOpen: cartOpen},
	})
}

// @Summary Open cart drawer
// @Description Open the cart panel; the stepper resets to bag
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /checkout/open [post]
func (ctrl *CheckoutController) Open(c *gin.Context) {
	sess := currentSession(c)

	sess.OpenCartDrawer()
	step, cartOpen := sess.Checkout()
	c.JSON(200, gin.H{
		"success": true,
		"message": "Cart opened",
		"data":    models.CheckoutResponse{Step: step, CartOpen: cartOpen},
	})
}

// @Summary Advance checkout
// @Description Move the stepper forward (bag -> shipping -> payment); refused while the bag is empty
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout/advance [post]
func (ctrl *CheckoutController) Advance(c *gin.Context) {
	sess := currentSession(c)

	step, err := sess.AdvanceCheckout()
	if errors.Is(err, services.ErrCartEmpty) {
		c.JSON(400, gin.H{"success": false, "message": "Bag is empty"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Checkout advanced",
		"data":    gin.H{"step": step},
	})
}

// @Summary Confirm order
// @Description Complete checkout: the bag is emptied, the drawer closes and the stepper resets
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout/confirm [post]
func (ctrl *CheckoutController) Confirm(c *gin.Context) {
	sess := currentSession(c)

	if err := sess.ConfirmOrder(); err != nil {
		if errors.Is(err, services.ErrCartEmpty) {
			c.JSON(400, gin.H{"success": false, "message": "Bag is empty"})
			return
		}
		c.JSON(400, gin.H{"success": false, "message": "Checkout has not started"})
		return
	}

	sess.ShowToast("Order Successful!")
	c.JSON(200, gin.H{
		"success": true,
		"message": "Order Successful!",
		"data":    gin.H{"step": models.StepBag},
	})
}
