package controllers

import (
	"errors"
	"fmt"

	"fhr-mart/models"
	"fhr-mart/services"
	"fhr-mart/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Catalog *services.CatalogService
}

func NewCartController(catalog *services.CatalogService) *CartController {
	return &CartController{Catalog: catalog}
}

// @Summary Get cart
// @Description Get the bag contents and the running total
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	sess := currentSession(c)

	items := sess.CartItems()
	responseItems := make([]models.CartItemResponse, 0, len(items))
	for _, item := range items {
		responseItems = append(responseItems, models.CartItemResponse{
			Product:       item.Product,
			Quantity:      item.Quantity,
			Subtotal:      item.Subtotal(),
			SubtotalLabel: utils.FormatPrice(item.Subtotal()),
		})
	}

	total := sess.CartTotal()
	c.JSON(200, gin.H{
		"success": true,
		"message": "Cart retrieved",
		"data": models.CartResponse{
			Items:      responseItems,
			Total:      total,
			TotalLabel: utils.FormatPrice(total),
		},
	})
}

// @Summary Add product to cart
// @Description Add a catalog product to the bag, bumping quantity if already present
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Add Item Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	sess := currentSession(c)

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	product, err := ctrl.Catalog.GetProductByID(req.ProductID)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	sess.AddToCart(product)
	sess.ShowToast(fmt.Sprintf("%s added to bag!", product.Name))

	c.JSON(201, gin.H{
		"success": true,
		"message": "Added to bag",
		"data":    gin.H{"cart_count": sess.CartCount(), "total": sess.CartTotal()},
	})
}

// @Summary Change item quantity
// @Description Increment or decrement a bag entry; decrement never drops below 1
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body models.UpdateCartItemRequest true "Quantity Op"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	sess := currentSession(c)
	id := c.Param("id")

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request. op must be increment or decrement"})
		return
	}

	var err error
	if req.Op == "increment" {
		err = sess.IncrementItem(id)
	} else {
		err = sess.DecrementItem(id)
	}

	if errors.Is(err, services.ErrCartItemNotFound) {
		c.JSON(404, gin.H{"success": false, "message": "Item not in cart"})
		return
	}

	sess.ShowToast("Quantity updated")
	c.JSON(200, gin.H{
		"success": true,
		"message": "Quantity updated",
		"data":    gin.H{"total": sess.CartTotal()},
	})
}

// @Summary Remove item from cart
// @Description Delete a bag entry regardless of its quantity
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	sess := currentSession(c)

	if err := sess.RemoveItem(c.Param("id")); err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Item not in cart"})
		return
	}

	sess.ShowToast("Removed from bag")
	c.JSON(200, gin.H{
		"success": true,
		"message": "Item removed",
		"data":    gin.H{"cart_count": sess.CartCount(), "total": sess.CartTotal()},
	})
}
