package controllers

import (
	"fhr-mart/services"

	"github.com/gin-gonic/gin"
)

type WishlistController struct {
	Catalog *services.CatalogService
}

func NewWishlistController(catalog *services.CatalogService) *WishlistController {
	return &WishlistController{Catalog: catalog}
}

// @Summary Get wishlist
// @Description Get the product ids saved to favorites
// @Tags Wishlist
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /wishlist [get]
func (ctrl *WishlistController) GetWishlist(c *gin.Context) {
	sess := currentSession(c)

	ids := sess.WishlistIDs()
	c.JSON(200, gin.H{
		"success": true,
		"message": "Wishlist retrieved",
		"data":    gin.H{"product_ids": ids, "count": len(ids)},
	})
}

// @Summary Toggle wishlist membership
// @Description Save a product to favorites, or remove it when already saved
// @Tags Wishlist
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /wishlist/{id} [post]
func (ctrl *WishlistController) Toggle(c *gin.Context) {
	sess := currentSession(c)
	id := c.Param("id")

	if _, err := ctrl.Catalog.GetProductByID(id); err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	saved := sess.ToggleWishlist(id)
	if saved {
		sess.ShowToast("Saved to favorites")
	} else {
		sess.ShowToast("Removed from favorites")
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Wishlist updated",
		"data":    gin.H{"product_id": id, "in_wishlist": saved},
	})
}
