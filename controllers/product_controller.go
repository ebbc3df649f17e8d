package controllers

import (
	"strings"

	"fhr-mart/models"
	"fhr-mart/services"
	"fhr-mart/utils"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{Catalog: catalog}
}

// @Summary Get all categories
// @Description Get the fixed category list, including the All wildcard
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *ProductController) GetAllCategories(c *gin.Context) {
	c.JSON(200, gin.H{"success": true, "message": "Categories retrieved", "data": ctrl.Catalog.GetAllCategories()})
}

// @Summary Get products
// @Description Get products filtered by name search and category
// @Tags Products
// @Produce json
// @Param search query string false "Case-insensitive name search"
// @Param category query string false "Category filter" default(All)
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	search := strings.TrimSpace(c.Query("search"))
	category := models.Category(c.DefaultQuery("category", string(models.CategoryAll)))

	if !category.Valid() {
		c.JSON(400, gin.H{"success": false, "message": "Unknown category"})
		return
	}

	products := ctrl.Catalog.Filter(search, category)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Products retrieved",
		"data":    products,
		"total":   len(products),
	})
}

// @Summary Get product by ID
// @Description Get full product details including specs, seller and reviews
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctrl.Catalog.GetProductByID(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Product retrieved",
		"data": gin.H{
			"product":              product,
			"price_label":          utils.FormatPrice(product.Price),
			"original_price_label": utils.FormatPrice(product.OriginalPrice),
		},
	})
}
