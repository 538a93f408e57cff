package products

import (
	"errors"
	"net/http"

	"storefront-cms/database"
	"storefront-cms/internal/api/storefront"
	articledomain "storefront-cms/internal/domain/articles"
	domain "storefront-cms/internal/domain/catalog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ------------------------------
// GET /api/products
// ------------------------------
func ListProducts(c *gin.Context) {
	var list []domain.Product
	if err := database.DB.Preload("CoverMedia").Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// ------------------------------
// GET /api/products/:id
// ------------------------------
func GetProduct(c *gin.Context) {
	var p domain.Product
	err := database.DB.Preload("CoverMedia").First(&p, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// ------------------------------
// POST /api/products
// ------------------------------
func CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title == "" || req.NormalPrice == 0 || req.ProductLink == "" ||
		req.ComparePriceLink == "" || req.CoverMediaID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Required fields are missing"})
		return
	}

	p := domain.Product{
		Title:                  req.Title,
		NormalPrice:            req.NormalPrice,
		SpecialPrice:           req.SpecialPrice,
		MainRating:             req.MainRating,
		QualityRating:          req.QualityRating,
		PerformanceRating:      req.PerformanceRating,
		ValueRating:            req.ValueRating,
		QualityRatingLabel:     req.QualityRatingLabel,
		PerformanceRatingLabel: req.PerformanceRatingLabel,
		ValueRatingLabel:       req.ValueRatingLabel,
		Description:            req.Description,
		ProductLink:            req.ProductLink,
		ComparePriceLink:       req.ComparePriceLink,
		CoverMediaID:           &req.CoverMediaID,
	}

	if err := database.DB.Create(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Referenced media not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	storefront.Invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, p)
}

// ------------------------------
// PUT /api/products/:id  (partial)
// ------------------------------
func UpdateProduct(c *gin.Context) {
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var p domain.Product
	if err := database.DB.First(&p, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product"})
		return
	}

	req.apply(&p)

	if err := database.DB.Save(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Referenced media not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	storefront.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, p)
}

// ------------------------------
// DELETE /api/products/:id
// ------------------------------
func DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	var p domain.Product
	if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// Product blocks keep their row; only the reference is dropped.
		if err := tx.Model(&articledomain.ContentBlock{}).
			Where("product_id = ?", id).
			Update("product_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&p).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	storefront.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
