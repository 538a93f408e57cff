package slides

import (
	"errors"
	"net/http"

	"storefront-cms/database"
	"storefront-cms/internal/api/storefront"
	domain "storefront-cms/internal/domain/slides"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SlideRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Link        *string `json:"link"`
	MediaID     string  `json:"mediaId"`
}

// ------------------------------
// GET /api/slides
// ------------------------------
func ListSlides(c *gin.Context) {
	var list []domain.Slide
	if err := database.DB.Preload("Media").Order("created_at ASC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load slides"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// ------------------------------
// GET /api/slides/:id
// ------------------------------
func GetSlide(c *gin.Context) {
	var s domain.Slide
	err := database.DB.Preload("Media").First(&s, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Slide not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load slide"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// ------------------------------
// POST /api/slides
// ------------------------------
func CreateSlide(c *gin.Context) {
	var req SlideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title == "" || req.MediaID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and Media ID are required"})
		return
	}

	s := domain.Slide{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		MediaID:     &req.MediaID,
	}
	if err := database.DB.Create(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Referenced media not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create slide"})
		return
	}

	storefront.Invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, s)
}

// ------------------------------
// PUT /api/slides/:id
// ------------------------------
func UpdateSlide(c *gin.Context) {
	var req SlideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var s domain.Slide
	if err := database.DB.First(&s, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Slide not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load slide"})
		return
	}

	if req.Title != "" {
		s.Title = req.Title
	}
	s.Description = req.Description
	s.Link = req.Link
	if req.MediaID != "" {
		s.MediaID = &req.MediaID
	}

	if err := database.DB.Save(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Referenced media not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update slide"})
		return
	}

	storefront.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, s)
}

// ------------------------------
// DELETE /api/slides/:id
// ------------------------------
func DeleteSlide(c *gin.Context) {
	res := database.DB.Where("id = ?", c.Param("id")).Delete(&domain.Slide{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete slide"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Slide not found"})
		return
	}

	storefront.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Slide deleted successfully"})
}
