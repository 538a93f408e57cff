package contents

import (
	"errors"
	"net/http"

	"storefront-cms/database"
	domain "storefront-cms/internal/domain/articles"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Standalone block CRUD for granular edits outside the full-article replace.
// The submitted order value is stored as-is here; dense renumbering is only
// guaranteed by the full-article save path.

type BlockRequest struct {
	ArticleID  string           `json:"articleId"`
	Type       domain.BlockType `json:"type"`
	Order      *int             `json:"order"`
	Text       string           `json:"text"`
	MediaID    string           `json:"mediaId"`
	ProductID  string           `json:"productId"`
	ProductTag string           `json:"productTag"`
}

// toInput collapses the field-per-type request shape into the overloaded
// value form the domain validates.
func (r *BlockRequest) toInput() domain.BlockInput {
	in := domain.BlockInput{
		Type:       r.Type,
		ProductTag: r.ProductTag,
	}
	if r.Order != nil {
		in.Order = *r.Order
	}
	switch r.Type {
	case domain.BlockText:
		in.Value = r.Text
	case domain.BlockImage:
		in.Value = r.MediaID
	case domain.BlockProduct:
		in.Value = r.ProductID
	}
	return in
}

// ------------------------------
// POST /api/article-contents
// ------------------------------
func CreateBlock(c *gin.Context) {
	var req BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ArticleID == "" || req.Type == "" || req.Order == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Article ID, type, and order are required"})
		return
	}

	block, err := domain.ValidateBlock(req.toInput())
	if err != nil {
		status, msg := blockErrorResponse(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	block.ArticleID = req.ArticleID

	if err := database.DB.Create(&block).Error; err != nil {
		status, msg := blockErrorResponse(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusCreated, block)
}

// ------------------------------
// GET /api/article-contents/:id
// ------------------------------
func GetBlock(c *gin.Context) {
	var block domain.ContentBlock
	err := database.DB.
		Preload("Media").
		Preload("Product").
		First(&block, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article Content not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load article content"})
		return
	}
	c.JSON(http.StatusOK, block)
}

// ------------------------------
// PUT /api/article-contents/:id
// ------------------------------
// Changing the type re-applies the exactly-one-value invariant: the new
// required field must be present and the other two columns are cleared.
func UpdateBlock(c *gin.Context) {
	id := c.Param("id")

	var req BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing domain.ContentBlock
	if err := database.DB.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article Content not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load article content"})
		return
	}

	in := req.toInput()
	if req.Order == nil {
		in.Order = existing.Order
	}

	validated, err := domain.ValidateBlock(in)
	if err != nil {
		status, msg := blockErrorResponse(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	// Full column set: inapplicable fields must overwrite to NULL.
	updates := map[string]interface{}{
		"type":        validated.Type,
		"position":    validated.Order,
		"text":        validated.Text,
		"media_id":    validated.MediaID,
		"product_id":  validated.ProductID,
		"product_tag": validated.ProductTag,
	}
	if err := database.DB.Model(&existing).Updates(updates).Error; err != nil {
		status, msg := blockErrorResponse(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, existing)
}

// ------------------------------
// DELETE /api/article-contents/:id
// ------------------------------
func DeleteBlock(c *gin.Context) {
	res := database.DB.Where("id = ?", c.Param("id")).Delete(&domain.ContentBlock{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete article content"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article Content not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Article Content deleted successfully"})
}

func blockErrorResponse(err error) (int, string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Error()
	case errors.Is(err, domain.ErrUnknownBlockType), errors.Is(err, domain.ErrBadReference):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return http.StatusBadRequest, "Referenced article, media or product not found"
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
