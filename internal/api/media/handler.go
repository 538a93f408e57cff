package media

import (
	"errors"
	"net/http"

	"storefront-cms/database"
	"storefront-cms/internal/api/storefront"
	domain "storefront-cms/internal/domain/articles"
	"storefront-cms/internal/domain/catalog"
	mediadomain "storefront-cms/internal/domain/media"
	"storefront-cms/internal/domain/slides"
	"storefront-cms/internal/infra/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Store is the file-storage collaborator, wired in main.
var Store storage.Storage

// ------------------------------
// GET /api/media
// ------------------------------
func ListMedia(c *gin.Context) {
	var list []mediadomain.Media
	if err := database.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load media"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// ------------------------------
// GET /api/media/:id
// ------------------------------
func GetMedia(c *gin.Context) {
	var m mediadomain.Media
	if err := database.DB.First(&m, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load media"})
		return
	}
	c.JSON(http.StatusOK, m)
}

// ------------------------------
// POST /api/media  (multipart: file, altText)
// ------------------------------
func UploadMedia(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded."})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer f.Close()

	url, err := Store.Save(fileHeader.Filename, f)
	if err != nil {
		logrus.Errorf("media upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload media"})
		return
	}

	m := mediadomain.Media{URL: url}
	if altText := c.PostForm("altText"); altText != "" {
		m.AltText = &altText
	}

	if err := database.DB.Create(&m).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload media"})
		return
	}
	c.JSON(http.StatusCreated, m)
}

// ------------------------------
// PUT /api/media/:id  (url / altText edit)
// ------------------------------
func UpdateMedia(c *gin.Context) {
	var req struct {
		URL     string  `json:"url"`
		AltText *string `json:"altText"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var m mediadomain.Media
	if err := database.DB.First(&m, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load media"})
		return
	}

	if req.URL != "" {
		m.URL = req.URL
	}
	m.AltText = req.AltText

	if err := database.DB.Save(&m).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update media"})
		return
	}
	c.JSON(http.StatusOK, m)
}

// ------------------------------
// DELETE /api/media/:id
// ------------------------------
func DeleteMedia(c *gin.Context) {
	id := c.Param("id")

	var m mediadomain.Media
	if err := database.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load media"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		return DetachAndDelete(tx, id)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete media"})
		return
	}

	storefront.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Media deleted successfully"})
}

// DetachAndDelete nulls every foreign key pointing at the media row, then
// deletes it. References are weak: slides, product covers, article
// cover/banner and image blocks survive with the column nulled, nothing
// cascades.
func DetachAndDelete(tx *gorm.DB, mediaID string) error {
	if err := tx.Model(&slides.Slide{}).
		Where("media_id = ?", mediaID).
		Update("media_id", nil).Error; err != nil {
		return err
	}
	if err := tx.Model(&catalog.Product{}).
		Where("cover_media_id = ?", mediaID).
		Update("cover_media_id", nil).Error; err != nil {
		return err
	}
	if err := tx.Model(&domain.Article{}).
		Where("cover_media_id = ?", mediaID).
		Update("cover_media_id", nil).Error; err != nil {
		return err
	}
	if err := tx.Model(&domain.Article{}).
		Where("banner_media_id = ?", mediaID).
		Update("banner_media_id", nil).Error; err != nil {
		return err
	}
	if err := tx.Model(&domain.ContentBlock{}).
		Where("media_id = ?", mediaID).
		Update("media_id", nil).Error; err != nil {
		return err
	}
	return tx.Where("id = ?", mediaID).Delete(&mediadomain.Media{}).Error
}
