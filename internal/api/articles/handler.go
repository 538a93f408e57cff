package articles

import (
	"errors"
	"net/http"

	"storefront-cms/database"
	"storefront-cms/internal/api/storefront"
	domain "storefront-cms/internal/domain/articles"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ------------------------------
// GET /api/articles
// ------------------------------
func ListArticles(c *gin.Context) {
	var list []domain.Article
	err := database.DB.
		Preload("CoverMedia").
		Preload("BannerMedia").
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load articles"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// ------------------------------
// GET /api/articles/:id  (id or slug)
// ------------------------------
func GetArticle(c *gin.Context) {
	article, err := findArticle(database.DB, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load article"})
		return
	}

	c.JSON(http.StatusOK, ArticleDetailDTO{
		Article:  *article,
		Contents: domain.Hydrate(article.Contents, nil, nil),
	})
}

// ------------------------------
// POST /api/articles
// ------------------------------
func CreateArticle(c *gin.Context) {
	var req SaveArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title == "" || req.Slug == "" || req.CoverMediaID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, Slug, and Cover Media ID are required"})
		return
	}
	if !validMediaRef(req.CoverMediaID) || (req.BannerMediaID != nil && !validMediaRef(*req.BannerMediaID)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Referenced media not found"})
		return
	}

	blocks, err := domain.BuildBlocks(req.Contents)
	if err != nil {
		status, msg := saveErrorResponse(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	article := domain.Article{
		Title:         req.Title,
		Slug:          req.Slug,
		Description:   req.Description,
		CoverMediaID:  &req.CoverMediaID,
		BannerMediaID: req.BannerMediaID,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&article).Error; err != nil {
			return err
		}
		return domain.ReplaceAll(tx, article.ID, blocks)
	})
	if err != nil {
		status, msg := saveErrorResponse(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	storefront.Invalidate(c.Request.Context(), article.Slug)
	c.JSON(http.StatusCreated, article)
}

// ------------------------------
// PUT /api/articles/:id  (full contents[] replace)
// ------------------------------
func UpdateArticle(c *gin.Context) {
	id := c.Param("id")

	var req SaveArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title == "" || req.Slug == "" || req.CoverMediaID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, Slug, and Cover Media ID are required"})
		return
	}
	if !validMediaRef(req.CoverMediaID) || (req.BannerMediaID != nil && !validMediaRef(*req.BannerMediaID)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Referenced media not found"})
		return
	}

	blocks, err := domain.BuildBlocks(req.Contents)
	if err != nil {
		status, msg := saveErrorResponse(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	var article domain.Article
	var previousSlug string

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&article, "id = ?", id).Error; err != nil {
			return err
		}
		previousSlug = article.Slug

		article.Title = req.Title
		article.Slug = req.Slug
		article.Description = req.Description
		article.CoverMediaID = &req.CoverMediaID
		article.BannerMediaID = req.BannerMediaID

		if err := tx.Save(&article).Error; err != nil {
			return err
		}
		return domain.ReplaceAll(tx, article.ID, blocks)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		status, msg := saveErrorResponse(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	storefront.Invalidate(c.Request.Context(), previousSlug, article.Slug)
	c.JSON(http.StatusOK, article)
}

// ------------------------------
// DELETE /api/articles/:id
// ------------------------------
func DeleteArticle(c *gin.Context) {
	id := c.Param("id")

	var article domain.Article
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&article, "id = ?", id).Error; err != nil {
			return err
		}
		// Blocks are owned exclusively by the article.
		if err := tx.Where("article_id = ?", id).Delete(&domain.ContentBlock{}).Error; err != nil {
			return err
		}
		return tx.Delete(&article).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete article"})
		return
	}

	storefront.Invalidate(c.Request.Context(), article.Slug)
	c.JSON(http.StatusOK, gin.H{"message": "Article deleted"})
}

func validMediaRef(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// saveErrorResponse maps domain and storage errors onto the shared taxonomy:
// 400 validation / dangling reference, 409 slug conflict, 500 otherwise.
func saveErrorResponse(err error) (int, string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Error()
	case errors.Is(err, domain.ErrUnknownBlockType), errors.Is(err, domain.ErrBadReference):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return http.StatusConflict, "Article with this slug already exists"
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return http.StatusBadRequest, "Referenced media or product not found"
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
