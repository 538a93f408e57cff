package storefront

import (
	"context"
	"errors"
	"net/http"

	"storefront-cms/config"
	"storefront-cms/database"
	domain "storefront-cms/internal/domain/articles"
	"storefront-cms/internal/infra/cache"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const homeCacheKey = "storefront:home"

func articleCacheKey(slug string) string {
	return "storefront:article:" + slug
}

// Invalidate drops the cached home page and the given article slugs. Called
// by the admin mutation handlers; purely best effort, TTL covers the rest.
func Invalidate(ctx context.Context, slugs ...string) {
	keys := []string{homeCacheKey}
	for _, slug := range slugs {
		if slug != "" {
			keys = append(keys, articleCacheKey(slug))
		}
	}
	cache.Default.Delete(ctx, keys...)
}

// ------------------------------
// GET /api/storefront/home
// ------------------------------
// Everything the landing page renders: slideshow, product grid, latest
// articles. Served stale up to the cache TTL by design.
func Home(c *gin.Context) {
	ctx := c.Request.Context()

	var page HomeDTO
	if err := cache.Default.GetJSON(ctx, homeCacheKey, &page); err == nil {
		c.JSON(http.StatusOK, page)
		return
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		logrus.Warnf("storefront cache read failed: %v", err)
	}

	if err := database.DB.Preload("Media").Order("created_at ASC").Find(&page.Slides).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load storefront"})
		return
	}
	if err := database.DB.Preload("CoverMedia").Order("created_at DESC").Find(&page.Products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load storefront"})
		return
	}
	if err := database.DB.
		Preload("CoverMedia").
		Preload("BannerMedia").
		Order("created_at DESC").
		Limit(12).
		Find(&page.Articles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load storefront"})
		return
	}

	if err := cache.Default.SetJSON(ctx, homeCacheKey, page, config.STOREFRONT_CACHE_TTL); err != nil {
		logrus.Debugf("storefront cache write failed: %v", err)
	}
	c.JSON(http.StatusOK, page)
}

// ------------------------------
// GET /api/storefront/articles/:slug
// ------------------------------
func GetArticle(c *gin.Context) {
	slug := c.Param("slug")
	ctx := c.Request.Context()

	key := articleCacheKey(slug)
	var page ArticlePageDTO
	if err := cache.Default.GetJSON(ctx, key, &page); err == nil {
		c.JSON(http.StatusOK, page)
		return
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		logrus.Warnf("storefront cache read failed: %v", err)
	}

	var article domain.Article
	err := database.DB.
		Preload("CoverMedia").
		Preload("BannerMedia").
		Preload("Contents", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Contents.Media").
		Preload("Contents.Product").
		Preload("Contents.Product.CoverMedia").
		First(&article, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load article"})
		return
	}

	page = ArticlePageDTO{
		Article:  article,
		Contents: domain.Hydrate(article.Contents, nil, nil),
	}
	page.Article.Contents = nil // blocks travel hydrated, not raw

	if err := cache.Default.SetJSON(ctx, key, page, config.STOREFRONT_CACHE_TTL); err != nil {
		logrus.Debugf("storefront cache write failed: %v", err)
	}
	c.JSON(http.StatusOK, page)
}
