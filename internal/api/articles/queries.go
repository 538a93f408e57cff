package articles

import (
	domain "storefront-cms/internal/domain/articles"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// withContents preloads the full render graph: ordered blocks with their
// media and products (and each product's cover).
func withContents(db *gorm.DB) *gorm.DB {
	return db.
		Preload("CoverMedia").
		Preload("BannerMedia").
		Preload("Contents", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Contents.Media").
		Preload("Contents.Product").
		Preload("Contents.Product.CoverMedia")
}

// findArticle accepts either a primary key or a slug, so the admin console
// and the storefront share one detail route.
func findArticle(db *gorm.DB, idOrSlug string) (*domain.Article, error) {
	var article domain.Article

	q := withContents(db)
	if _, err := uuid.Parse(idOrSlug); err == nil {
		err = q.First(&article, "id = ?", idOrSlug).Error
		if err != nil {
			return nil, err
		}
		return &article, nil
	}

	if err := q.First(&article, "slug = ?", idOrSlug).Error; err != nil {
		return nil, err
	}
	return &article, nil
}
