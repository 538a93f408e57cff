package articles

import (
	"time"

	"storefront-cms/internal/domain/catalog"
	"storefront-cms/internal/domain/media"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Article owns its ordered content blocks; cover and banner media are weak
// references. The banner is optional, the cover is required at the API layer.
type Article struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Title       string  `gorm:"not null" json:"title"`
	Slug        string  `gorm:"uniqueIndex;not null" json:"slug"`
	Description *string `json:"description,omitempty"`

	CoverMediaID *string      `gorm:"type:uuid;index" json:"coverMediaId,omitempty"`
	CoverMedia   *media.Media `gorm:"foreignKey:CoverMediaID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"coverMedia,omitempty"`

	BannerMediaID *string      `gorm:"type:uuid;index" json:"bannerMediaId,omitempty"`
	BannerMedia   *media.Media `gorm:"foreignKey:BannerMediaID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"bannerMedia,omitempty"`

	Contents []ContentBlock `gorm:"foreignKey:ArticleID;references:ID;constraint:OnDelete:CASCADE;" json:"contents,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// ContentBlock is one ordered unit of an article body. Exactly one of
// Text / MediaID / ProductID is set, chosen by Type; Order is 1-based and
// dense within the owning article.
type ContentBlock struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ArticleID string `gorm:"type:uuid;not null;index:idx_content_blocks_article_order,priority:1" json:"articleId"`

	Type  BlockType `gorm:"not null;index" json:"type"`
	Order int       `gorm:"column:position;not null;index:idx_content_blocks_article_order,priority:2" json:"order"`

	Text *string `json:"text,omitempty"`

	MediaID *string      `gorm:"type:uuid;index" json:"mediaId,omitempty"`
	Media   *media.Media `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"media,omitempty"`

	ProductID *string          `gorm:"type:uuid;index" json:"productId,omitempty"`
	Product   *catalog.Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"product,omitempty"`

	ProductTag *string `json:"productTag,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *ContentBlock) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// Value returns the type-specific payload: text for TEXT blocks, the media id
// for IMAGE blocks, the product id for PRODUCT blocks.
func (b *ContentBlock) Value() string {
	switch b.Type {
	case BlockText:
		if b.Text != nil {
			return *b.Text
		}
	case BlockImage:
		if b.MediaID != nil {
			return *b.MediaID
		}
	case BlockProduct:
		if b.ProductID != nil {
			return *b.ProductID
		}
	}
	return ""
}
