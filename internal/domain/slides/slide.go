package slides

import (
	"time"

	"storefront-cms/internal/domain/media"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Slide is one entry of the storefront slideshow.
type Slide struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Title       string  `gorm:"not null" json:"title"`
	Description *string `json:"description,omitempty"`
	Link        *string `json:"link,omitempty"`

	MediaID *string      `gorm:"type:uuid;index" json:"mediaId,omitempty"`
	Media   *media.Media `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"media,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Slide) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
