package media

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Media is a registered upload. Other entities reference it weakly: deleting
// a Media row nulls every referencing foreign key, it never cascades.
type Media struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	URL     string  `gorm:"not null" json:"url"`
	AltText *string `json:"altText,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *Media) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
