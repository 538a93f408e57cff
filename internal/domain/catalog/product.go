package catalog

import (
	"time"

	"storefront-cms/internal/domain/media"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating axes are capped at five stars; the API layer rejects values outside
// 0..5 before they reach storage.
const MaxRating = 5

// Default rating-axis labels (Thai, as shipped in the original catalog).
const (
	DefaultQualityLabel     = "คุณภาพ"
	DefaultPerformanceLabel = "ประสิทธิภาพ"
	DefaultValueLabel       = "ความคุ้มค่า"
)

type Product struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Title string `gorm:"not null" json:"title"`

	NormalPrice  float64  `gorm:"not null" json:"normalPrice"`
	SpecialPrice *float64 `json:"specialPrice,omitempty"`

	MainRating        int `gorm:"not null;default:0" json:"mainRating"`
	QualityRating     int `gorm:"not null;default:0" json:"qualityRating"`
	PerformanceRating int `gorm:"not null;default:0" json:"performanceRating"`
	ValueRating       int `gorm:"not null;default:0" json:"valueRating"`

	QualityRatingLabel     string `gorm:"not null" json:"qualityRatingLabel"`
	PerformanceRatingLabel string `gorm:"not null" json:"performanceRatingLabel"`
	ValueRatingLabel       string `gorm:"not null" json:"valueRatingLabel"`

	Description *string `json:"description,omitempty"`

	ProductLink      string `gorm:"not null" json:"productLink"`
	ComparePriceLink string `gorm:"not null" json:"comparePriceLink"`

	CoverMediaID *string      `gorm:"type:uuid;index" json:"coverMediaId,omitempty"`
	CoverMedia   *media.Media `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"coverMedia,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.QualityRatingLabel == "" {
		p.QualityRatingLabel = DefaultQualityLabel
	}
	if p.PerformanceRatingLabel == "" {
		p.PerformanceRatingLabel = DefaultPerformanceLabel
	}
	if p.ValueRatingLabel == "" {
		p.ValueRatingLabel = DefaultValueLabel
	}
	return nil
}

// HasDiscount reports whether the special price is an actual discount. A
// special price at or above the normal price is ignored for display.
func (p *Product) HasDiscount() bool {
	return p.SpecialPrice != nil && *p.SpecialPrice < p.NormalPrice
}
