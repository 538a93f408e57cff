package products

import domain "storefront-cms/internal/domain/catalog"

// Rating axes are bounded 0..5 here; the original UI assumed five stars but
// never enforced it server-side.
type CreateProductRequest struct {
	Title string `json:"title"`

	NormalPrice  float64  `json:"normalPrice" binding:"omitempty,gt=0"`
	SpecialPrice *float64 `json:"specialPrice" binding:"omitempty,gt=0"`

	MainRating        int `json:"mainRating" binding:"min=0,max=5"`
	QualityRating     int `json:"qualityRating" binding:"min=0,max=5"`
	PerformanceRating int `json:"performanceRating" binding:"min=0,max=5"`
	ValueRating       int `json:"valueRating" binding:"min=0,max=5"`

	QualityRatingLabel     string `json:"qualityRatingLabel"`
	PerformanceRatingLabel string `json:"performanceRatingLabel"`
	ValueRatingLabel       string `json:"valueRatingLabel"`

	Description *string `json:"description"`

	ProductLink      string `json:"productLink"`
	ComparePriceLink string `json:"comparePriceLink"`

	CoverMediaID string `json:"coverMediaId"`
}

type UpdateProductRequest struct {
	Title *string `json:"title"`

	NormalPrice  *float64 `json:"normalPrice" binding:"omitempty,gt=0"`
	SpecialPrice *float64 `json:"specialPrice"`

	MainRating        *int `json:"mainRating" binding:"omitempty,min=0,max=5"`
	QualityRating     *int `json:"qualityRating" binding:"omitempty,min=0,max=5"`
	PerformanceRating *int `json:"performanceRating" binding:"omitempty,min=0,max=5"`
	ValueRating       *int `json:"valueRating" binding:"omitempty,min=0,max=5"`

	QualityRatingLabel     *string `json:"qualityRatingLabel"`
	PerformanceRatingLabel *string `json:"performanceRatingLabel"`
	ValueRatingLabel       *string `json:"valueRatingLabel"`

	Description *string `json:"description"`

	ProductLink      *string `json:"productLink"`
	ComparePriceLink *string `json:"comparePriceLink"`

	CoverMediaID *string `json:"coverMediaId"`
}

func (r *UpdateProductRequest) apply(p *domain.Product) {
	if r.Title != nil {
		p.Title = *r.Title
	}
	if r.NormalPrice != nil {
		p.NormalPrice = *r.NormalPrice
	}
	if r.SpecialPrice != nil {
		p.SpecialPrice = r.SpecialPrice
	}
	if r.MainRating != nil {
		p.MainRating = *r.MainRating
	}
	if r.QualityRating != nil {
		p.QualityRating = *r.QualityRating
	}
	if r.PerformanceRating != nil {
		p.PerformanceRating = *r.PerformanceRating
	}
	if r.ValueRating != nil {
		p.ValueRating = *r.ValueRating
	}
	if r.QualityRatingLabel != nil {
		p.QualityRatingLabel = *r.QualityRatingLabel
	}
	if r.PerformanceRatingLabel != nil {
		p.PerformanceRatingLabel = *r.PerformanceRatingLabel
	}
	if r.ValueRatingLabel != nil {
		p.ValueRatingLabel = *r.ValueRatingLabel
	}
	if r.Description != nil {
		p.Description = r.Description
	}
	if r.ProductLink != nil {
		p.ProductLink = *r.ProductLink
	}
	if r.ComparePriceLink != nil {
		p.ComparePriceLink = *r.ComparePriceLink
	}
	if r.CoverMediaID != nil {
		p.CoverMediaID = r.CoverMediaID
	}
}
