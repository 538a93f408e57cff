package storefront

import (
	domain "storefront-cms/internal/domain/articles"
	"storefront-cms/internal/domain/catalog"
	"storefront-cms/internal/domain/slides"
)

type HomeDTO struct {
	Slides   []slides.Slide    `json:"slides"`
	Products []catalog.Product `json:"products"`
	Articles []domain.Article  `json:"articles"`
}

type ArticlePageDTO struct {
	Article  domain.Article     `json:"article"`
	Contents []domain.BlockView `json:"contents"`
}
