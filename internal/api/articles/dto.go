package articles

import (
	domain "storefront-cms/internal/domain/articles"
)

// ---------- requests

// SaveArticleRequest is shared by create and update; update treats the
// contents array as the full replacement set.
type SaveArticleRequest struct {
	Title       string  `json:"title"`
	Slug        string  `json:"slug" binding:"omitempty,slugfmt"`
	Description *string `json:"description"`

	CoverMediaID  string  `json:"coverMediaId"`
	BannerMediaID *string `json:"bannerMediaId"`

	Contents []domain.BlockInput `json:"contents"`
}

// ---------- responses

// ArticleDetailDTO is the edit view: raw metadata plus hydrated blocks.
type ArticleDetailDTO struct {
	Article  domain.Article     `json:"article"`
	Contents []domain.BlockView `json:"contents"`
}
