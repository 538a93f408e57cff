package articles_test

import (
	"testing"

	"storefront-cms/internal/domain/articles"
	"storefront-cms/internal/domain/catalog"
	"storefront-cms/internal/domain/media"
	"storefront-cms/internal/tester"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedArticle(t *testing.T, db *gorm.DB) (articles.Article, media.Media, catalog.Product) {
	t.Helper()

	m := media.Media{URL: "/uploads/cover.jpg"}
	require.NoError(t, db.Create(&m).Error)

	p := catalog.Product{
		Title:            "Demo product",
		NormalPrice:      1990,
		ProductLink:      "https://example.com/p",
		ComparePriceLink: "https://example.com/compare",
		CoverMediaID:     &m.ID,
	}
	require.NoError(t, db.Create(&p).Error)

	a := articles.Article{
		Title:        "Demo article",
		Slug:         "demo-article",
		CoverMediaID: &m.ID,
	}
	require.NoError(t, db.Create(&a).Error)

	return a, m, p
}

func loadBlocks(t *testing.T, db *gorm.DB, articleID string) []articles.ContentBlock {
	t.Helper()
	var blocks []articles.ContentBlock
	require.NoError(t, db.
		Where("article_id = ?", articleID).
		Order("position ASC").
		Find(&blocks).Error)
	return blocks
}

func TestReplaceAllPersistsSubmittedSetInOrder(t *testing.T) {
	db := tester.DB(t)
	article, m, p := seedArticle(t, db)

	inputs := []articles.BlockInput{
		{Type: articles.BlockText, Value: "intro", Order: 1},
		{Type: articles.BlockImage, Value: m.ID, Order: 2},
		{Type: articles.BlockProduct, Value: p.ID, ProductTag: "Best", Order: 3},
	}
	blocks, err := articles.BuildBlocks(inputs)
	require.NoError(t, err)

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return articles.ReplaceAll(tx, article.ID, blocks)
	}))

	got := loadBlocks(t, db, article.ID)
	require.Len(t, got, 3)

	assert.Equal(t, articles.BlockText, got[0].Type)
	assert.Equal(t, "intro", got[0].Value())
	assert.Equal(t, articles.BlockImage, got[1].Type)
	assert.Equal(t, m.ID, got[1].Value())
	assert.Equal(t, articles.BlockProduct, got[2].Type)
	assert.Equal(t, p.ID, got[2].Value())
	require.NotNil(t, got[2].ProductTag)
	assert.Equal(t, "Best", *got[2].ProductTag)

	for i, b := range got {
		assert.Equal(t, i+1, b.Order)
	}
}

func TestReplaceAllRemovesOriginalBlocks(t *testing.T) {
	db := tester.DB(t)
	article, m, _ := seedArticle(t, db)

	first, err := articles.BuildBlocks([]articles.BlockInput{
		{Type: articles.BlockText, Value: "one", Order: 1},
		{Type: articles.BlockImage, Value: m.ID, Order: 2},
		{Type: articles.BlockText, Value: "three", Order: 3},
	})
	require.NoError(t, err)
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return articles.ReplaceAll(tx, article.ID, first)
	}))

	// Drop the middle block, as the editor would on save.
	second, err := articles.BuildBlocks([]articles.BlockInput{
		{Type: articles.BlockText, Value: "one", Order: 1},
		{Type: articles.BlockText, Value: "three", Order: 3},
	})
	require.NoError(t, err)
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return articles.ReplaceAll(tx, article.ID, second)
	}))

	got := loadBlocks(t, db, article.ID)
	require.Len(t, got, 2)
	assert.Equal(t, "one", got[0].Value())
	assert.Equal(t, "three", got[1].Value())
	assert.Equal(t, 1, got[0].Order)
	assert.Equal(t, 2, got[1].Order)
}

func TestReplaceAllRollsBackOnDanglingReference(t *testing.T) {
	db := tester.DB(t)
	article, _, _ := seedArticle(t, db)

	original, err := articles.BuildBlocks([]articles.BlockInput{
		{Type: articles.BlockText, Value: "keep me", Order: 1},
	})
	require.NoError(t, err)
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return articles.ReplaceAll(tx, article.ID, original)
	}))

	// Valid shape but the media row does not exist.
	replacement, err := articles.BuildBlocks([]articles.BlockInput{
		{Type: articles.BlockText, Value: "new text", Order: 1},
		{Type: articles.BlockImage, Value: uuid.NewString(), Order: 2},
	})
	require.NoError(t, err)

	err = db.Transaction(func(tx *gorm.DB) error {
		return articles.ReplaceAll(tx, article.ID, replacement)
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)

	// The original set survives untouched.
	got := loadBlocks(t, db, article.ID)
	require.Len(t, got, 1)
	assert.Equal(t, "keep me", got[0].Value())
}

func TestReplaceAllLastWriteWins(t *testing.T) {
	db := tester.DB(t)
	article, m, _ := seedArticle(t, db)

	editorA, err := articles.BuildBlocks([]articles.BlockInput{
		{Type: articles.BlockText, Value: "editor A intro", Order: 1},
		{Type: articles.BlockImage, Value: m.ID, Order: 2},
	})
	require.NoError(t, err)
	editorB, err := articles.BuildBlocks([]articles.BlockInput{
		{Type: articles.BlockText, Value: "editor B rewrite", Order: 1},
	})
	require.NoError(t, err)

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return articles.ReplaceAll(tx, article.ID, editorA)
	}))
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return articles.ReplaceAll(tx, article.ID, editorB)
	}))

	got := loadBlocks(t, db, article.ID)
	require.Len(t, got, 1)
	assert.Equal(t, "editor B rewrite", got[0].Value())
}

func TestReplaceAllEmptySetClearsArticle(t *testing.T) {
	db := tester.DB(t)
	article, _, _ := seedArticle(t, db)

	blocks, err := articles.BuildBlocks([]articles.BlockInput{
		{Type: articles.BlockText, Value: "soon gone", Order: 1},
	})
	require.NoError(t, err)
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return articles.ReplaceAll(tx, article.ID, blocks)
	}))

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return articles.ReplaceAll(tx, article.ID, nil)
	}))

	assert.Empty(t, loadBlocks(t, db, article.ID))
}
