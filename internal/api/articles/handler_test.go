package articles_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-cms/database"
	articlesapi "storefront-cms/internal/api/articles"
	routes "storefront-cms/internal/app/http"
	"storefront-cms/internal/domain/articles"
	"storefront-cms/internal/domain/catalog"
	"storefront-cms/internal/domain/media"
	"storefront-cms/internal/tester"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// router wires the article handlers against a fresh test database, without
// the auth middleware in front of them.
func router(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	database.DB = tester.DB(t)
	routes.RegisterValidators()

	r := gin.New()
	r.GET("/api/articles", articlesapi.ListArticles)
	r.GET("/api/articles/:id", articlesapi.GetArticle)
	r.POST("/api/articles", articlesapi.CreateArticle)
	r.PUT("/api/articles/:id", articlesapi.UpdateArticle)
	r.DELETE("/api/articles/:id", articlesapi.DeleteArticle)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedRefs(t *testing.T) (media.Media, catalog.Product) {
	t.Helper()

	m := media.Media{URL: "/uploads/cover.jpg"}
	require.NoError(t, database.DB.Create(&m).Error)

	p := catalog.Product{
		Title:            "Reviewed product",
		NormalPrice:      990,
		ProductLink:      "https://example.com/p",
		ComparePriceLink: "https://example.com/p/compare",
	}
	require.NoError(t, database.DB.Create(&p).Error)
	return m, p
}

func TestCreateArticleRequiresCoverMedia(t *testing.T) {
	r := router(t)

	w := doJSON(t, r, http.MethodPost, "/api/articles", gin.H{
		"title": "No cover",
		"slug":  "no-cover",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Title, Slug, and Cover Media ID are required")
}

func TestCreateArticleRejectsInvalidBlock(t *testing.T) {
	r := router(t)
	m, _ := seedRefs(t)

	w := doJSON(t, r, http.MethodPost, "/api/articles", gin.H{
		"title":        "Bad block",
		"slug":         "bad-block",
		"coverMediaId": m.ID,
		"contents": []gin.H{
			{"type": "TEXT", "value": "", "order": 1},
		},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Text content is required for TEXT type")
}

func TestCreateArticlePersistsBlocksInOrder(t *testing.T) {
	r := router(t)
	m, p := seedRefs(t)

	w := doJSON(t, r, http.MethodPost, "/api/articles", gin.H{
		"title":        "Full article",
		"slug":         "full-article",
		"coverMediaId": m.ID,
		"contents": []gin.H{
			// Submitted out of order and with gaps; stored dense.
			{"type": "PRODUCT", "value": p.ID, "productTag": "Pick", "order": 9},
			{"type": "TEXT", "value": "intro", "order": 2},
			{"type": "IMAGE", "value": m.ID, "order": 5},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	get := doJSON(t, r, http.MethodGet, "/api/articles/full-article", nil)
	require.Equal(t, http.StatusOK, get.Code)

	var detail articlesapi.ArticleDetailDTO
	require.NoError(t, json.Unmarshal(get.Body.Bytes(), &detail))
	require.Len(t, detail.Contents, 3)

	assert.Equal(t, articles.BlockText, detail.Contents[0].Type)
	assert.Equal(t, "intro", detail.Contents[0].Value)
	assert.Equal(t, articles.BlockImage, detail.Contents[1].Type)
	assert.Equal(t, m.ID, detail.Contents[1].Value)
	assert.Equal(t, articles.BlockProduct, detail.Contents[2].Type)
	assert.Equal(t, p.ID, detail.Contents[2].Value)
	assert.Equal(t, "Pick", detail.Contents[2].ProductTag)

	for i, block := range detail.Contents {
		assert.Equal(t, i+1, block.Order)
	}
}

func TestCreateArticleDuplicateSlugConflicts(t *testing.T) {
	r := router(t)
	m, _ := seedRefs(t)

	body := gin.H{
		"title":        "First",
		"slug":         "same-slug",
		"coverMediaId": m.ID,
	}
	require.Equal(t, http.StatusCreated, doJSON(t, r, http.MethodPost, "/api/articles", body).Code)

	w := doJSON(t, r, http.MethodPost, "/api/articles", body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Article with this slug already exists")
}

func TestCreateArticleRejectsMalformedSlug(t *testing.T) {
	r := router(t)
	m, _ := seedRefs(t)

	w := doJSON(t, r, http.MethodPost, "/api/articles", gin.H{
		"title":        "Bad slug",
		"slug":         "Not A Slug!",
		"coverMediaId": m.ID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateArticleReplacesContents(t *testing.T) {
	r := router(t)
	m, p := seedRefs(t)

	created := doJSON(t, r, http.MethodPost, "/api/articles", gin.H{
		"title":        "Before",
		"slug":         "before",
		"coverMediaId": m.ID,
		"contents": []gin.H{
			{"type": "TEXT", "value": "old intro", "order": 1},
			{"type": "IMAGE", "value": m.ID, "order": 2},
			{"type": "PRODUCT", "value": p.ID, "order": 3},
		},
	})
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())

	var article articles.Article
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &article))

	updated := doJSON(t, r, http.MethodPut, "/api/articles/"+article.ID, gin.H{
		"title":        "After",
		"slug":         "after",
		"coverMediaId": m.ID,
		"contents": []gin.H{
			{"type": "TEXT", "value": "new intro", "order": 1},
		},
	})
	require.Equal(t, http.StatusOK, updated.Code, updated.Body.String())

	get := doJSON(t, r, http.MethodGet, "/api/articles/after", nil)
	require.Equal(t, http.StatusOK, get.Code)

	var detail articlesapi.ArticleDetailDTO
	require.NoError(t, json.Unmarshal(get.Body.Bytes(), &detail))

	assert.Equal(t, "After", detail.Article.Title)
	require.Len(t, detail.Contents, 1)
	assert.Equal(t, "new intro", detail.Contents[0].Value)
	assert.Equal(t, 1, detail.Contents[0].Order)

	// The old slug no longer resolves.
	gone := doJSON(t, r, http.MethodGet, "/api/articles/before", nil)
	assert.Equal(t, http.StatusNotFound, gone.Code)
}

func TestDeleteArticleRemovesBlocks(t *testing.T) {
	r := router(t)
	m, _ := seedRefs(t)

	created := doJSON(t, r, http.MethodPost, "/api/articles", gin.H{
		"title":        "Doomed",
		"slug":         "doomed",
		"coverMediaId": m.ID,
		"contents": []gin.H{
			{"type": "TEXT", "value": "body", "order": 1},
		},
	})
	require.Equal(t, http.StatusCreated, created.Code)

	var article articles.Article
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &article))

	w := doJSON(t, r, http.MethodDelete, "/api/articles/"+article.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var blocks int64
	require.NoError(t, database.DB.Model(&articles.ContentBlock{}).
		Where("article_id = ?", article.ID).Count(&blocks).Error)
	assert.Zero(t, blocks)

	assert.Equal(t, http.StatusNotFound,
		doJSON(t, r, http.MethodGet, "/api/articles/doomed", nil).Code)
}
