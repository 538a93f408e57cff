package contents_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-cms/database"
	contentsapi "storefront-cms/internal/api/contents"
	"storefront-cms/internal/domain/articles"
	"storefront-cms/internal/domain/media"
	"storefront-cms/internal/tester"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func router(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	database.DB = tester.DB(t)

	r := gin.New()
	r.POST("/api/article-contents", contentsapi.CreateBlock)
	r.GET("/api/article-contents/:id", contentsapi.GetBlock)
	r.PUT("/api/article-contents/:id", contentsapi.UpdateBlock)
	r.DELETE("/api/article-contents/:id", contentsapi.DeleteBlock)
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

func seedArticle(t *testing.T) (articles.Article, media.Media) {
	t.Helper()

	m := media.Media{URL: "/uploads/pic.jpg"}
	require.NoError(t, database.DB.Create(&m).Error)

	a := articles.Article{Title: "Host", Slug: "host", CoverMediaID: &m.ID}
	require.NoError(t, database.DB.Create(&a).Error)
	return a, m
}

func TestCreateBlockRequiresArticleTypeAndOrder(t *testing.T) {
	r := router(t)

	w := doJSON(t, r, http.MethodPost, "/api/article-contents", gin.H{
		"type": "TEXT",
		"text": "orphan",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Article ID, type, and order are required")
}

func TestCreateBlockStoresSubmittedOrder(t *testing.T) {
	r := router(t)
	article, _ := seedArticle(t)

	w := doJSON(t, r, http.MethodPost, "/api/article-contents", gin.H{
		"articleId": article.ID,
		"type":      "TEXT",
		"text":      "standalone paragraph",
		"order":     7,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var block articles.ContentBlock
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &block))
	assert.Equal(t, 7, block.Order)
	require.NotNil(t, block.Text)
	assert.Equal(t, "standalone paragraph", *block.Text)
	assert.Nil(t, block.MediaID)
	assert.Nil(t, block.ProductID)
}

func TestUpdateBlockTypeChangeClearsOldValue(t *testing.T) {
	r := router(t)
	article, m := seedArticle(t)

	created := doJSON(t, r, http.MethodPost, "/api/article-contents", gin.H{
		"articleId": article.ID,
		"type":      "TEXT",
		"text":      "was text",
		"order":     1,
	})
	require.Equal(t, http.StatusCreated, created.Code)

	var block articles.ContentBlock
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &block))

	w := doJSON(t, r, http.MethodPut, "/api/article-contents/"+block.ID, gin.H{
		"type":    "IMAGE",
		"mediaId": m.ID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stored articles.ContentBlock
	require.NoError(t, database.DB.First(&stored, "id = ?", block.ID).Error)
	assert.Equal(t, articles.BlockImage, stored.Type)
	assert.Nil(t, stored.Text)
	require.NotNil(t, stored.MediaID)
	assert.Equal(t, m.ID, *stored.MediaID)
	// Order was omitted from the request and must survive.
	assert.Equal(t, 1, stored.Order)
}

func TestUpdateBlockMissingRequiredFieldIsRejected(t *testing.T) {
	r := router(t)
	article, _ := seedArticle(t)

	created := doJSON(t, r, http.MethodPost, "/api/article-contents", gin.H{
		"articleId": article.ID,
		"type":      "TEXT",
		"text":      "fine",
		"order":     1,
	})
	require.Equal(t, http.StatusCreated, created.Code)

	var block articles.ContentBlock
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &block))

	w := doJSON(t, r, http.MethodPut, "/api/article-contents/"+block.ID, gin.H{
		"type": "PRODUCT",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Product ID is required for PRODUCT type")
}

func TestDeleteBlock(t *testing.T) {
	r := router(t)
	article, _ := seedArticle(t)

	created := doJSON(t, r, http.MethodPost, "/api/article-contents", gin.H{
		"articleId": article.ID,
		"type":      "TEXT",
		"text":      "short lived",
		"order":     1,
	})
	require.Equal(t, http.StatusCreated, created.Code)

	var block articles.ContentBlock
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &block))

	assert.Equal(t, http.StatusOK,
		doJSON(t, r, http.MethodDelete, "/api/article-contents/"+block.ID, nil).Code)
	assert.Equal(t, http.StatusNotFound,
		doJSON(t, r, http.MethodDelete, "/api/article-contents/"+block.ID, nil).Code)
	assert.Equal(t, http.StatusNotFound,
		doJSON(t, r, http.MethodGet, "/api/article-contents/"+block.ID, nil).Code)
}
