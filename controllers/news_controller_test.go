package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tonipcv/adm-news/database"
	"github.com/tonipcv/adm-news/models"
	"github.com/tonipcv/adm-news/routes"
	"github.com/tonipcv/adm-news/utils"
)

type newsEnvelope struct {
	Success bool        `json:"success"`
	Data    models.News `json:"data"`
	Error   string      `json:"error"`
}

type listEnvelope struct {
	Success bool          `json:"success"`
	Data    []models.News `json:"data"`
	Error   string        `json:"error"`
}

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *stubStorage) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	utils.SetDB(db)

	storage := &stubStorage{}
	return routes.SetupRouter(storage), db, storage
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req, _ := http.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateNews(t *testing.T) {
	r, _, _ := setupTestRouter(t)

	start := time.Now()
	w := doJSON(r, "POST", "/articles", map[string]any{"title": "A", "content": "B"})
	assert.Equal(t, 201, w.Code)

	var resp newsEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Greater(t, resp.Data.ID, uint(0))
	assert.Equal(t, "A", resp.Data.Title)
	assert.Equal(t, "", resp.Data.Summary)
	assert.Nil(t, resp.Data.Image)
	assert.Nil(t, resp.Data.Video)
	assert.False(t, resp.Data.IsPro)
	assert.False(t, resp.Data.PublishedAt.Before(start.Add(-time.Second)))
}

func TestCreateNewsValidation(t *testing.T) {
	r, _, _ := setupTestRouter(t)

	cases := []map[string]any{
		{"content": "B"},
		{"title": "A"},
		{"title": "", "content": "B"},
		{"title": "  ", "content": "B"},
		{"title": "A", "content": ""},
	}
	for _, body := range cases {
		w := doJSON(r, "POST", "/articles", body)
		assert.Equal(t, 400, w.Code)
		assert.Contains(t, w.Body.String(), "title and content are required")
	}

	// битый JSON
	req, _ := http.NewRequest("POST", "/articles", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, 400, w.Code)
}

func TestListNewsOrderingAndPagination(t *testing.T) {
	r, db, _ := setupTestRouter(t)

	now := time.Now()
	for i := 1; i <= 3; i++ {
		item := models.News{
			Title:       fmt.Sprintf("title-%d", i),
			Content:     "body",
			PublishedAt: now.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(&item).Error)
	}

	w := doJSON(r, "GET", "/articles", nil)
	assert.Equal(t, 200, w.Code)

	var resp listEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 3)
	assert.Equal(t, "title-3", resp.Data[0].Title)
	assert.Equal(t, "title-2", resp.Data[1].Title)
	assert.Equal(t, "title-1", resp.Data[2].Title)

	w = doJSON(r, "GET", "/articles?limit=2", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "title-3", resp.Data[0].Title)

	w = doJSON(r, "GET", "/articles?limit=1&offset=1", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "title-2", resp.Data[0].Title)

	// нечисловые параметры игнорируются
	w = doJSON(r, "GET", "/articles?limit=abc&offset=xyz", nil)
	assert.Equal(t, 200, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 3)
}

func TestGetNewsByID(t *testing.T) {
	r, db, _ := setupTestRouter(t)

	w := doJSON(r, "GET", "/articles/abc", nil)
	assert.Equal(t, 400, w.Code)

	w = doJSON(r, "GET", "/articles/999", nil)
	assert.Equal(t, 404, w.Code)

	item := models.News{Title: "hello", Content: "world", PublishedAt: time.Now()}
	require.NoError(t, db.Create(&item).Error)

	w = doJSON(r, "GET", fmt.Sprintf("/articles/%d", item.ID), nil)
	assert.Equal(t, 200, w.Code)

	var resp newsEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "hello", resp.Data.Title)
}

func TestUpdateNews(t *testing.T) {
	r, db, _ := setupTestRouter(t)

	body := map[string]any{"title": "A2", "content": "B2"}

	w := doJSON(r, "PUT", "/articles", body)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "id is required")

	w = doJSON(r, "PUT", "/articles?id=999", body)
	assert.Equal(t, 404, w.Code)

	published := time.Now().Add(-time.Hour)
	img := "http://example.com/old.png"
	item := models.News{Title: "A", Summary: "s", Content: "B", Image: &img, PublishedAt: published, IsPro: true}
	require.NoError(t, db.Create(&item).Error)

	w = doJSON(r, "PUT", fmt.Sprintf("/articles?id=%d", item.ID), map[string]any{"title": "", "content": "B2"})
	assert.Equal(t, 400, w.Code)

	// полная замена изменяемых полей
	w = doJSON(r, "PUT", fmt.Sprintf("/articles?id=%d", item.ID), body)
	assert.Equal(t, 200, w.Code)

	var resp newsEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, item.ID, resp.Data.ID)
	assert.Equal(t, "A2", resp.Data.Title)
	assert.Equal(t, "B2", resp.Data.Content)
	assert.Equal(t, "", resp.Data.Summary)
	assert.Nil(t, resp.Data.Image)
	assert.False(t, resp.Data.IsPro)
	assert.WithinDuration(t, published, resp.Data.PublishedAt, time.Second)

	var stored models.News
	require.NoError(t, db.First(&stored, item.ID).Error)
	assert.Equal(t, "A2", stored.Title)
	assert.Nil(t, stored.Image)
}

func TestDeleteNews(t *testing.T) {
	r, db, _ := setupTestRouter(t)

	w := doJSON(r, "DELETE", "/articles", nil)
	assert.Equal(t, 400, w.Code)

	w = doJSON(r, "DELETE", "/articles?id=999", nil)
	assert.Equal(t, 404, w.Code)

	item := models.News{Title: "A", Content: "B", PublishedAt: time.Now()}
	require.NoError(t, db.Create(&item).Error)

	w = doJSON(r, "DELETE", fmt.Sprintf("/articles?id=%d", item.ID), nil)
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)

	w = doJSON(r, "GET", fmt.Sprintf("/articles/%d", item.ID), nil)
	assert.Equal(t, 404, w.Code)
}

// полный сценарий: create -> update -> get -> delete -> 404
func TestNewsLifecycle(t *testing.T) {
	r, _, _ := setupTestRouter(t)

	w := doJSON(r, "POST", "/articles", map[string]any{"title": "A", "content": "B"})
	require.Equal(t, 201, w.Code)

	var created newsEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Greater(t, created.Data.ID, uint(0))
	assert.Equal(t, "", created.Data.Summary)
	assert.Nil(t, created.Data.Image)

	w = doJSON(r, "PUT", fmt.Sprintf("/articles?id=%d", created.Data.ID), map[string]any{"title": "A2", "content": "B2"})
	require.Equal(t, 200, w.Code)

	w = doJSON(r, "GET", fmt.Sprintf("/articles/%d", created.Data.ID), nil)
	require.Equal(t, 200, w.Code)
	var fetched newsEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, "A2", fetched.Data.Title)

	w = doJSON(r, "DELETE", fmt.Sprintf("/articles?id=%d", created.Data.ID), nil)
	require.Equal(t, 200, w.Code)

	w = doJSON(r, "GET", fmt.Sprintf("/articles/%d", created.Data.ID), nil)
	assert.Equal(t, 404, w.Code)
}

func TestListCORSHeader(t *testing.T) {
	r, _, _ := setupTestRouter(t)

	req, _ := http.NewRequest("GET", "/articles", nil)
	req.Header.Set("Origin", "http://elsewhere.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
