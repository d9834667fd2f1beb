package web

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonipcv/adm-news/models"
)

func TestHomeFeed(t *testing.T) {
	img := "http://minio.test/katsu/pic.png"
	items := []models.News{
		{ID: 2, Title: "Second", Summary: "sum", Image: &img, PublishedAt: time.Now(), IsPro: true},
		{ID: 1, Title: "First & last", PublishedAt: time.Now().Add(-time.Hour)},
	}

	var sb strings.Builder
	require.NoError(t, HomeFeed(items).Render(&sb))
	html := sb.String()

	assert.Contains(t, html, `href="/news/2"`)
	assert.Contains(t, html, "Second")
	assert.Contains(t, html, "PRO")
	assert.Contains(t, html, `src="http://minio.test/katsu/pic.png"`)
	// текст экранируется
	assert.Contains(t, html, "First &amp; last")
}

func TestHomeFeedEmpty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, HomeFeed(nil).Render(&sb))
	assert.Contains(t, sb.String(), "No articles yet.")
}

func TestNewsArticleVideoEmbed(t *testing.T) {
	video := "https://player.example.com/embed/42"
	n := models.News{ID: 7, Title: "With video", Content: "# body", Video: &video, PublishedAt: time.Now()}

	var sb strings.Builder
	require.NoError(t, NewsArticle(n).Render(&sb))
	html := sb.String()

	assert.Contains(t, html, "<iframe")
	assert.Contains(t, html, `src="https://player.example.com/embed/42"`)
	assert.Contains(t, html, "# body")
}

func TestAdminConsole(t *testing.T) {
	items := []models.News{{ID: 3, Title: "Editable", Content: "c", PublishedAt: time.Now()}}

	var sb strings.Builder
	require.NoError(t, AdminConsole(items).Render(&sb))
	html := sb.String()

	assert.Contains(t, html, `data-id="3"`)
	assert.Contains(t, html, `id="editor-modal"`)
	assert.Contains(t, html, "/upload?filename=")
}
