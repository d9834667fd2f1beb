package web

import (
	"errors"
	"net/http"
	"strconv"

	g "github.com/maragudk/gomponents"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tonipcv/adm-news/models"
	"github.com/tonipcv/adm-news/utils"
)

// GET /
func HomePage(c *gin.Context) {
	var items []models.News
	if err := utils.GetDB().Order("published_at DESC").Find(&items).Error; err != nil {
		utils.LogError(err, "home page")
		c.String(http.StatusInternalServerError, "failed to load")
		return
	}
	render(c, http.StatusOK, HomeFeed(items))
}

// GET /news/:id
func NewsPage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "invalid id")
		return
	}

	var item models.News
	if err := utils.GetDB().First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "news not found")
			return
		}
		utils.LogError(err, "news page")
		c.String(http.StatusInternalServerError, "failed to load")
		return
	}

	render(c, http.StatusOK, NewsArticle(item))
}

// GET /admin
func AdminPage(c *gin.Context) {
	var items []models.News
	if err := utils.GetDB().Order("published_at DESC").Find(&items).Error; err != nil {
		utils.LogError(err, "admin page")
		c.String(http.StatusInternalServerError, "failed to load")
		return
	}
	render(c, http.StatusOK, AdminConsole(items))
}

func render(c *gin.Context, code int, node g.Node) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(code)
	if err := node.Render(c.Writer); err != nil {
		utils.LogError(err, "render page")
	}
}
