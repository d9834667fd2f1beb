package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tonipcv/adm-news/metrics"
	"github.com/tonipcv/adm-news/models"
	"github.com/tonipcv/adm-news/utils"
)

type newsPayload struct {
	Title   string  `json:"title"`
	Summary string  `json:"summary"`
	Content string  `json:"content"`
	Image   *string `json:"image"`
	Video   *string `json:"video"`
	IsPro   bool    `json:"isPro"`
}

type NewsController struct{}

func NewNewsController() *NewsController {
	return &NewsController{}
}

// validate проверяет обязательные поля, пустая строка не допускается
func (p *newsPayload) validate() string {
	if strings.TrimSpace(p.Title) == "" || strings.TrimSpace(p.Content) == "" {
		return "title and content are required"
	}
	return ""
}

// GET /articles?limit=&offset=
func (nc *NewsController) List(c *gin.Context) {
	q := utils.GetDB().Model(&models.News{}).Order("published_at DESC")

	// нечисловые limit/offset игнорируются
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		q = q.Limit(limit)
	}
	if offset, err := strconv.Atoi(c.Query("offset")); err == nil && offset > 0 {
		q = q.Offset(offset)
	}

	items := []models.News{}
	if err := q.Find(&items).Error; err != nil {
		utils.LogError(err, "news list")
		metrics.NewsOperationsTotal.WithLabelValues("list", "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "store unavailable: " + err.Error()})
		return
	}

	metrics.NewsOperationsTotal.WithLabelValues("list", "success").Inc()
	c.JSON(http.StatusOK, gin.H{"success": true, "data": items})
}

// GET /articles/:id
func (nc *NewsController) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid id"})
		return
	}

	var item models.News
	if err := utils.GetDB().First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "news not found"})
			return
		}
		utils.LogError(err, "news get")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "store unavailable: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}

// POST /articles
func (nc *NewsController) Create(c *gin.Context) {
	var req newsPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
		return
	}

	item := models.News{
		Title:       req.Title,
		Summary:     req.Summary,
		Content:     req.Content,
		Image:       req.Image,
		Video:       req.Video,
		PublishedAt: time.Now(),
		IsPro:       req.IsPro,
	}
	if err := utils.GetDB().Create(&item).Error; err != nil {
		utils.LogError(err, "news create")
		metrics.NewsOperationsTotal.WithLabelValues("create", "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "store unavailable: " + err.Error()})
		return
	}

	metrics.NewsOperationsTotal.WithLabelValues("create", "success").Inc()
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": item})
}

// PUT /articles?id=
// Полная замена изменяемых полей, id и publishedAt не трогаем
func (nc *NewsController) Update(c *gin.Context) {
	idStr := c.Query("id")
	if idStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "id is required"})
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid id"})
		return
	}

	var req newsPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
		return
	}

	db := utils.GetDB()
	var item models.News
	if err := db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "news not found"})
			return
		}
		utils.LogError(err, "news update")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "store unavailable: " + err.Error()})
		return
	}

	item.Title = req.Title
	item.Summary = req.Summary
	item.Content = req.Content
	item.Image = req.Image
	item.Video = req.Video
	item.IsPro = req.IsPro

	if err := db.Save(&item).Error; err != nil {
		utils.LogError(err, "news update")
		metrics.NewsOperationsTotal.WithLabelValues("update", "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "store unavailable: " + err.Error()})
		return
	}

	metrics.NewsOperationsTotal.WithLabelValues("update", "success").Inc()
	c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}

// DELETE /articles?id=
// Удаление несуществующего id отвечает 404, а не generic 500
func (nc *NewsController) Delete(c *gin.Context) {
	idStr := c.Query("id")
	if idStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "id is required"})
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid id"})
		return
	}

	db := utils.GetDB()
	var item models.News
	if err := db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "news not found"})
			return
		}
		utils.LogError(err, "news delete")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "store unavailable: " + err.Error()})
		return
	}

	if err := db.Delete(&models.News{}, id).Error; err != nil {
		utils.LogError(err, "news delete")
		metrics.NewsOperationsTotal.WithLabelValues("delete", "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "store unavailable: " + err.Error()})
		return
	}

	metrics.NewsOperationsTotal.WithLabelValues("delete", "success").Inc()
	c.JSON(http.StatusOK, gin.H{"success": true})
}
