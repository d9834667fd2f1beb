package controllers

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tonipcv/adm-news/metrics"
	"github.com/tonipcv/adm-news/services"
	"github.com/tonipcv/adm-news/utils"
)

type UploadController struct {
	storage services.Storage
}

func NewUploadController(storage services.Storage) *UploadController {
	return &UploadController{storage: storage}
}

// POST /upload?filename=
// Тело запроса — сырые байты файла. Уникальность имени — забота клиента.
func (uc *UploadController) Upload(c *gin.Context) {
	// Ограничение по размеру файла, например 10 МБ
	const maxUploadSize = 10 << 20 // 10 MB
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	filename := c.Query("filename")
	if filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "filename is required"})
		return
	}

	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "failed to read request body"})
		return
	}
	if len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "file body is empty"})
		return
	}

	url, err := uc.storage.Upload(c.Request.Context(), filename, c.GetHeader("Content-Type"), bytes.NewReader(data), int64(len(data)))
	if err != nil {
		utils.LogError(err, "upload")
		metrics.UploadsTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "upload failed: " + err.Error()})
		return
	}

	metrics.UploadsTotal.WithLabelValues("success").Inc()
	metrics.UploadBytesTotal.Add(float64(len(data)))
	c.JSON(http.StatusOK, gin.H{"url": url, "success": true})
}
