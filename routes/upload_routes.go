package routes

import (
	"github.com/tonipcv/adm-news/controllers"
	"github.com/tonipcv/adm-news/services"

	"github.com/gin-gonic/gin"
)

func SetupUploadRoutes(r *gin.Engine, storage services.Storage) {
	uploadController := controllers.NewUploadController(storage)
	r.POST("/upload", uploadController.Upload)
}
