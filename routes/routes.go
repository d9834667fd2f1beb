package routes

import (
	"github.com/tonipcv/adm-news/middleware"
	"github.com/tonipcv/adm-news/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter создаёт gin.Engine, регистрирует все маршруты и возвращает роутер
func SetupRouter(storage services.Storage) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.MetricsMiddleware())

	// CORS middleware ДО роутов: публичное чтение, мутации только same-origin
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "adm-news"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	SetupNewsRoutes(r)
	SetupUploadRoutes(r, storage)
	SetupWebRoutes(r)

	return r
}
