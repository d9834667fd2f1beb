package routes

import (
	"github.com/tonipcv/adm-news/web"

	"github.com/gin-gonic/gin"
)

func SetupWebRoutes(r *gin.Engine) {
	r.GET("/", web.HomePage)
	r.GET("/news/:id", web.NewsPage)
	r.GET("/admin", web.AdminPage)
}
