package routes

import (
	"github.com/tonipcv/adm-news/controllers"

	"github.com/gin-gonic/gin"
)

func SetupNewsRoutes(r *gin.Engine) {
	newsController := controllers.NewNewsController()
	grp := r.Group("/articles")
	{
		grp.GET("", newsController.List)
		grp.GET("/:id", newsController.GetByID)
		grp.POST("", newsController.Create)
		grp.PUT("", newsController.Update) // id в query-параметре
		grp.DELETE("", newsController.Delete)
	}
}
