package http

import "github.com/gin-gonic/gin"

func RegisterProjectRoutes(r *gin.Engine, handler *ProjectHandler) {
	projects := r.Group("/api/projects")
	{
		projects.GET("/:id", handler.GetByID)
		projects.GET("/user/:userId", handler.GetAllByUserID)
		projects.POST("", handler.Create)
		projects.PUT("/:id", handler.Update)
		projects.DELETE("/:id", handler.Delete)
	}
}
