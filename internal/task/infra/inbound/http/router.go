package http

import "github.com/gin-gonic/gin"

func RegisterTaskRoutes(r *gin.Engine, handler *TaskHandler) {
	tasks := r.Group("/api/tasks")
	{
		tasks.GET("/:id", handler.GetByID)
		tasks.GET("/:id/history", handler.GetHistory)
		tasks.GET("/project/:projectId", handler.GetByProjectID)
		tasks.POST("", handler.Create)
		tasks.PUT("/:id", handler.Update)
		tasks.DELETE("/:id", handler.Delete)
	}
}
