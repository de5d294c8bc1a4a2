package http

import "github.com/gin-gonic/gin"

func RegisterReportRoutes(r *gin.Engine, handler *ReportHandler) {
	reports := r.Group("/api/reports")
	{
		reports.GET("/users/:userId/tasks/:days", handler.CompletedTasksByUser)
		reports.GET("/top/tasks-with-most-comments/:days", handler.TopTasksByComments)
		reports.GET("/top/projects-with-completed-tasks/:days", handler.TopProjectsByCompletedTasks)
	}
}
