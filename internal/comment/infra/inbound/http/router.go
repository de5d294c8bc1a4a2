package http

import "github.com/gin-gonic/gin"

func RegisterCommentRoutes(r *gin.Engine, handler *CommentHandler) {
	comments := r.Group("/api/comments")
	{
		comments.POST("", handler.Create)
	}
}
