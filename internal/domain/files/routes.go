package files

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	fileGroup := rg.Group("/files")
	{
		fileGroup.GET("", h.List)
		fileGroup.POST("/upload", h.Upload)
		fileGroup.GET("/profile/:filename", h.ProfilePicture)
		fileGroup.DELETE("/:id", h.Delete)
		fileGroup.PUT("/:id/status", h.SetStatus)
		fileGroup.GET("/:id/comments", h.ListComments)
		fileGroup.POST("/:id/comments", h.AddComment)
		fileGroup.GET("/:id/preview", h.Preview)
	}
}
