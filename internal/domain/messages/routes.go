package messages

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	msgGroup := rg.Group("/private-messages")
	{
		msgGroup.POST("", h.Send)
		msgGroup.POST("/broadcast", h.Broadcast)
		msgGroup.GET("/unread-counts", h.UnreadCounts)
		msgGroup.GET("/:userId", h.Conversation)
		msgGroup.PUT("/:userId/mark-read", h.MarkRead)
	}
}
