package chat

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	chatGroup := rg.Group("/chat")
	{
		chatGroup.GET("/messages", h.List)
		chatGroup.POST("/messages", h.Post)
		chatGroup.GET("/ws", h.Serve)
	}
}
