package notifications

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	notifGroup := rg.Group("/notifications")
	{
		notifGroup.GET("", h.List)
		notifGroup.POST("", h.Create)
		notifGroup.PUT("/read-all", h.MarkAllRead)
		notifGroup.PUT("/:id/read", h.MarkRead)
		notifGroup.DELETE("/:id", h.Delete)
		notifGroup.DELETE("", h.DeleteAll)
	}
}
