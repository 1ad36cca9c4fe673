package tabs

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	tabGroup := rg.Group("/custom-tabs")
	{
		tabGroup.GET("/:roleGroup", h.List)
		tabGroup.POST("/:roleGroup", h.Create)
	}
}
