package folders

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	folderGroup := rg.Group("/folders")
	{
		folderGroup.POST("", h.Create)
		folderGroup.GET("/:roleGroup", h.List)
		folderGroup.DELETE("/delete/:id", h.Delete)
	}
}
