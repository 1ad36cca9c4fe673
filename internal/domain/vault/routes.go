package vault

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	vaultGroup := rg.Group("/vault")
	{
		vaultGroup.POST("/access", h.Access)
		vaultGroup.GET("/collectors", h.Collectors)

		vaultGroup.GET("/custom-tabs", h.ListTabs)
		vaultGroup.POST("/custom-tabs", h.CreateTab)
		vaultGroup.GET("/custom-tabs/:collectorId", h.ListTabsFor)
		vaultGroup.POST("/custom-tabs/:collectorId", h.CreateTabFor)
		vaultGroup.DELETE("/custom-tabs/:collectorId", h.DeleteTabFor)

		vaultGroup.GET("/files", h.ListFiles)
		vaultGroup.POST("/files/upload", h.Upload)
		vaultGroup.GET("/files/:id", h.GetFile)
		vaultGroup.DELETE("/files/:id", h.DeleteFile)
		vaultGroup.GET("/files/:id/download", h.Download)
		vaultGroup.GET("/files/:id/comments", h.ListComments)
		vaultGroup.POST("/files/:id/comments", h.AddComment)

		vaultGroup.GET("/folders", h.ListFolders)
		vaultGroup.POST("/folders", h.CreateFolder)
		vaultGroup.DELETE("/folders/delete/:id", h.DeleteFolder)
	}
}
