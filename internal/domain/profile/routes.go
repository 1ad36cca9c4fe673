package profile

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	profileGroup := rg.Group("/profile")
	{
		profileGroup.GET("", h.Get)
		profileGroup.PUT("", h.Update)
		profileGroup.PUT("/password", h.ChangePassword)
		profileGroup.PUT("/picture", h.UpdatePicture)
	}
}
