package admin

import (
	"github.com/gin-gonic/gin"

	"fileportal/internal/domain"
	"fileportal/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	adminGroup := rg.Group("/admin", middleware.RequireRole(domain.RoleDeveloper))
	{
		adminGroup.GET("/users", h.List)
		adminGroup.POST("/users", h.Create)
		adminGroup.PUT("/users/:id", h.Update)
		adminGroup.DELETE("/users/:id", h.Delete)
	}
}
