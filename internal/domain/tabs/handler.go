package tabs

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fileportal/internal/domain"
	"fileportal/internal/middleware"
	"fileportal/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	roleGroup := domain.Role(c.Param("roleGroup"))
	tabs, err := h.service.List(c.Request.Context(), roleGroup)
	switch {
	case errors.Is(err, ErrInvalidRole):
		response.Error(c, http.StatusBadRequest, "INVALID_ROLE", "unknown role group")
		return
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list tabs")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tabs": tabs})
}

type createTabRequest struct {
	TabName string `json:"tabName" binding:"required"`
	TabKey  string `json:"tabKey" binding:"required"`
}

func (h *Handler) Create(c *gin.Context) {
	var req createTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err, "tabName and tabKey are required")
		return
	}

	actor := middleware.CurrentUser(c)
	roleGroup := domain.Role(c.Param("roleGroup"))
	tab, err := h.service.Create(c.Request.Context(), actor, roleGroup, req.TabName, req.TabKey)
	switch {
	case errors.Is(err, ErrInvalidRole):
		response.Error(c, http.StatusBadRequest, "INVALID_ROLE", "unknown role group")
		return
	case errors.Is(err, ErrNotPermitted):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "not permitted to manage tabs for this role group")
		return
	case errors.Is(err, ErrEmptyTab):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "tabName and tabKey are required")
		return
	case errors.Is(err, ErrTabExists):
		response.Error(c, http.StatusBadRequest, "TAB_EXISTS", "a tab with this key already exists")
		return
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to create tab")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"tab": tab})
}
