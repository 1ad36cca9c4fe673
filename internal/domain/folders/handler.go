package folders

import (
	"errors"
	"net/http"
	"strconv"

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

type createFolderRequest struct {
	Name       string `json:"name" binding:"required"`
	Path       string `json:"path" binding:"required"`
	Category   string `json:"category" binding:"required"`
	RoleGroup  string `json:"roleGroup" binding:"required"`
	ParentPath string `json:"parentPath"`
}

func (h *Handler) Create(c *gin.Context) {
	var req createFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err, "name, path, category and roleGroup are required")
		return
	}

	actor := middleware.CurrentUser(c)
	folder, err := h.service.Create(c.Request.Context(), actor, CreateInput{
		Name:       req.Name,
		Path:       req.Path,
		Category:   req.Category,
		RoleGroup:  domain.Role(req.RoleGroup),
		ParentPath: req.ParentPath,
	})
	switch {
	case errors.Is(err, ErrNotPermitted):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "only developers and users can create folders")
		return
	case errors.Is(err, ErrInvalidFolder):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "name, path, category and roleGroup are required")
		return
	case errors.Is(err, ErrUnknownCategory):
		response.Error(c, http.StatusBadRequest, "INVALID_CATEGORY", "unknown category for this role group")
		return
	case errors.Is(err, ErrFolderExists):
		response.Error(c, http.StatusBadRequest, "FOLDER_EXISTS", "folder already exists")
		return
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to create folder")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"folder": folder})
}

func (h *Handler) List(c *gin.Context) {
	roleGroup := domain.Role(c.Param("roleGroup"))
	list, err := h.service.List(c.Request.Context(), roleGroup)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list folders")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"folders": list})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid folder id")
		return
	}

	actor := middleware.CurrentUser(c)
	err = h.service.Delete(c.Request.Context(), actor, id)
	switch {
	case errors.Is(err, ErrFolderNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "folder not found")
		return
	case errors.Is(err, ErrNotPermitted):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "you can only delete folders you created")
		return
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to delete folder")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
