package notifications

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

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
	actor := middleware.CurrentUser(c)
	list, unread, err := h.service.List(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list notifications")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"notifications": list, "unreadCount": unread})
}

type createRequest struct {
	UserID    int64  `json:"userId"`
	Type      string `json:"type" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Message   string `json:"message" binding:"required"`
	RelatedID *int64 `json:"relatedId"`
}

func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err, "type, title and message are required")
		return
	}

	userID := req.UserID
	if userID == 0 {
		userID = middleware.CurrentUser(c).ID
	}
	n, err := h.service.Create(c.Request.Context(), userID, req.Type, req.Title, req.Message, req.RelatedID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to create notification")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"notification": n})
}

func (h *Handler) MarkRead(c *gin.Context) {
	id, ok := h.notificationID(c)
	if !ok {
		return
	}

	actor := middleware.CurrentUser(c)
	err := h.service.MarkRead(c.Request.Context(), actor, id)
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "notification not found")
		return
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to mark notification read")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"read": true})
}

func (h *Handler) MarkAllRead(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if err := h.service.MarkAllRead(c.Request.Context(), actor); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to mark notifications read")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"read": true})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.notificationID(c)
	if !ok {
		return
	}

	actor := middleware.CurrentUser(c)
	err := h.service.Delete(c.Request.Context(), actor, id)
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "notification not found")
		return
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to delete notification")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) DeleteAll(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if err := h.service.DeleteAll(c.Request.Context(), actor); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to clear notifications")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) notificationID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid notification id")
		return 0, false
	}
	return id, true
}
