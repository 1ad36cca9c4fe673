package messages

import (
	"errors"
	"fmt"
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

type sendRequest struct {
	ReceiverID int64  `json:"receiverId" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

func (h *Handler) Send(c *gin.Context) {
	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err, "receiverId and content are required")
		return
	}

	actor := middleware.CurrentUser(c)
	msg, err := h.service.Send(c.Request.Context(), actor, req.ReceiverID, req.Content)
	switch {
	case errors.Is(err, ErrEmptyContent):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "message content is required")
		return
	case errors.Is(err, ErrReceiverNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "receiver not found")
		return
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to send message")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": msg})
}

func (h *Handler) Conversation(c *gin.Context) {
	peerID, ok := h.userID(c)
	if !ok {
		return
	}

	actor := middleware.CurrentUser(c)
	rows, err := h.service.Conversation(c.Request.Context(), actor, peerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to load conversation")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"messages": rows})
}

type broadcastRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *Handler) Broadcast(c *gin.Context) {
	var req broadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err, "content is required")
		return
	}

	actor := middleware.CurrentUser(c)
	sent, err := h.service.Broadcast(c.Request.Context(), actor, req.Content)
	switch {
	case errors.Is(err, ErrEmptyContent):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "message content is required")
		return
	case errors.Is(err, ErrContentTooLong):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "message too long (max 1000 characters)")
		return
	case errors.Is(err, ErrNoRecipients):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "no users to send message to")
		return
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to broadcast message")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"sent": sent, "message": fmt.Sprintf("message sent to %d users", sent)})
}

func (h *Handler) UnreadCounts(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	counts, err := h.service.UnreadCounts(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to load unread counts")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"unreadCounts": counts})
}

func (h *Handler) MarkRead(c *gin.Context) {
	senderID, ok := h.userID(c)
	if !ok {
		return
	}

	actor := middleware.CurrentUser(c)
	if err := h.service.MarkConversationRead(c.Request.Context(), actor, senderID); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to mark messages read")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"marked": true})
}

func (h *Handler) userID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid user id")
		return 0, false
	}
	return id, true
}
