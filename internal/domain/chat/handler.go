package chat

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"fileportal/internal/access"
	"fileportal/internal/middleware"
	"fileportal/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Auth rides on the session cookie; CORS middleware already gates
	// browser origins for the REST surface.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

func (h *Handler) List(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	messages, err := h.service.List(c.Request.Context(), actor, c.Query("view"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list messages")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"messages": messages})
}

type postMessageRequest struct {
	Content    string `json:"content" binding:"required"`
	Visibility string `json:"visibility"`
	TargetRole string `json:"targetRole"`
}

func (h *Handler) Post(c *gin.Context) {
	var req postMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err, "content is required")
		return
	}

	actor := middleware.CurrentUser(c)
	msg, err := h.service.Post(c.Request.Context(), actor, req.Content, req.Visibility, req.TargetRole)
	switch {
	case errors.Is(err, ErrEmptyContent):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "content is required")
		return
	case errors.Is(err, ErrContentTooLong):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "message too long (max 1000 characters)")
		return
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to post message")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": msg})
}

// Serve upgrades the connection and subscribes it to the actor's effective
// role group.
func (h *Handler) Serve(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	group := access.EffectiveRole(actor, c.Query("view"))

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("chat ws upgrade: %v", err)
		return
	}

	client := newClient(h.hub, conn, group)
	h.hub.register <- client
	go client.writePump()
	go client.readPump()
}
