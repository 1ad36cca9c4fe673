package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fileportal/internal/middleware"
	"fileportal/internal/pkg/response"
	"fileportal/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list users")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users})
}

type createUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

func (h *Handler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err, "username, password and role are required")
		return
	}

	user, err := h.service.Create(c.Request.Context(), CreateInput(req))
	switch {
	case errors.Is(err, ErrInvalidRole):
		response.Error(c, http.StatusBadRequest, "INVALID_ROLE", "role must be user1, user2, collector or developer")
		return
	case errors.Is(err, ErrWeakPassword):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "password must be at least 6 characters")
		return
	case errors.Is(err, ErrUsernameTaken):
		response.Error(c, http.StatusBadRequest, "USERNAME_TAKEN", "username already taken")
		return
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to create user")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"user": user})
}

type updateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Password string `json:"password"`
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err, "username and role are required")
		return
	}

	user, err := h.service.Update(c.Request.Context(), id, UpdateInput(req))
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "user not found")
		return
	case errors.Is(err, ErrInvalidRole):
		response.Error(c, http.StatusBadRequest, "INVALID_ROLE", "role must be user1, user2, collector or developer")
		return
	case errors.Is(err, ErrWeakPassword):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "password must be at least 6 characters")
		return
	case errors.Is(err, ErrUsernameTaken):
		response.Error(c, http.StatusBadRequest, "USERNAME_TAKEN", "username already taken")
		return
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to update user")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	actor := middleware.CurrentUser(c)
	err := h.service.Delete(c.Request.Context(), actor, id)
	switch {
	case errors.Is(err, ErrSelfDelete):
		response.Error(c, http.StatusBadRequest, "SELF_DELETE", "cannot delete your own account")
		return
	case errors.Is(err, repository.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "user not found")
		return
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to delete user")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) userID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid user id")
		return 0, false
	}
	return id, true
}
