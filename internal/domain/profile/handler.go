package profile

import (
	"errors"
	"net/http"

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

func (h *Handler) Get(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	p, err := h.service.Get(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to load profile")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"profile":        p,
		"username":       actor.Username,
		"role":           actor.Role,
		"profilePicture": actor.ProfilePicture,
	})
}

type updateProfileRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

func (h *Handler) Update(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err, "invalid request body")
		return
	}

	actor := middleware.CurrentUser(c)
	p, err := h.service.Update(c.Request.Context(), actor, req.FullName, req.Email)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to update profile")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": p})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err, "currentPassword and newPassword are required")
		return
	}

	actor := middleware.CurrentUser(c)
	err := h.service.ChangePassword(c.Request.Context(), actor, req.CurrentPassword, req.NewPassword)
	switch {
	case errors.Is(err, ErrWrongPassword):
		response.Error(c, http.StatusBadRequest, "WRONG_PASSWORD", "current password is incorrect")
		return
	case errors.Is(err, ErrWeakPassword):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "new password must be at least 6 characters")
		return
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to change password")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"changed": true})
}

func (h *Handler) UpdatePicture(c *gin.Context) {
	header, err := c.FormFile("picture")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "no picture provided")
		return
	}
	src, err := header.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "unreadable picture")
		return
	}
	defer src.Close()

	actor := middleware.CurrentUser(c)
	path, err := h.service.UpdatePicture(c.Request.Context(), actor,
		header.Filename, header.Header.Get("Content-Type"), src)
	switch {
	case errors.Is(err, ErrNotAnImage):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "profile picture must be an image")
		return
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to update picture")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profilePicture": path})
}
