package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fileportal/internal/domain"
	"fileportal/internal/pkg/response"
)

const SessionCookie = "session"

type Handler struct {
	service      *Service
	sessionTTL   time.Duration
	secureCookie bool
}

func NewHandler(service *Service, sessionTTL time.Duration, secureCookie bool) *Handler {
	return &Handler{service: service, sessionTTL: sessionTTL, secureCookie: secureCookie}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err, "username and password are required")
		return
	}

	user, session, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid username or password")
		return
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to log in")
		return
	}

	h.setCookie(c, session.ID, int(h.sessionTTL.Seconds()))
	response.Success(c, http.StatusOK, gin.H{"user": userView(user)})
}

func (h *Handler) Logout(c *gin.Context) {
	sessionID, _ := c.Cookie(SessionCookie)
	if err := h.service.Logout(c.Request.Context(), sessionID); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to log out")
		return
	}
	h.setCookie(c, "", -1)
	response.Success(c, http.StatusOK, gin.H{"loggedOut": true})
}

// Me reports the authenticated user, or user=null when the cookie is
// absent, expired or stale. It never returns an error status so the
// frontend can probe it freely.
func (h *Handler) Me(c *gin.Context) {
	sessionID, _ := c.Cookie(SessionCookie)
	user, err := h.service.Resolve(c.Request.Context(), sessionID)
	switch {
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrSessionExpired):
		response.Success(c, http.StatusOK, gin.H{"user": nil})
		return
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to resolve session")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": userView(user)})
}

func (h *Handler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, value, maxAge, "/", "", h.secureCookie, true)
}

func userView(u *domain.User) gin.H {
	return gin.H{
		"id":             u.ID,
		"username":       u.Username,
		"role":           u.Role,
		"profilePicture": u.ProfilePicture,
	}
}
