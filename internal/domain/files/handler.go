package files

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
	rows, err := h.service.List(c.Request.Context(), actor, c.Query("view"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list files")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"files": rows})
}

func (h *Handler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "no file provided")
		return
	}
	src, err := header.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "unreadable file")
		return
	}
	defer src.Close()

	actor := middleware.CurrentUser(c)
	file, err := h.service.Upload(c.Request.Context(), actor, UploadInput{
		OriginalName: header.Filename,
		ContentType:  header.Header.Get("Content-Type"),
		Category:     c.PostForm("category"),
		TargetRole:   c.PostForm("target_role"),
		SharedWith:   c.PostForm("shared_with"),
		FolderPath:   c.PostForm("folder_path"),
		Content:      src,
	})
	switch {
	case errors.Is(err, ErrNotPermitted):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "not permitted to upload files")
		return
	case errors.Is(err, ErrEmptyUpload):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "no file provided")
		return
	case errors.Is(err, ErrUnknownCategory):
		response.Error(c, http.StatusBadRequest, "INVALID_CATEGORY", "unknown category for this role group")
		return
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to upload file")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"file": file})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.fileID(c)
	if !ok {
		return
	}

	actor := middleware.CurrentUser(c)
	err := h.service.Delete(c.Request.Context(), actor, id)
	switch {
	case errors.Is(err, ErrFileNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "file not found")
		return
	case errors.Is(err, ErrNotPermitted):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "you can only delete files you uploaded")
		return
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to delete file")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) SetStatus(c *gin.Context) {
	id, ok := h.fileID(c)
	if !ok {
		return
	}
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err, "status is required")
		return
	}

	actor := middleware.CurrentUser(c)
	row, err := h.service.SetStatus(c.Request.Context(), actor, id, req.Status)
	switch {
	case errors.Is(err, ErrNotPermitted):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "only collectors and developers can change file status")
		return
	case errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "status must be pending, approved or rejected")
		return
	case errors.Is(err, ErrFileNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "file not found")
		return
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to update status")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"file": row})
}

func (h *Handler) ListComments(c *gin.Context) {
	id, ok := h.fileID(c)
	if !ok {
		return
	}
	comments, err := h.service.ListComments(c.Request.Context(), id)
	switch {
	case errors.Is(err, ErrFileNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "file not found")
		return
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list comments")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"comments": comments})
}

type commentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *Handler) AddComment(c *gin.Context) {
	id, ok := h.fileID(c)
	if !ok {
		return
	}
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err, "content is required")
		return
	}

	actor := middleware.CurrentUser(c)
	comment, err := h.service.AddComment(c.Request.Context(), actor, id, req.Content)
	switch {
	case errors.Is(err, ErrEmptyComment):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "content is required")
		return
	case errors.Is(err, ErrFileNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "file not found")
		return
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to add comment")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"comment": comment})
}

// Preview streams the blob inline with its stored content type.
func (h *Handler) Preview(c *gin.Context) {
	id, ok := h.fileID(c)
	if !ok {
		return
	}

	actor := middleware.CurrentUser(c)
	row, err := h.service.Get(c.Request.Context(), actor, id)
	switch {
	case errors.Is(err, ErrFileNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "file not found")
		return
	case errors.Is(err, ErrNotPermitted):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "not permitted to view this file")
		return
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to open file")
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+row.OriginalName+`"`)
	if row.FileType != "" {
		c.Header("Content-Type", row.FileType)
	}
	c.File(h.service.blobs.Path(row.Filename))
}

// ProfilePicture serves profile images from the uploads directory.
func (h *Handler) ProfilePicture(c *gin.Context) {
	name := c.Param("filename")
	if !SafeName(name) {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid filename")
		return
	}
	c.File(h.service.blobs.Path(name))
}

func (h *Handler) fileID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid file id")
		return 0, false
	}
	return id, true
}
