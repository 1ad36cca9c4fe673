package vault

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

type accessRequest struct {
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Access(c *gin.Context) {
	var req accessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err, "password is required")
		return
	}

	actor := middleware.CurrentUser(c)
	err := h.service.Access(actor, req.Password)
	switch {
	case errors.Is(err, ErrNotPermitted):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "vault access denied")
		return
	case errors.Is(err, ErrWrongPassword):
		response.Error(c, http.StatusBadRequest, "WRONG_PASSWORD", "invalid vault password")
		return
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to verify vault access")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"granted": true, "role": actor.Role})
}

func (h *Handler) Collectors(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	collectors, err := h.service.Collectors(c.Request.Context(), actor)
	switch {
	case errors.Is(err, ErrNotPermitted):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "developers only")
		return
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list collectors")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"collectors": collectors})
}

func (h *Handler) ListTabs(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	tabs, err := h.service.ListTabs(c.Request.Context(), actor)
	if h.vaultError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tabs": tabs})
}

type tabRequest struct {
	TabName string `json:"tabName" binding:"required"`
	TabKey  string `json:"tabKey" binding:"required"`
}

func (h *Handler) CreateTab(c *gin.Context) {
	var req tabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err, "tabName and tabKey are required")
		return
	}

	actor := middleware.CurrentUser(c)
	tab, err := h.service.CreateTab(c.Request.Context(), actor, req.TabName, req.TabKey)
	if h.vaultError(c, err) {
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"tab": tab})
}

func (h *Handler) ListTabsFor(c *gin.Context) {
	collectorID, ok := h.pathID(c, "collectorId")
	if !ok {
		return
	}

	actor := middleware.CurrentUser(c)
	tabs, err := h.service.ListTabsFor(c.Request.Context(), actor, collectorID)
	if h.vaultError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tabs": tabs})
}

func (h *Handler) CreateTabFor(c *gin.Context) {
	collectorID, ok := h.pathID(c, "collectorId")
	if !ok {
		return
	}
	var req tabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err, "tabName and tabKey are required")
		return
	}

	actor := middleware.CurrentUser(c)
	tab, err := h.service.CreateTabFor(c.Request.Context(), actor, collectorID, req.TabName, req.TabKey)
	if h.vaultError(c, err) {
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"tab": tab})
}

func (h *Handler) DeleteTabFor(c *gin.Context) {
	collectorID, ok := h.pathID(c, "collectorId")
	if !ok {
		return
	}
	tabID, err := strconv.ParseInt(c.Query("tabId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "tabId is required")
		return
	}

	actor := middleware.CurrentUser(c)
	if h.vaultError(c, h.service.DeleteTabFor(c.Request.Context(), actor, collectorID, tabID)) {
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListFiles(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	rows, err := h.service.ListFiles(c.Request.Context(), actor, c.Query("category"))
	if h.vaultError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, gin.H{"files": rows})
}

func (h *Handler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "file and category are required")
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
		FolderPath:   c.PostForm("folder_path"),
		Content:      src,
	})
	if h.vaultError(c, err) {
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"file": file})
}

func (h *Handler) GetFile(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	actor := middleware.CurrentUser(c)
	row, err := h.service.GetFile(c.Request.Context(), actor, id)
	if h.vaultError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, gin.H{"file": row})
}

func (h *Handler) Download(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	actor := middleware.CurrentUser(c)
	row, err := h.service.GetFile(c.Request.Context(), actor, id)
	if h.vaultError(c, err) {
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+row.OriginalName+`"`)
	if row.FileType != "" {
		c.Header("Content-Type", row.FileType)
	}
	c.File(h.service.blobs.Path(actor.ID, row.Filename))
}

func (h *Handler) DeleteFile(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	actor := middleware.CurrentUser(c)
	if h.vaultError(c, h.service.DeleteFile(c.Request.Context(), actor, id)) {
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListComments(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	actor := middleware.CurrentUser(c)
	comments, err := h.service.ListComments(c.Request.Context(), actor, id)
	if h.vaultError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, gin.H{"comments": comments})
}

type commentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *Handler) AddComment(c *gin.Context) {
	id, ok := h.pathID(c, "id")
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
	if h.vaultError(c, err) {
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"comment": comment})
}

func (h *Handler) ListFolders(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	folders, err := h.service.ListFolders(c.Request.Context(), actor)
	if h.vaultError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, gin.H{"folders": folders})
}

type folderRequest struct {
	Name       string `json:"name" binding:"required"`
	Path       string `json:"path" binding:"required"`
	Category   string `json:"category" binding:"required"`
	ParentPath string `json:"parentPath"`
}

func (h *Handler) CreateFolder(c *gin.Context) {
	var req folderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err, "name, path and category are required")
		return
	}

	actor := middleware.CurrentUser(c)
	folder, err := h.service.CreateFolder(c.Request.Context(), actor, FolderInput{
		Name:       req.Name,
		Path:       req.Path,
		Category:   req.Category,
		ParentPath: req.ParentPath,
	})
	if h.vaultError(c, err) {
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"folder": folder})
}

func (h *Handler) DeleteFolder(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	actor := middleware.CurrentUser(c)
	if h.vaultError(c, h.service.DeleteFolder(c.Request.Context(), actor, id)) {
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// vaultError maps service errors to the shared taxonomy. Returns true when
// a response was written.
func (h *Handler) vaultError(c *gin.Context, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrNotPermitted):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "vault access denied")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "not found in vault")
	case errors.Is(err, ErrTabExists):
		response.Error(c, http.StatusBadRequest, "TAB_EXISTS", "vault category already exists")
	case errors.Is(err, ErrFolderExists):
		response.Error(c, http.StatusBadRequest, "FOLDER_EXISTS", "vault folder already exists")
	case errors.Is(err, ErrUnknownCategory):
		response.Error(c, http.StatusBadRequest, "INVALID_CATEGORY", "invalid category for vault")
	case errors.Is(err, ErrEmptyTab), errors.Is(err, ErrInvalidFolder),
		errors.Is(err, ErrEmptyUpload), errors.Is(err, ErrEmptyComment):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "vault operation failed")
	}
	return true
}

func (h *Handler) pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid "+name)
		return 0, false
	}
	return id, true
}
