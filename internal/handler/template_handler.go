package handler

import (
	"archive/zip"
	"bytes"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adamamaa/worship/internal/domain"
	"github.com/adamamaa/worship/internal/middleware"
	"github.com/adamamaa/worship/internal/service"
)

// TemplateHandler handles presentation template uploads.
type TemplateHandler struct {
	settingsService service.SettingsService
	bulletinService service.BulletinService
	maxBytes        int64
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(settingsService service.SettingsService, bulletinService service.BulletinService, maxTemplateMB int64) *TemplateHandler {
	return &TemplateHandler{
		settingsService: settingsService,
		bulletinService: bulletinService,
		maxBytes:        maxTemplateMB * 1024 * 1024,
	}
}

// Upload handles POST /api/v1/templates
// The uploaded template is session-scoped unless save=true persists it as the
// reusable default.
func (h *TemplateHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("template")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "template field is required")
		return
	}
	defer func() { _ = file.Close() }()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != ".pptx" {
		HandleError(c, domain.ErrUnsupportedFileType)
		return
	}
	if h.maxBytes > 0 && header.Size > h.maxBytes {
		HandleError(c, domain.ErrFileTooLarge)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "could not read uploaded file")
		return
	}

	// Reject broken uploads before they reach a fill.
	if _, err := zip.NewReader(bytes.NewReader(data), int64(len(data))); err != nil {
		HandleError(c, domain.ErrInvalidTemplate)
		return
	}

	saved := false
	if c.PostForm("save") == "true" {
		if err := h.settingsService.SaveTemplate(data); err != nil {
			HandleError(c, err)
			return
		}
		saved = true
	}

	h.bulletinService.SetSessionTemplate(middleware.GetSessionID(c), data)

	RespondCreated(c, gin.H{
		"filename": header.Filename,
		"size":     header.Size,
		"saved":    saved,
	})
}
