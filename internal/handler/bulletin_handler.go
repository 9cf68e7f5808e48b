package handler

import (
	"io"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/adamamaa/worship/internal/domain"
	"github.com/adamamaa/worship/internal/middleware"
	"github.com/adamamaa/worship/internal/service"
)

const pptxContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

// BulletinHandler handles the analyze → edit → fill endpoints.
type BulletinHandler struct {
	bulletinService service.BulletinService
}

// NewBulletinHandler creates a new BulletinHandler.
func NewBulletinHandler(bulletinService service.BulletinService) *BulletinHandler {
	return &BulletinHandler{bulletinService: bulletinService}
}

// Analyze handles POST /api/v1/bulletins/analyze
// One synchronous extraction call; the handler blocks for the duration of the
// remote request.
func (h *BulletinHandler) Analyze(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "image field is required")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "could not read uploaded image")
		return
	}

	contentType := header.Header.Get("Content-Type")

	rec, err := h.bulletinService.Analyze(c.Request.Context(), service.AnalyzeBulletinInput{
		SessionID:   middleware.GetSessionID(c),
		ImageBytes:  data,
		ContentType: contentType,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rec)
}

// Current handles GET /api/v1/bulletins/current
func (h *BulletinHandler) Current(c *gin.Context) {
	rec, err := h.bulletinService.Current(middleware.GetSessionID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rec)
}

// UpdateCurrent handles PUT /api/v1/bulletins/current
// The edited form replaces the record wholesale.
func (h *BulletinHandler) UpdateCurrent(c *gin.Context) {
	var rec domain.BulletinRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "request body must be a bulletin record")
		return
	}

	updated, err := h.bulletinService.UpdateCurrent(middleware.GetSessionID(c), rec)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, updated)
}

// Fill handles POST /api/v1/bulletins/fill
// Responds with the filled presentation bytes for download.
func (h *BulletinHandler) Fill(c *gin.Context) {
	out, err := h.bulletinService.Fill(middleware.GetSessionID(c))
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename*=UTF-8''`+escapeFilename(out.Filename))
	c.Data(http.StatusOK, pptxContentType, out.Data)
}

// escapeFilename percent-encodes a download filename for the RFC 5987
// filename* parameter; sermon titles are usually Korean.
func escapeFilename(name string) string {
	return url.PathEscape(name)
}
