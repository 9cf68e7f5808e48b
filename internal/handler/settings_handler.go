package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adamamaa/worship/internal/service"
)

// SettingsHandler handles credential and settings endpoints.
type SettingsHandler struct {
	settingsService service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Status handles GET /api/v1/settings
func (h *SettingsHandler) Status(c *gin.Context) {
	status, err := h.settingsService.Status()
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, status)
}

type saveCredentialRequest struct {
	Credential string `json:"credential"`
}

// SaveCredential handles PUT /api/v1/settings/credential
func (h *SettingsHandler) SaveCredential(c *gin.Context) {
	var req saveCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "request body must be JSON with a credential field")
		return
	}

	if err := h.settingsService.SaveCredential(req.Credential); err != nil {
		HandleError(c, err)
		return
	}

	status, err := h.settingsService.Status()
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, status)
}
