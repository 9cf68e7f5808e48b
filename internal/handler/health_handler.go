package handler

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/adamamaa/worship/internal/store"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	settings *store.Settings
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(settings *store.Settings) *HealthHandler {
	return &HealthHandler{settings: settings}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if _, err := os.Stat(h.settings.Dir()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "data directory not reachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
