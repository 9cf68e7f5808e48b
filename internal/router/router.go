package router

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adamamaa/worship/internal/config"
	"github.com/adamamaa/worship/internal/handler"
	"github.com/adamamaa/worship/internal/middleware"
	"github.com/adamamaa/worship/internal/session"
	"github.com/adamamaa/worship/web"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	sessions *session.Manager,
	settingsH *handler.SettingsHandler,
	templateH *handler.TemplateHandler,
	bulletinH *handler.BulletinHandler,
	journalH *handler.JournalHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Session(sessions))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// Embedded form
	static, _ := fs.Sub(web.StaticFS, "static")
	r.GET("/", func(c *gin.Context) {
		c.FileFromFS("index.html", http.FS(static))
	})

	v1 := r.Group("/api/v1")

	// Settings
	settings := v1.Group("/settings")
	settings.GET("", settingsH.Status)
	settings.PUT("/credential", settingsH.SaveCredential)

	// Templates
	v1.POST("/templates", templateH.Upload)

	// Bulletins
	bulletins := v1.Group("/bulletins")
	bulletins.POST("/analyze", bulletinH.Analyze)
	bulletins.GET("/current", bulletinH.Current)
	bulletins.PUT("/current", bulletinH.UpdateCurrent)
	bulletins.POST("/fill", bulletinH.Fill)

	// Journal
	journal := v1.Group("/journal")
	journal.GET("", journalH.List)
	journal.GET("/export", journalH.Export)

	return r
}
