package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/adamamaa/worship/internal/analyzer/gemini"
	"github.com/adamamaa/worship/internal/config"
	"github.com/adamamaa/worship/internal/handler"
	"github.com/adamamaa/worship/internal/journal"
	"github.com/adamamaa/worship/internal/router"
	"github.com/adamamaa/worship/internal/service"
	"github.com/adamamaa/worship/internal/session"
	"github.com/adamamaa/worship/internal/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	settings, err := store.NewSettings(cfg.Storage.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open settings store: %w", err)
	}

	sessions := session.NewManager()
	fileJournal := journal.NewFileJournal(settings.Dir())
	bulletinAnalyzer := gemini.NewAnalyzer(&cfg.Parser)

	// Initialize services
	settingsSvc := service.NewSettingsService(settings, cfg.Parser.APIKey)
	bulletinSvc := service.NewBulletinService(bulletinAnalyzer, settingsSvc, sessions, fileJournal, cfg.Storage.MaxImageMB)

	// Initialize handlers
	settingsH := handler.NewSettingsHandler(settingsSvc)
	templateH := handler.NewTemplateHandler(settingsSvc, bulletinSvc, cfg.Storage.MaxTemplateMB)
	bulletinH := handler.NewBulletinHandler(bulletinSvc)
	journalH := handler.NewJournalHandler(fileJournal)
	healthH := handler.NewHealthHandler(settings)

	// Setup router
	r := router.Setup(cfg, sessions, settingsH, templateH, bulletinH, journalH, healthH)

	log.Printf("Server starting on %s (data dir %s)", cfg.Server.Port, settings.Dir())
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
