package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/adamamaa/worship/internal/deck"
	"github.com/adamamaa/worship/internal/domain"
	"github.com/adamamaa/worship/internal/port"
	"github.com/adamamaa/worship/internal/session"
)

// AnalyzeBulletinInput is the DTO for one bulletin analysis.
type AnalyzeBulletinInput struct {
	SessionID   string
	ImageBytes  []byte
	ContentType string
}

// FillOutput carries the filled presentation and its download filename.
type FillOutput struct {
	Filename string
	Data     []byte
}

// allowedImageTypes lists the bulletin photo formats the analyzer accepts.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// BulletinService drives the analyze → edit → fill flow.
type BulletinService interface {
	Analyze(ctx context.Context, input AnalyzeBulletinInput) (*domain.BulletinRecord, error)
	Current(sessionID string) (*domain.BulletinRecord, error)
	UpdateCurrent(sessionID string, rec domain.BulletinRecord) (*domain.BulletinRecord, error)
	SetSessionTemplate(sessionID string, data []byte)
	Fill(sessionID string) (*FillOutput, error)
}

type bulletinService struct {
	analyzer      port.BulletinAnalyzer
	settings      SettingsService
	sessions      *session.Manager
	journal       port.BulletinJournal
	maxImageBytes int64
}

// NewBulletinService creates a BulletinService implementation.
func NewBulletinService(
	analyzer port.BulletinAnalyzer,
	settings SettingsService,
	sessions *session.Manager,
	journal port.BulletinJournal,
	maxImageMB int64,
) BulletinService {
	return &bulletinService{
		analyzer:      analyzer,
		settings:      settings,
		sessions:      sessions,
		journal:       journal,
		maxImageBytes: maxImageMB * 1024 * 1024,
	}
}

// Analyze runs one synchronous extraction call and replaces the session's
// record on success. On any failure the session keeps its previous record.
func (s *bulletinService) Analyze(ctx context.Context, input AnalyzeBulletinInput) (*domain.BulletinRecord, error) {
	credential, err := s.settings.Credential()
	if err != nil {
		return nil, err
	}
	if credential == "" {
		return nil, domain.ErrCredentialMissing
	}

	if !allowedImageTypes[input.ContentType] {
		return nil, domain.ErrUnsupportedFileType
	}
	if s.maxImageBytes > 0 && int64(len(input.ImageBytes)) > s.maxImageBytes {
		return nil, domain.ErrFileTooLarge
	}

	out, err := s.analyzer.Analyze(ctx, port.AnalyzeInput{
		ImageBytes:  input.ImageBytes,
		ContentType: input.ContentType,
		Credential:  credential,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAnalysisFailed, err)
	}

	rec := out.Record
	rec.Normalize()
	s.sessions.SetRecord(input.SessionID, rec)

	if err := s.journal.Append(domain.JournalEntry{
		ID:          uuid.New(),
		SermonTitle: rec.SermonTitle,
		Preacher:    rec.Preacher,
		BibleRef:    rec.BibleRef,
		HymnCount:   len(rec.Hymns),
		Model:       out.ModelUsed,
		AnalyzedAt:  time.Now().UTC(),
	}); err != nil {
		// History is best-effort; the analysis itself succeeded.
		log.Printf("bulletinService.Analyze: journal append failed: %v", err)
	}

	return rec, nil
}

func (s *bulletinService) Current(sessionID string) (*domain.BulletinRecord, error) {
	rec := s.sessions.Record(sessionID)
	if rec == nil {
		return nil, domain.ErrNoBulletin
	}
	return rec, nil
}

// UpdateCurrent replaces the session's record wholesale with the edited form
// values. Per-field patching is deliberately not supported.
func (s *bulletinService) UpdateCurrent(sessionID string, rec domain.BulletinRecord) (*domain.BulletinRecord, error) {
	if s.sessions.Record(sessionID) == nil {
		return nil, domain.ErrNoBulletin
	}
	rec.Normalize()
	s.sessions.SetRecord(sessionID, &rec)
	return &rec, nil
}

func (s *bulletinService) SetSessionTemplate(sessionID string, data []byte) {
	s.sessions.SetTemplate(sessionID, data)
}

// Fill substitutes the session's record into the session template, falling
// back to the saved one. The template is loaded fresh on every call so the
// stored bytes are never contaminated across requests.
func (s *bulletinService) Fill(sessionID string) (*FillOutput, error) {
	rec := s.sessions.Record(sessionID)
	if rec == nil {
		return nil, domain.ErrNoBulletin
	}

	template := s.sessions.Template(sessionID)
	if template == nil {
		loaded, err := s.settings.LoadTemplate()
		if err != nil {
			return nil, err
		}
		template = loaded
	}

	data, err := deck.Fill(template, rec)
	if err != nil {
		return nil, err
	}

	return &FillOutput{
		Filename: deck.BuildDownloadFilename(rec.SermonTitle),
		Data:     data,
	}, nil
}
