package domain

import (
	"time"

	"github.com/google/uuid"
)

// BulletinRecord is the structured content extracted from one bulletin photo.
// Fields are never absent: the analyzer defaults anything the model omits to
// an empty string, and Hymns is always non-nil once a record is constructed.
type BulletinRecord struct {
	SermonTitle  string   `json:"sermon_title"`
	Preacher     string   `json:"preacher"`
	PrayerPerson string   `json:"prayer_person"`
	BibleRef     string   `json:"bible_ref"`
	BibleText    string   `json:"bible_text"`
	Hymns        []string `json:"hymn_list"`
}

// Normalize replaces a nil hymn list with an empty one so records keep a
// stable shape through JSON round-trips.
func (r *BulletinRecord) Normalize() {
	if r.Hymns == nil {
		r.Hymns = []string{}
	}
}

// JournalEntry records one successful bulletin analysis.
type JournalEntry struct {
	ID          uuid.UUID `json:"id"`
	SermonTitle string    `json:"sermon_title"`
	Preacher    string    `json:"preacher"`
	BibleRef    string    `json:"bible_ref"`
	HymnCount   int       `json:"hymn_count"`
	Model       string    `json:"model"`
	AnalyzedAt  time.Time `json:"analyzed_at"`
}
