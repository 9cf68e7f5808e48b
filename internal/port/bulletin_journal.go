package port

import "github.com/adamamaa/worship/internal/domain"

// BulletinJournal keeps a local history of completed analyses.
type BulletinJournal interface {
	Append(entry domain.JournalEntry) error
	List(offset, limit int) ([]domain.JournalEntry, int, error)
}
