// Package journal keeps a local history of completed bulletin analyses and
// exports it for record-keeping.
package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/adamamaa/worship/internal/domain"
)

const journalFile = "journal.json"

// FileJournal appends entries to a JSON file in the data directory. The
// mutex covers the read-modify-write cycle; single process assumed.
type FileJournal struct {
	mu   sync.Mutex
	path string
}

// NewFileJournal returns a journal stored at dir/journal.json.
func NewFileJournal(dir string) *FileJournal {
	return &FileJournal{path: filepath.Join(dir, journalFile)}
}

// Append adds one entry to the end of the journal.
func (j *FileJournal) Append(entry domain.JournalEntry) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	entries, err := j.read()
	if err != nil {
		return err
	}
	entries = append(entries, entry)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling journal: %w", err)
	}
	if err := os.WriteFile(j.path, data, 0o644); err != nil {
		return fmt.Errorf("writing journal: %w", err)
	}
	return nil
}

// List returns entries newest-first with offset/limit pagination, plus the
// total count.
func (j *FileJournal) List(offset, limit int) ([]domain.JournalEntry, int, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	entries, err := j.read()
	if err != nil {
		return nil, 0, err
	}

	total := len(entries)

	// Reverse into newest-first order.
	reversed := make([]domain.JournalEntry, 0, total)
	for i := total - 1; i >= 0; i-- {
		reversed = append(reversed, entries[i])
	}

	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return []domain.JournalEntry{}, total, nil
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}
	return reversed[offset:end], total, nil
}

// All returns every entry oldest-first, for exports.
func (j *FileJournal) All() ([]domain.JournalEntry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.read()
}

func (j *FileJournal) read() ([]domain.JournalEntry, error) {
	data, err := os.ReadFile(j.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.JournalEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading journal: %w", err)
	}
	var entries []domain.JournalEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing journal: %w", err)
	}
	return entries, nil
}
