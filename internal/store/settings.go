// Package store persists the operator's settings as plain files under a
// local data directory. Single-operator deployment: no locking and no atomic
// rename, a partial write during a crash is accepted.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adamamaa/worship/internal/domain"
)

const (
	credentialFile = "credential"
	templateFile   = "template.pptx"
)

// Settings is the file-backed settings store.
type Settings struct {
	dir string
}

// NewSettings creates the data directory if needed and returns a store rooted
// there. An empty dir falls back to ~/.worshipdeck.
func NewSettings(dir string) (*Settings, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		dir = filepath.Join(home, ".worshipdeck")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &Settings{dir: dir}, nil
}

// Dir returns the data directory the store writes into.
func (s *Settings) Dir() string {
	return s.dir
}

// LoadCredential returns the saved credential, or "" when none is saved.
func (s *Settings) LoadCredential() (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, credentialFile))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading credential: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// SaveCredential overwrites any previously saved credential.
func (s *Settings) SaveCredential(credential string) error {
	if strings.TrimSpace(credential) == "" {
		return domain.ErrCredentialMissing
	}
	if err := os.WriteFile(filepath.Join(s.dir, credentialFile), []byte(credential), 0o600); err != nil {
		return fmt.Errorf("writing credential: %w", err)
	}
	return nil
}

// SaveTemplate overwrites the saved template at its well-known path.
func (s *Settings) SaveTemplate(data []byte) error {
	if err := os.WriteFile(filepath.Join(s.dir, templateFile), data, 0o644); err != nil {
		return fmt.Errorf("writing template: %w", err)
	}
	return nil
}

// LoadTemplate returns the saved template bytes, or ErrTemplateMissing when
// nothing has been saved yet.
func (s *Settings) LoadTemplate() ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, templateFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrTemplateMissing
	}
	if err != nil {
		return nil, fmt.Errorf("reading template: %w", err)
	}
	return data, nil
}

// HasTemplate reports whether a template has been saved.
func (s *Settings) HasTemplate() bool {
	_, err := os.Stat(filepath.Join(s.dir, templateFile))
	return err == nil
}
