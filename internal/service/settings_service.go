package service

import (
	"github.com/adamamaa/worship/internal/port"
)

// SettingsStatus summarizes what the operator has configured so far.
type SettingsStatus struct {
	CredentialSet bool `json:"credential_set"`
	TemplateSaved bool `json:"template_saved"`
}

// SettingsService defines the settings management contract.
type SettingsService interface {
	Status() (*SettingsStatus, error)
	SaveCredential(credential string) error
	// Credential returns the saved credential, falling back to the config
	// seed key when nothing has been saved yet. Empty means not configured.
	Credential() (string, error)
	SaveTemplate(data []byte) error
	LoadTemplate() ([]byte, error)
}

type settingsService struct {
	store   port.SettingsStore
	seedKey string
}

// NewSettingsService creates a SettingsService on top of the settings store.
func NewSettingsService(store port.SettingsStore, seedKey string) SettingsService {
	return &settingsService{store: store, seedKey: seedKey}
}

func (s *settingsService) Status() (*SettingsStatus, error) {
	credential, err := s.Credential()
	if err != nil {
		return nil, err
	}
	return &SettingsStatus{
		CredentialSet: credential != "",
		TemplateSaved: s.store.HasTemplate(),
	}, nil
}

func (s *settingsService) SaveCredential(credential string) error {
	return s.store.SaveCredential(credential)
}

func (s *settingsService) Credential() (string, error) {
	saved, err := s.store.LoadCredential()
	if err != nil {
		return "", err
	}
	if saved != "" {
		return saved, nil
	}
	return s.seedKey, nil
}

func (s *settingsService) SaveTemplate(data []byte) error {
	return s.store.SaveTemplate(data)
}

func (s *settingsService) LoadTemplate() ([]byte, error) {
	return s.store.LoadTemplate()
}
