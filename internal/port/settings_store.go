package port

// SettingsStore persists the operator's API credential and the reusable
// presentation template across sessions.
type SettingsStore interface {
	// LoadCredential returns the saved credential, or "" when none is saved.
	LoadCredential() (string, error)
	// SaveCredential overwrites any previously saved credential.
	SaveCredential(credential string) error

	// SaveTemplate overwrites the saved template at its well-known path.
	SaveTemplate(data []byte) error
	// LoadTemplate returns the saved template bytes.
	LoadTemplate() ([]byte, error)
	// HasTemplate reports whether a template has been saved.
	HasTemplate() bool
}
