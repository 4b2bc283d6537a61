package filestore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultAdminPassword = "admin123"

	errorSubjectCredentials = "credentials"
)

// Credentials is the admin password gate: a single-line credential file,
// auto-created with a default value on first run. The check is plain string
// equality; there is no hashing in this format.
type Credentials struct {
	path string
}

// OpenCredentials ensures the credential file exists and returns a gate
// over it. The data directory is created if needed; the gate must work on a
// fresh directory regardless of which store backend owns it.
func OpenCredentials(dir string) (*Credentials, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, wrapStoreError(errorSubjectCredentials, errorCodeWrite, err)
	}
	path := filepath.Join(dir, credentialsFileName)
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		if writeErr := os.WriteFile(path, []byte(defaultAdminPassword), 0o600); writeErr != nil {
			return nil, wrapStoreError(errorSubjectCredentials, errorCodeWrite, writeErr)
		}
	} else if err != nil {
		return nil, wrapStoreError(errorSubjectCredentials, errorCodeRead, err)
	}
	return &Credentials{path: path}, nil
}

// Verify compares the candidate against the stored password.
func (credentials *Credentials) Verify(candidate string) (bool, error) {
	content, err := os.ReadFile(credentials.path)
	if err != nil {
		return false, wrapStoreError(errorSubjectCredentials, errorCodeRead, err)
	}
	stored, _, _ := strings.Cut(string(content), "\n")
	return candidate == strings.TrimRight(stored, "\r"), nil
}
