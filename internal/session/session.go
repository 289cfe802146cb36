// Package session stores the locally persisted proof of authentication.
//
// The session is modeled as a single indivisible value: it is authenticated
// exactly when a token is present. Reads fail soft — a missing file, malformed
// JSON, or a record without a token all behave as "logged out", never as an
// error.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"taskdeck/internal/service"
)

// Session is the stored credential: identity plus the opaque API token.
// The zero value is anonymous.
type Session struct {
	Identity service.Identity `json:"identity"`
	Token    string           `json:"token"`
}

// Authenticated reports whether the session holds a usable credential.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Store reads and writes the session record at a fixed path.
// Every write replaces the whole record; there are no partial updates.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Current returns the stored session, or the anonymous zero value when the
// file is missing, unparseable, or lacks a token.
func (st *Store) Current() Session {
	data, err := os.ReadFile(st.path)
	if err != nil {
		return Session{}
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}
	}
	if !s.Authenticated() {
		// A record without a token is indistinguishable from no record.
		return Session{}
	}
	return s
}

// Save writes the session with mode 0600, overwriting any prior record.
// The parent directory is created if needed, so a fresh install can log in
// before anything else touches the config dir.
func (st *Store) Save(s Session) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(st.path), 0700); err != nil {
		return err
	}
	return os.WriteFile(st.path, data, 0600)
}

// Clear removes the stored session. Clearing an absent session is not an
// error.
func (st *Store) Clear() error {
	err := os.Remove(st.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
