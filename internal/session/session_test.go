package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"taskdeck/internal/service"
	"taskdeck/internal/session"
)

func storeAt(t *testing.T) (*session.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	return session.NewStore(path), path
}

func TestSaveThenCurrentRoundTrips(t *testing.T) {
	st, _ := storeAt(t)

	want := session.Session{
		Identity: service.Identity{FirstName: "A", LastName: "B", Email: "a@b.com"},
		Token:    "T1",
	}
	if err := st.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := st.Current()
	if got != want {
		t.Errorf("Current() = %+v, want %+v", got, want)
	}
	if !got.Authenticated() {
		t.Error("expected saved session to be authenticated")
	}
}

func TestSaveCreatesMissingConfigDir(t *testing.T) {
	// Fresh install: the config dir does not exist yet.
	path := filepath.Join(t.TempDir(), "taskdeck", "session.json")
	st := session.NewStore(path)

	want := session.Session{
		Identity: service.Identity{Email: "a@b.com"},
		Token:    "T1",
	}
	if err := st.Save(want); err != nil {
		t.Fatalf("Save into missing dir: %v", err)
	}
	if got := st.Current(); got != want {
		t.Errorf("Current() = %+v, want %+v", got, want)
	}

	info, err := os.Stat(filepath.Dir(path))
	if err != nil {
		t.Fatalf("stat config dir: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0700 {
		t.Errorf("config dir mode = %o, want 0700", perm)
	}
}

func TestCurrentMissingFileIsAnonymous(t *testing.T) {
	st, _ := storeAt(t)

	got := st.Current()
	if got.Authenticated() {
		t.Errorf("expected anonymous session, got %+v", got)
	}
}

func TestCurrentMalformedFileIsAnonymous(t *testing.T) {
	st, path := storeAt(t)
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	got := st.Current()
	if got.Authenticated() {
		t.Errorf("expected anonymous session for malformed data, got %+v", got)
	}
}

func TestCurrentPartialRecordIsAnonymous(t *testing.T) {
	// Identity present but no token: must not surface as half a session.
	st, path := storeAt(t)
	partial := `{"identity":{"firstName":"A","lastName":"B","email":"a@b.com"}}`
	if err := os.WriteFile(path, []byte(partial), 0600); err != nil {
		t.Fatal(err)
	}

	got := st.Current()
	if got.Authenticated() {
		t.Errorf("expected anonymous session for token-less record, got %+v", got)
	}
	if got.Identity.Email != "" {
		t.Errorf("expected zero identity, got %+v", got.Identity)
	}
}

func TestSaveOverwritesPriorRecord(t *testing.T) {
	st, _ := storeAt(t)

	first := session.Session{
		Identity: service.Identity{FirstName: "A", LastName: "B", Email: "a@b.com"},
		Token:    "T1",
	}
	second := session.Session{
		Identity: service.Identity{FirstName: "C", LastName: "D", Email: "c@d.com"},
		Token:    "T2",
	}
	if err := st.Save(first); err != nil {
		t.Fatal(err)
	}
	if err := st.Save(second); err != nil {
		t.Fatal(err)
	}

	if got := st.Current(); got != second {
		t.Errorf("Current() = %+v, want %+v", got, second)
	}
}

func TestClearRemovesSession(t *testing.T) {
	st, path := storeAt(t)

	if err := st.Save(session.Session{Token: "T1"}); err != nil {
		t.Fatal(err)
	}
	if err := st.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected session file to be removed")
	}
	if st.Current().Authenticated() {
		t.Error("expected anonymous session after Clear")
	}
}

func TestClearAbsentSessionIsNoError(t *testing.T) {
	st, _ := storeAt(t)
	if err := st.Clear(); err != nil {
		t.Errorf("Clear on absent session: %v", err)
	}
}
