package taskapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"taskdeck/internal/backend/taskapi"
	"taskdeck/internal/service"
	"taskdeck/internal/session"
)

func newStore(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(filepath.Join(t.TempDir(), "session.json"))
}

func newClient(t *testing.T, store *session.Store, handler http.Handler) *taskapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return taskapi.NewWithTransport(srv.URL, store, http.DefaultTransport)
}

func TestListTasksSendsRawTokenHeader(t *testing.T) {
	store := newStore(t)
	if err := store.Save(session.Session{Token: "T1"}); err != nil {
		t.Fatal(err)
	}

	var gotAuth string
	client := newClient(t, store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"tasks": []service.Task{}, "count": 0})
	}))

	if _, err := client.ListTasks(context.Background(), 1, 5, ""); err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	// Verbatim token, no "Bearer " prefix.
	if gotAuth != "T1" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "T1")
	}
}

func TestAnonymousRequestOmitsAuthorization(t *testing.T) {
	store := newStore(t)

	var hasAuth bool
	client := newClient(t, store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		json.NewEncoder(w).Encode(map[string]any{"tasks": []service.Task{}, "count": 0})
	}))

	if _, err := client.ListTasks(context.Background(), 1, 5, ""); err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if hasAuth {
		t.Error("expected no Authorization header for anonymous session")
	}
}

func TestLoginReturnsIdentityAndToken(t *testing.T) {
	store := newStore(t)
	client := newClient(t, store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "a@b.com" || body["password"] != "x" {
			t.Errorf("unexpected login body: %v", body)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"user": map[string]string{
				"firstName": "A", "lastName": "B", "email": "a@b.com", "token": "T1",
			},
		})
	}))

	id, token, err := client.Login(context.Background(), "a@b.com", "x")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token != "T1" {
		t.Errorf("token = %q, want %q", token, "T1")
	}
	want := service.Identity{FirstName: "A", LastName: "B", Email: "a@b.com"}
	if id != want {
		t.Errorf("identity = %+v, want %+v", id, want)
	}
}

func TestListTasksSendsPageLimitStatus(t *testing.T) {
	store := newStore(t)
	var got map[string]any
	client := newClient(t, store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tasks/getTasks" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(map[string]any{"tasks": []service.Task{}, "count": 0})
	}))

	if _, err := client.ListTasks(context.Background(), 3, 25, service.StatusPending); err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if got["page"] != float64(3) || got["limit"] != float64(25) || got["status"] != "Pending" {
		t.Errorf("request body = %v", got)
	}
}

func TestDeleteTasksSendsOneRequestWithAllIDs(t *testing.T) {
	store := newStore(t)
	var requests int
	var gotIDs []string
	client := newClient(t, store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.Method != http.MethodDelete || r.URL.Path != "/api/tasks/deleteTask" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotIDs = r.URL.Query()["id"]
	}))

	if err := client.DeleteTasks(context.Background(), []string{"1", "2", "3"}); err != nil {
		t.Fatalf("DeleteTasks: %v", err)
	}
	if requests != 1 {
		t.Errorf("expected one request, got %d", requests)
	}
	if len(gotIDs) != 3 || gotIDs[0] != "1" || gotIDs[1] != "2" || gotIDs[2] != "3" {
		t.Errorf("ids = %v, want [1 2 3]", gotIDs)
	}
}

func TestUpdateTaskUsesPutWithID(t *testing.T) {
	store := newStore(t)
	client := newClient(t, store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/tasks/updateTask/42" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var task service.Task
		json.NewDecoder(r.Body).Decode(&task)
		json.NewEncoder(w).Encode(task)
	}))

	task := service.Task{
		ID:      "42",
		Title:   "t",
		DueDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Status:  service.StatusPending,
	}
	got, err := client.UpdateTask(context.Background(), task)
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if got.ID != "42" {
		t.Errorf("ID = %q, want %q", got.ID, "42")
	}
}

func TestUpdateTaskWithoutIDFails(t *testing.T) {
	store := newStore(t)
	client := newClient(t, store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))

	if _, err := client.UpdateTask(context.Background(), service.Task{Title: "t"}); err == nil {
		t.Error("expected error for update without id")
	}
}

func TestCreateTaskStripsID(t *testing.T) {
	store := newStore(t)
	client := newClient(t, store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]any
		json.NewDecoder(r.Body).Decode(&raw)
		if _, ok := raw["_id"]; ok {
			t.Error("create body should not carry _id")
		}
		raw["_id"] = "new"
		json.NewEncoder(w).Encode(raw)
	}))

	got, err := client.CreateTask(context.Background(), service.Task{ID: "stale", Title: "t"})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if got.ID != "new" {
		t.Errorf("ID = %q, want %q", got.ID, "new")
	}
}

func TestUnauthorizedResponseFiresHookAndSentinel(t *testing.T) {
	store := newStore(t)
	client := newClient(t, store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	var fired int
	client.OnUnauthorized = func() { fired++ }

	_, err := client.ListTasks(context.Background(), 1, 5, "")
	if !errors.Is(err, service.ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
	if fired != 1 {
		t.Errorf("OnUnauthorized fired %d times, want 1", fired)
	}
}

func TestAPIErrorMessageSurfaced(t *testing.T) {
	store := newStore(t)
	client := newClient(t, store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "title taken"})
	}))

	_, err := client.CreateTask(context.Background(), service.Task{Title: "t"})
	if err == nil || err.Error() != "title taken" {
		t.Errorf("err = %v, want %q", err, "title taken")
	}
}

func TestAPIErrorFallbackMessage(t *testing.T) {
	store := newStore(t)
	client := newClient(t, store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.CreateTask(context.Background(), service.Task{Title: "t"})
	if err == nil || err.Error() != "request failed: 500 Internal Server Error" {
		t.Errorf("err = %v, want fallback message", err)
	}
}
