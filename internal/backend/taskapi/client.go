// Package taskapi implements the service.Service interface against the
// remote task-management HTTP API.
package taskapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"taskdeck/internal/config"
	"taskdeck/internal/service"
	"taskdeck/internal/session"
)

const (
	// APITimeout is the timeout for API calls.
	APITimeout = 5 * time.Second

	authBasePath = "/api/auth"
	taskBasePath = "/api/tasks"
)

// Client implements service.Service over the remote API.
type Client struct {
	baseURL string
	http    *http.Client
	debug   bool

	// OnUnauthorized, if set, is invoked once per request that the API
	// rejects with 401/403. Callers use it to clear the session and
	// redirect to login.
	OnUnauthorized func()
}

// New creates a client for the API root in cfg. Task-API requests carry the
// stored token verbatim as the Authorization header; auth requests do not.
func New(cfg *config.Config, store *session.Store) *Client {
	c := NewWithTransport(cfg.APIURL, store, http.DefaultTransport)
	c.debug = cfg.Debug
	return c
}

// NewWithTransport creates a client with a custom base transport (for testing).
func NewWithTransport(baseURL string, store *session.Store, base http.RoundTripper) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: &authTransport{base: base, store: store},
		},
	}
}

// authTransport injects the stored token into outbound requests.
// The raw token is sent as-is; the API does not use a "Bearer " prefix.
// Anonymous sessions send no Authorization header at all.
type authTransport struct {
	base  http.RoundTripper
	store *session.Store
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if s := t.store.Current(); s.Authenticated() {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", s.Token)
	}
	return t.base.RoundTrip(req)
}

// Login implements service.Service.
func (c *Client) Login(ctx context.Context, email, password string) (service.Identity, string, error) {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		User struct {
			service.Identity
			Token string `json:"token"`
		} `json:"user"`
	}
	if err := c.call(ctx, http.MethodPost, authBasePath+"/login", body, &resp); err != nil {
		return service.Identity{}, "", err
	}
	return resp.User.Identity, resp.User.Token, nil
}

// Register implements service.Service.
func (c *Client) Register(ctx context.Context, firstName, lastName, email, password string) (string, error) {
	body := map[string]string{
		"firstName": firstName,
		"lastName":  lastName,
		"email":     email,
		"password":  password,
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.call(ctx, http.MethodPost, authBasePath+"/register", body, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// ListTasks implements service.Service. page is 1-based.
func (c *Client) ListTasks(ctx context.Context, page, limit int, status service.Status) (service.TaskPage, error) {
	body := map[string]any{"page": page, "limit": limit, "status": status}
	var resp struct {
		Tasks []service.Task `json:"tasks"`
		Count int            `json:"count"`
	}
	if err := c.call(ctx, http.MethodPost, taskBasePath+"/getTasks", body, &resp); err != nil {
		return service.TaskPage{}, err
	}
	return service.TaskPage{Tasks: resp.Tasks, Total: resp.Count}, nil
}

// CreateTask implements service.Service.
func (c *Client) CreateTask(ctx context.Context, task service.Task) (service.Task, error) {
	task.ID = ""
	var created service.Task
	if err := c.call(ctx, http.MethodPost, taskBasePath+"/createTask", task, &created); err != nil {
		return service.Task{}, err
	}
	return created, nil
}

// UpdateTask implements service.Service.
func (c *Client) UpdateTask(ctx context.Context, task service.Task) (service.Task, error) {
	if task.ID == "" {
		return service.Task{}, fmt.Errorf("update requires a task id")
	}
	path := taskBasePath + "/updateTask/" + url.PathEscape(task.ID)
	var updated service.Task
	if err := c.call(ctx, http.MethodPut, path, task, &updated); err != nil {
		return service.Task{}, err
	}
	return updated, nil
}

// DeleteTasks implements service.Service. All ids travel in one request as
// repeated id query parameters.
func (c *Client) DeleteTasks(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return fmt.Errorf("delete requires at least one task id")
	}
	q := url.Values{}
	for _, id := range ids {
		q.Add("id", id)
	}
	return c.call(ctx, http.MethodDelete, taskBasePath+"/deleteTask?"+q.Encode(), nil, nil)
}

// call performs one JSON request/response cycle with the API timeout.
func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if c.debug {
		if err != nil {
			log.Printf("taskapi: %s %s failed after %s: %v", method, path, time.Since(start).Round(time.Millisecond), err)
		} else {
			log.Printf("taskapi: %s %s -> %s in %s", method, path, resp.Status, time.Since(start).Round(time.Millisecond))
		}
	}
	if err != nil {
		return wrapError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		if c.OnUnauthorized != nil {
			c.OnUnauthorized()
		}
		return service.ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// apiError extracts the API's message field, falling back to the HTTP status
// when the body carries none.
func apiError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Message != "" {
		return fmt.Errorf("%s", payload.Message)
	}
	return fmt.Errorf("request failed: %s", resp.Status)
}

// wrapError normalizes transport failures into friendlier messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "context deadline exceeded"):
		return fmt.Errorf("request timed out")
	case strings.Contains(msg, "connection refused"):
		return fmt.Errorf("cannot reach the task API")
	}
	return err
}
