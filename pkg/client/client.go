// Package client is a Go client for the staff directory API. It keeps the
// logged-in session in memory backed by a durable local store, and attaches
// credentials per request through a provider function rather than mutating
// any shared default-header state.
//
// There is no token refresh: once the 12 hour token expires the next
// authenticated call fails with a 401 APIError and the caller must log in
// again.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Account mirrors the public user object on the wire. The server never
// sends password material.
type Account struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Contact string   `json:"contact,omitempty"`
	Roles   []string `json:"roles"`
}

// IsAdmin reports whether the account holds the Admin role.
func (a *Account) IsAdmin() bool {
	if a == nil {
		return false
	}
	for _, r := range a.Roles {
		if r == "Admin" {
			return true
		}
	}
	return false
}

// Role mirrors a role catalog entry on the wire.
type Role struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UserInput carries the fields of a create or update user call. Zero-valued
// fields are omitted from the request body.
type UserInput struct {
	Name     string   `json:"name,omitempty"`
	Email    string   `json:"email,omitempty"`
	Contact  string   `json:"contact,omitempty"`
	Password string   `json:"password,omitempty"`
	Roles    []string `json:"roles,omitempty"`
}

// RoleInput carries the fields of a create or update role call.
type RoleInput struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// fallbackRoleNames is the closed role enumeration, used when the catalog
// fetch fails.
var fallbackRoleNames = []string{"Admin", "Employee"}

// ErrNotAuthenticated is returned by authenticated calls made with no
// session loaded.
var ErrNotAuthenticated = errors.New("not authenticated")

// APIError is a non-2xx response from the server. Status 401 means the
// session is missing, expired or tampered; the caller should force a fresh
// login rather than retry.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// Client talks to the staff directory API.
type Client struct {
	base  string
	http  *http.Client
	store *SessionStore

	mu      sync.RWMutex
	session Session
}

// New creates a Client against baseURL, persisting sessions in store.
func New(baseURL string, store *SessionStore) *Client {
	return &Client{
		base:  strings.TrimRight(baseURL, "/"),
		http:  &http.Client{Timeout: 15 * time.Second},
		store: store,
	}
}

// Restore loads the persisted session into memory. Call once at startup,
// before any authenticated request.
func (c *Client) Restore(ctx context.Context) error {
	sess, err := c.store.Load(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.session = sess
	c.mu.Unlock()
	return nil
}

// Session returns a copy of the current in-memory session.
func (c *Client) Session() Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

// Credentials returns a provider consulted on each outgoing request. The
// provider reads the session under the lock, so concurrent requests always
// see a consistent token and no shared header state is mutated.
func (c *Client) Credentials() func() (string, bool) {
	return func() (string, bool) {
		c.mu.RLock()
		defer c.mu.RUnlock()
		return c.session.Token, c.session.Token != ""
	}
}

// Login exchanges credentials for a token and persists the session. The
// store write happens before the in-memory update; if persistence fails the
// whole login fails and the in-memory session is left untouched.
func (c *Client) Login(ctx context.Context, identifier, password string) (*Account, error) {
	var out struct {
		Token string   `json:"token"`
		User  *Account `json:"user"`
	}
	body := map[string]string{"identifier": identifier, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &out, false); err != nil {
		return nil, err
	}

	if err := c.store.Save(ctx, out.Token, out.User); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	c.mu.Lock()
	c.session = Session{Token: out.Token, Account: out.User}
	c.mu.Unlock()
	return out.User, nil
}

// Logout forgets the session locally. The server holds no session state, so
// nothing is contacted.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.store.Clear(ctx); err != nil {
		return err
	}
	c.mu.Lock()
	c.session = Session{}
	c.mu.Unlock()
	return nil
}

// Users lists all staff accounts. Requires an Admin session.
func (c *Client) Users(ctx context.Context) ([]Account, error) {
	var out []Account
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateUser provisions an account and returns its ID. Requires an Admin session.
func (c *Client) CreateUser(ctx context.Context, input UserInput) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/users", input, &out, true); err != nil {
		return "", err
	}
	return out.ID, nil
}

// UpdateUser applies a partial update to an account. Requires an Admin session.
func (c *Client) UpdateUser(ctx context.Context, id string, input UserInput) (*Account, error) {
	var out Account
	if err := c.do(ctx, http.MethodPut, "/api/users/"+id, input, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// Roles lists the role catalog. Requires an Admin session.
func (c *Client) Roles(ctx context.Context) ([]Role, error) {
	var out []Role
	if err := c.do(ctx, http.MethodGet, "/api/roles", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateRole adds a catalog entry. Requires an Admin session.
func (c *Client) CreateRole(ctx context.Context, input RoleInput) (*Role, error) {
	var out Role
	if err := c.do(ctx, http.MethodPost, "/api/roles", input, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRole changes a catalog entry. Requires an Admin session.
func (c *Client) UpdateRole(ctx context.Context, id string, input RoleInput) (*Role, error) {
	var out Role
	if err := c.do(ctx, http.MethodPut, "/api/roles/"+id, input, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// RoleNames returns the catalog role names, falling back to the built-in
// enumeration when the fetch fails or returns nothing.
func (c *Client) RoleNames(ctx context.Context) []string {
	roles, err := c.Roles(ctx)
	if err != nil || len(roles) == 0 {
		return append([]string(nil), fallbackRoleNames...)
	}
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}
	return names
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, authed bool) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if authed {
		tok, ok := c.Credentials()()
		if !ok {
			return ErrNotAuthenticated
		}
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode >= http.StatusBadRequest {
		var envelope struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(res.Body).Decode(&envelope)
		if envelope.Message == "" {
			envelope.Message = res.Status
		}
		return &APIError{Status: res.StatusCode, Message: envelope.Message}
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
