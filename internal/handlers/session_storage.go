package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"

	"sesotho-storefront/internal/middleware"
	"sesotho-storefront/internal/services"
)

// SessionCartStorage mirrors the cart into the visitor's cookie session for
// the duration of one request. Each request builds a fresh instance around
// its own writer and request.
type SessionCartStorage struct {
	store sessions.Store
	r     *http.Request
	w     http.ResponseWriter
}

// NewSessionCartStorage creates a session-backed cart storage for a request
func NewSessionCartStorage(store sessions.Store, w http.ResponseWriter, r *http.Request) *SessionCartStorage {
	return &SessionCartStorage{store: store, r: r, w: w}
}

// Load reads the serialized cart from the session. A broken session cookie
// is treated as absent rather than an error.
func (s *SessionCartStorage) Load() ([]byte, error) {
	session, err := s.store.Get(s.r, middleware.SessionName)
	if err != nil {
		return nil, nil
	}

	raw, ok := session.Values[services.CartStorageKey].(string)
	if !ok || raw == "" {
		return nil, nil
	}

	return []byte(raw), nil
}

// Save writes the serialized cart back into the session cookie
func (s *SessionCartStorage) Save(data []byte) error {
	session, err := s.store.Get(s.r, middleware.SessionName)
	if err != nil {
		// Get returns a usable new session alongside decode errors
		if session == nil {
			return fmt.Errorf("failed to get session: %w", err)
		}
	}

	session.Values[services.CartStorageKey] = string(data)

	if err := session.Save(s.r, s.w); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}
