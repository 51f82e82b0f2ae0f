// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
	"maps"
	"time"
)

var (
	ErrNotFound       = errors.New("session not found")
	ErrSecretRequired = errors.New("secret option required for sessions")
)

// Store persists session values keyed by session ID.
// Get returns ErrNotFound for missing and expired sessions.
type Store interface {
	Get(ctx context.Context, id string) (map[string]string, error)
	Set(ctx context.Context, id string, values map[string]string, ttl time.Duration) error
	Destroy(ctx context.Context, id string) error
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*SQLStore)(nil)
	_ Store = (*RedisStore)(nil)
)

// Session is the per-request view of a stored session. It is not safe for
// concurrent use; each request gets its own.
type Session struct {
	id        string
	values    map[string]string
	stored    bool // loaded from the store
	modified  bool
	destroyed bool

	// previousID is removed from the store on commit after Regenerate
	previousID string
}

func newSession(id string, values map[string]string, stored bool) *Session {
	if values == nil {
		values = map[string]string{}
	}
	return &Session{id: id, values: values, stored: stored}
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// IsNew reports whether the session was created during this request
func (s *Session) IsNew() bool {
	return !s.stored
}

// Get returns the value for key or "" if unset
func (s *Session) Get(key string) string {
	return s.values[key]
}

// Set stores a value and marks the session for saving
func (s *Session) Set(key, value string) {
	if old, ok := s.values[key]; ok && old == value {
		return
	}
	s.values[key] = value
	s.modified = true
}

// Delete removes a value and marks the session for saving
func (s *Session) Delete(key string) {
	if _, ok := s.values[key]; !ok {
		return
	}
	delete(s.values, key)
	s.modified = true
}

// Values returns a copy of all values
func (s *Session) Values() map[string]string {
	return maps.Clone(s.values)
}

// Destroy removes the session from the store and expires its cookie
func (s *Session) Destroy() {
	s.destroyed = true
	s.values = map[string]string{}
}

// Regenerate moves the values to a fresh session ID, dropping the old one.
// Used on login to prevent session fixation.
func (s *Session) Regenerate(newID string) {
	if s.stored && s.previousID == "" {
		s.previousID = s.id
	}
	s.id = newID
	s.stored = false
	s.modified = true
}

type contextKey struct{}

func withSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the request's session, or nil when the session
// middleware is not installed
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(contextKey{}).(*Session)
	return s
}
