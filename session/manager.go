// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/storybooks/auth"
)

const (
	DefaultCookieName = "storybooks.sid"
	DefaultMaxAge     = 14 * 24 * time.Hour
)

// Options configures the session cookie
type Options struct {
	Secret     string
	CookieName string
	MaxAge     time.Duration
	Secure     bool
}

// Manager loads sessions for incoming requests and commits them before the
// response headers are written.
//
// Sessions are only written to the store when their values change, and new
// sessions without values never reach the store or get a cookie.
type Manager struct {
	store Store
	opts  Options
}

func NewManager(store Store, opts Options) (*Manager, error) {
	if opts.Secret == "" {
		return nil, ErrSecretRequired
	}
	if store == nil {
		return nil, errors.New("session store required")
	}
	if opts.CookieName == "" {
		opts.CookieName = DefaultCookieName
	}
	if opts.MaxAge <= 0 {
		opts.MaxAge = DefaultMaxAge
	}
	return &Manager{store: store, opts: opts}, nil
}

// NewID returns a fresh random session ID
func NewID() (string, error) {
	return auth.GenerateID(24)
}

// Middleware attaches the request's session to its context
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := m.load(r)
		if err != nil {
			slog.Error("failed to load session", "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		cw := &commitWriter{ResponseWriter: w}
		cw.commit = func() { m.commit(w, r, sess) }

		next.ServeHTTP(cw, r.WithContext(withSession(r.Context(), sess)))

		// Handlers that never write still get their session saved
		cw.doCommit()
	})
}

// load returns the stored session named by the request cookie, or a new
// empty one when the cookie is missing, forged or expired
func (m *Manager) load(r *http.Request) (*Session, error) {
	if cookie, err := r.Cookie(m.opts.CookieName); err == nil {
		id, err := auth.Unsign(cookie.Value, m.opts.Secret)
		if err == nil {
			values, err := m.store.Get(r.Context(), id)
			if err == nil {
				return newSession(id, values, true), nil
			}
			if !errors.Is(err, ErrNotFound) {
				return nil, err
			}
		}
	}

	id, err := NewID()
	if err != nil {
		return nil, err
	}
	return newSession(id, nil, false), nil
}

func (m *Manager) commit(w http.ResponseWriter, r *http.Request, sess *Session) {
	ctx := r.Context()

	if sess.previousID != "" {
		if err := m.store.Destroy(ctx, sess.previousID); err != nil {
			slog.Error("failed to destroy previous session", "error", err)
		}
		sess.previousID = ""
	}

	if sess.destroyed {
		if sess.stored {
			if err := m.store.Destroy(ctx, sess.id); err != nil {
				slog.Error("failed to destroy session", "error", err)
			}
		}
		http.SetCookie(w, m.cookie("", -1))
		return
	}

	if !sess.modified {
		return
	}

	if err := m.store.Set(ctx, sess.id, sess.values, m.opts.MaxAge); err != nil {
		slog.Error("failed to save session", "error", err)
		return
	}
	sess.stored = true
	sess.modified = false

	http.SetCookie(w, m.cookie(auth.Sign(sess.id, m.opts.Secret), int(m.opts.MaxAge.Seconds())))
}

func (m *Manager) cookie(value string, maxAge int) *http.Cookie {
	c := &http.Cookie{
		Name:     m.opts.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if maxAge > 0 {
		c.Expires = time.Now().Add(time.Duration(maxAge) * time.Second)
	}
	return c
}

// commitWriter runs commit once, right before the headers are sent
type commitWriter struct {
	http.ResponseWriter
	commit    func()
	committed bool
}

func (cw *commitWriter) doCommit() {
	if cw.committed {
		return
	}
	cw.committed = true
	cw.commit()
}

func (cw *commitWriter) WriteHeader(code int) {
	cw.doCommit()
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *commitWriter) Write(b []byte) (int, error) {
	cw.doCommit()
	return cw.ResponseWriter.Write(b)
}

// Unwrap exposes the underlying writer to http.ResponseController
func (cw *commitWriter) Unwrap() http.ResponseWriter {
	return cw.ResponseWriter
}
