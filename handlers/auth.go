// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/storybooks/auth"
	"github.com/danielhkuo/storybooks/models"
	"github.com/danielhkuo/storybooks/session"
	"github.com/danielhkuo/storybooks/store"
)

// sessionStateKey holds the OAuth state between redirect and callback
const sessionStateKey = "oauth_state"

// Strategy is an OAuth login provider. *auth.GoogleStrategy satisfies it.
type Strategy interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (models.GoogleProfile, error)
}

type AuthHandler struct {
	strategy Strategy
	users    *store.Users
}

func NewAuthHandler(strategy Strategy, users *store.Users) *AuthHandler {
	return &AuthHandler{strategy: strategy, users: users}
}

// Login handles GET /auth/google
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	if sess == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	state, err := auth.GenerateState()
	if err != nil {
		slog.Error("failed to generate oauth state", "error", err)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	sess.Set(sessionStateKey, state)

	http.Redirect(w, r, h.strategy.AuthCodeURL(state), http.StatusFound)
}

// Callback handles GET /auth/google/callback. Any failure sends the user
// back to the login page.
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	if sess == nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	expected := sess.Get(sessionStateKey)
	sess.Delete(sessionStateKey)

	query := r.URL.Query()
	if reason := query.Get("error"); reason != "" {
		slog.Info("google login declined", "reason", reason)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	if err := auth.ValidateState(expected, query.Get("state")); err != nil {
		slog.Warn("google login rejected", "error", err)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	profile, err := h.strategy.Exchange(r.Context(), query.Get("code"))
	if err != nil {
		slog.Error("google exchange failed", "error", err)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	user, created, err := h.users.FindOrCreateByGoogleID(r.Context(), profile)
	if err != nil {
		slog.Error("failed to find or create user", "google_id", profile.ID, "error", err)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	if created {
		slog.Info("user created", "user_id", user.ID)
	}

	id, err := session.NewID()
	if err != nil {
		slog.Error("failed to generate session ID", "error", err)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	sess.Regenerate(id)
	sess.Set(auth.SessionUserKey, user.ID)

	slog.Info("user logged in", "user_id", user.ID)
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// Logout handles GET /auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if sess := session.FromContext(r.Context()); sess != nil {
		sess.Destroy()
	}
	http.Redirect(w, r, "/", http.StatusFound)
}
