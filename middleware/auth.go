// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/storybooks/auth"
	"github.com/danielhkuo/storybooks/models"
	"github.com/danielhkuo/storybooks/session"
	"github.com/danielhkuo/storybooks/store"
	"github.com/danielhkuo/storybooks/view"
)

// UserFinder resolves a user ID to a user
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// LoadUser puts the session's user into the request context. A session
// naming a user that no longer exists is treated as logged out.
func LoadUser(users UserFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := session.FromContext(r.Context())
			if sess == nil {
				next.ServeHTTP(w, r)
				return
			}

			id := sess.Get(auth.SessionUserKey)
			if id == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.FindByID(r.Context(), id)
			switch {
			case errors.Is(err, store.ErrNotFound):
				sess.Delete(auth.SessionUserKey)
			case err != nil:
				slog.Error("failed to load session user", "user_id", id, "error", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			default:
				r = r.WithContext(auth.WithUser(r.Context(), user))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireUser redirects guests to the login page
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth.UserFromContext(r.Context()) == nil {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireGuest redirects logged-in users to their dashboard
func RequireGuest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth.UserFromContext(r.Context()) != nil {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Locals exposes the current user to every view as "user"
func Locals(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var user any
		if u := auth.UserFromContext(r.Context()); u != nil {
			user = view.User(u)
		}
		next.ServeHTTP(w, r.WithContext(view.WithLocal(r.Context(), "user", user)))
	})
}
