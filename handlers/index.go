// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/storybooks/auth"
	"github.com/danielhkuo/storybooks/store"
	"github.com/danielhkuo/storybooks/view"
)

type IndexHandler struct {
	stories *store.Stories
	views   Renderer
}

func NewIndexHandler(stories *store.Stories, views Renderer) *IndexHandler {
	return &IndexHandler{stories: stories, views: views}
}

// Login handles GET /
func (h *IndexHandler) Login(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, r, "login", map[string]any{"layout": "login"})
}

// Dashboard handles GET /dashboard
func (h *IndexHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	stories, err := h.stories.ListByUser(r.Context(), user.ID)
	if err != nil {
		slog.Error("failed to list user stories", "user_id", user.ID, "error", err)
		renderError(h.views, w, r, http.StatusInternalServerError)
		return
	}

	h.views.Render(w, r, "dashboard", map[string]any{
		"name":    user.FirstName,
		"stories": view.Stories(stories),
	})
}
