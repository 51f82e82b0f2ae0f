// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/danielhkuo/storybooks/auth"
	"github.com/danielhkuo/storybooks/models"
	"github.com/danielhkuo/storybooks/store"
	"github.com/danielhkuo/storybooks/view"
)

type StoryHandler struct {
	stories *store.Stories
	views   Renderer
}

func NewStoryHandler(stories *store.Stories, views Renderer) *StoryHandler {
	return &StoryHandler{stories: stories, views: views}
}

func storyForm(r *http.Request) models.StoryForm {
	return models.StoryForm{
		Title:  r.PostFormValue("title"),
		Body:   r.PostFormValue("body"),
		Status: r.PostFormValue("status"),
	}
}

func formData(form models.StoryForm) map[string]any {
	return map[string]any{
		"title":  form.Title,
		"body":   form.Body,
		"status": form.Status,
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, store.ErrTitleRequired) || errors.Is(err, store.ErrInvalidStatus)
}

// Add handles GET /stories/add
func (h *StoryHandler) Add(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, r, "stories/add", nil)
}

// Create handles POST /stories
func (h *StoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	form := storyForm(r)

	story, err := h.stories.Create(r.Context(), user.ID, form)
	if isValidationError(err) {
		h.views.RenderStatus(w, r, http.StatusBadRequest, "stories/add", map[string]any{
			"error": err.Error(),
			"form":  formData(form),
		})
		return
	}
	if err != nil {
		slog.Error("failed to create story", "user_id", user.ID, "error", err)
		renderError(h.views, w, r, http.StatusInternalServerError)
		return
	}

	slog.Info("story created", "story_id", story.ID, "user_id", user.ID)
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// Index handles GET /stories
func (h *StoryHandler) Index(w http.ResponseWriter, r *http.Request) {
	stories, err := h.stories.ListPublic(r.Context())
	if err != nil {
		slog.Error("failed to list public stories", "error", err)
		renderError(h.views, w, r, http.StatusInternalServerError)
		return
	}

	h.views.Render(w, r, "stories/index", map[string]any{"stories": view.Stories(stories)})
}

// Show handles GET /stories/{id}. Private stories are visible to their
// author only.
func (h *StoryHandler) Show(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	story, ok := h.load(w, r)
	if !ok {
		return
	}
	if !story.IsPublic() && story.UserID != user.ID {
		renderError(h.views, w, r, http.StatusNotFound)
		return
	}

	h.views.Render(w, r, "stories/show", map[string]any{"story": view.Story(story)})
}

// Edit handles GET /stories/edit/{id}
func (h *StoryHandler) Edit(w http.ResponseWriter, r *http.Request) {
	story, ok := h.loadOwned(w, r)
	if !ok {
		return
	}

	h.views.Render(w, r, "stories/edit", map[string]any{"story": view.Story(story)})
}

// Update handles PUT /stories/{id}
func (h *StoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	story, ok := h.loadOwned(w, r)
	if !ok {
		return
	}

	form := storyForm(r)
	_, err := h.stories.Update(r.Context(), story.ID, form)
	if isValidationError(err) {
		data := view.Story(story)
		data["title"] = form.Title
		data["body"] = form.Body
		data["status"] = form.Status
		h.views.RenderStatus(w, r, http.StatusBadRequest, "stories/edit", map[string]any{
			"error": err.Error(),
			"story": data,
		})
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		renderError(h.views, w, r, http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to update story", "story_id", story.ID, "error", err)
		renderError(h.views, w, r, http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// Delete handles DELETE /stories/{id}
func (h *StoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	story, ok := h.loadOwned(w, r)
	if !ok {
		return
	}

	if err := h.stories.Delete(r.Context(), story.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
		slog.Error("failed to delete story", "story_id", story.ID, "error", err)
		renderError(h.views, w, r, http.StatusInternalServerError)
		return
	}

	slog.Info("story deleted", "story_id", story.ID)
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// UserStories handles GET /stories/user/{userId}
func (h *StoryHandler) UserStories(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	stories, err := h.stories.ListPublicByUser(r.Context(), userID)
	if err != nil {
		slog.Error("failed to list user stories", "user_id", userID, "error", err)
		renderError(h.views, w, r, http.StatusInternalServerError)
		return
	}

	h.views.Render(w, r, "stories/index", map[string]any{"stories": view.Stories(stories)})
}

// load fetches the story named by the {id} URL parameter, rendering
// 404 or 500 itself when it cannot
func (h *StoryHandler) load(w http.ResponseWriter, r *http.Request) (*models.Story, bool) {
	id := chi.URLParam(r, "id")

	story, err := h.stories.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		renderError(h.views, w, r, http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		slog.Error("failed to load story", "story_id", id, "error", err)
		renderError(h.views, w, r, http.StatusInternalServerError)
		return nil, false
	}
	return story, true
}

// loadOwned is load plus an ownership check; other users' stories
// redirect to /stories
func (h *StoryHandler) loadOwned(w http.ResponseWriter, r *http.Request) (*models.Story, bool) {
	story, ok := h.load(w, r)
	if !ok {
		return nil, false
	}

	if user := auth.UserFromContext(r.Context()); story.UserID != user.ID {
		http.Redirect(w, r, "/stories", http.StatusFound)
		return nil, false
	}
	return story, true
}
