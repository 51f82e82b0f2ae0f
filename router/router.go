// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/storybooks/cliparse"
	"github.com/danielhkuo/storybooks/handlers"
	"github.com/danielhkuo/storybooks/middleware"
	"github.com/danielhkuo/storybooks/session"
	"github.com/danielhkuo/storybooks/store"
	"github.com/danielhkuo/storybooks/view"
)

// Deps are the collaborators the router wires together
type Deps struct {
	DB       *sql.DB
	Config   cliparse.Config
	Sessions *session.Manager
	Views    *view.Engine
	Strategy handlers.Strategy
	Public   fs.FS
}

func NewRouter(deps Deps) *chi.Mux {
	r := chi.NewRouter()

	users := store.NewUsers(deps.DB)
	stories := store.NewStories(deps.DB)

	// Initialize handlers
	indexHandler := handlers.NewIndexHandler(stories, deps.Views)
	authHandler := handlers.NewAuthHandler(deps.Strategy, users)
	storyHandler := handlers.NewStoryHandler(stories, deps.Views)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(registry)

	// Order matters: bodies are parsed before method override reads them,
	// and the user is loaded from the session before locals expose it
	r.Use(metrics.Handler)
	r.Use(middleware.BodyParser)
	r.Use(middleware.MethodOverride)
	if deps.Config.IsDevelopment() {
		r.Use(middleware.RequestLogger)
	}
	r.Use(deps.Sessions.Middleware)
	r.Use(middleware.LoadUser(users))
	r.Use(middleware.Locals)
	r.Use(middleware.Static(deps.Public))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.With(middleware.RequireGuest).Get("/", indexHandler.Login)
	r.With(middleware.RequireUser).Get("/dashboard", indexHandler.Dashboard)

	r.Route("/auth", func(r chi.Router) {
		r.Get("/google", authHandler.Login)
		r.Get("/google/callback", authHandler.Callback)
		r.Get("/logout", authHandler.Logout)
	})

	r.Route("/stories", func(r chi.Router) {
		r.Use(middleware.RequireUser)

		r.Get("/add", storyHandler.Add)
		r.Post("/", storyHandler.Create)
		r.Get("/", storyHandler.Index)
		r.Get("/{id}", storyHandler.Show)
		r.Get("/edit/{id}", storyHandler.Edit)
		r.Put("/{id}", storyHandler.Update)
		r.Delete("/{id}", storyHandler.Delete)
		r.Get("/user/{userId}", storyHandler.UserStories)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		deps.Views.RenderStatus(w, r, http.StatusNotFound, "error/404", nil)
	})

	return r
}
