// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes and middleware chain for StoryBooks.

# Route Registration

NewRouter returns a chi router with every endpoint mounted:

	mux := router.NewRouter(router.Deps{
		DB: db, Config: cfg, Sessions: sessions,
		Views: views, Strategy: google, Public: web.Public(),
	})

# Middleware Order

	metrics → body parser → method override → request logger (development)
	→ session → load user → locals → static files → routes

Method override must see the parsed body and run before routing.

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Index:

	GET /          - Login page (guests only)
	GET /dashboard - Own stories (users only)

Auth:

	GET /auth/google          - Start Google login
	GET /auth/google/callback - Finish Google login
	GET /auth/logout          - Log out

Stories (users only):

	GET    /stories               - Public stories
	GET    /stories/add           - New story form
	POST   /stories               - Create story
	GET    /stories/{id}          - Show story
	GET    /stories/edit/{id}     - Edit form
	PUT    /stories/{id}          - Update story
	DELETE /stories/{id}          - Delete story
	GET    /stories/user/{userId} - A user's public stories

Unknown paths render error/404.
*/
package router
