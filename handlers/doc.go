// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP handlers for the StoryBooks pages.

# Handler Types

Each handler is a struct holding its stores and a Renderer:

  - IndexHandler: login page and dashboard
  - AuthHandler: Google login, callback and logout
  - StoryHandler: story CRUD and listings

Handlers are created via constructor functions:

	stories := handlers.NewStoryHandler(store.NewStories(db), views)

Handlers assume the router has already run the session, LoadUser and guard
middleware, so auth.UserFromContext is non-nil behind RequireUser.

# Login Flow

	GET /auth/google           → Login (state saved in session, redirect to Google)
	GET /auth/google/callback  → Callback (state checked, user found or created)
	GET /auth/logout           → Logout (session destroyed)

A successful callback regenerates the session ID and stores the user ID
under auth.SessionUserKey. Every failure redirects to "/".

# Stories

Only the author may edit, update or delete a story; anyone else is
redirected to /stories. Private stories are shown to their author only and
are a 404 for everyone else. Validation failures re-render the form with
status 400.

# Errors

Missing resources render error/404 and unexpected failures error/500,
after logging with slog.
*/
package handlers
