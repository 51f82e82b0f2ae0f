// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain and request types for StoryBooks.

# Domain Types

  - User: a Google-authenticated account
  - Story: a titled rich-text post owned by a user
  - GoogleProfile: fields read from the Google userinfo endpoint

# Request Types

  - StoryForm: title, body, status (from the add/edit forms)
  - ErrorResponse: error, message (JSON error bodies)

# Constants

Story visibility:

	StatusPublic  = "public"
	StatusPrivate = "private"
*/
package models
