// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session provides server-side sessions behind a signed cookie.

# Manager

	mgr, err := session.NewManager(store, session.Options{
		Secret: cfg.SessionSecret,
		MaxAge: cfg.SessionMaxAge,
	})
	handler = mgr.Middleware(handler)

NewManager returns ErrSecretRequired when no secret is configured.

Inside handlers:

	sess := session.FromContext(r.Context())
	sess.Set("user_id", user.ID)
	sess.Destroy()

A session is written to its store only when its values change, and a new
session that was never modified gets no cookie. Changes are committed just
before the response headers are sent, so redirects carry the cookie.

# Stores

  - MemoryStore: process memory, for development and tests
  - SQLStore: the sessions table of the application database
  - RedisStore: JSON values with a Redis TTL

All stores implement Store and return ErrNotFound for missing or expired
sessions.
*/
package session
