// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides signing helpers and the Google login strategy.

# Signed Values

Session cookies carry the session ID followed by an HMAC-SHA256 signature:

	cookie := auth.Sign(sessionID, secret)
	sessionID, err := auth.Unsign(cookie, secret)

The signature is URL-safe base64 encoded without padding. Unsign returns
ErrInvalidSignature for a missing separator, a tampered value or the wrong
secret.

# Google Strategy

GoogleStrategy runs the OAuth2 authorization code flow with the "profile"
scope:

	strategy := auth.NewGoogleStrategy(auth.GoogleConfig{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		CallbackURL:  cfg.GoogleCallbackURL,
	})
	http.Redirect(w, r, strategy.AuthCodeURL(state), http.StatusFound)
	...
	profile, err := strategy.Exchange(ctx, code)

The state parameter comes from GenerateState and is checked on callback with
ValidateState.

# Request User

Middleware stores the logged-in user on the request context:

	ctx = auth.WithUser(ctx, user)
	user := auth.UserFromContext(ctx) // nil for guests

# ID Generation

Random hex IDs for sessions:

	id, err := auth.GenerateID(24)  // 48 hex characters
*/
package auth
