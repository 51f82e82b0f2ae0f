// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

// fakeGoogle serves the token and userinfo endpoints
func fakeGoogle(t *testing.T, profile map[string]string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		if r.PostForm.Get("code") != "good-code" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"access-123","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("GET /userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(profile)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestStrategy(srv *httptest.Server) *GoogleStrategy {
	return NewGoogleStrategy(GoogleConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		CallbackURL:  "http://localhost:3000/auth/google/callback",
		Endpoint: oauth2.Endpoint{
			AuthURL:   srv.URL + "/auth",
			TokenURL:  srv.URL + "/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
		UserInfoURL: srv.URL + "/userinfo",
	})
}

func TestGoogleStrategy_AuthCodeURL(t *testing.T) {
	srv := fakeGoogle(t, nil)
	strategy := newTestStrategy(srv)

	u, err := url.Parse(strategy.AuthCodeURL("state-xyz"))
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "/auth", u.Path)
	assert.Equal(t, "state-xyz", q.Get("state"))
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "profile", q.Get("scope"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "http://localhost:3000/auth/google/callback", q.Get("redirect_uri"))
}

func TestGoogleStrategy_DefaultsToGoogle(t *testing.T) {
	strategy := NewGoogleStrategy(GoogleConfig{ClientID: "id"})

	assert.Equal(t, "google", strategy.Name())
	assert.Contains(t, strategy.AuthCodeURL("s"), "accounts.google.com")
	assert.Equal(t, GoogleUserInfoURL, strategy.userInfoURL)
}

func TestGoogleStrategy_Exchange(t *testing.T) {
	srv := fakeGoogle(t, map[string]string{
		"id":          "google-42",
		"name":        "Jane Doe",
		"given_name":  "Jane",
		"family_name": "Doe",
		"picture":     "https://example.com/jane.png",
	})
	strategy := newTestStrategy(srv)

	profile, err := strategy.Exchange(context.Background(), "good-code")
	require.NoError(t, err)

	assert.Equal(t, "google-42", profile.ID)
	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, "Jane", profile.GivenName)
	assert.Equal(t, "Doe", profile.FamilyName)
	assert.Equal(t, "https://example.com/jane.png", profile.Picture)
}

func TestGoogleStrategy_ExchangeBadCode(t *testing.T) {
	srv := fakeGoogle(t, map[string]string{"id": "google-42"})
	strategy := newTestStrategy(srv)

	_, err := strategy.Exchange(context.Background(), "bad-code")
	assert.ErrorContains(t, err, "exchange code")
}

func TestGoogleStrategy_ExchangeMissingID(t *testing.T) {
	srv := fakeGoogle(t, map[string]string{"name": "Nobody"})
	strategy := newTestStrategy(srv)

	_, err := strategy.Exchange(context.Background(), "good-code")
	assert.ErrorIs(t, err, ErrMissingProfileID)
}
