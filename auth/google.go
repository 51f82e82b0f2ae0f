// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"

	"github.com/danielhkuo/storybooks/models"
)

// GoogleUserInfoURL returns the profile of the token's owner
const GoogleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

var ErrMissingProfileID = errors.New("google profile has no id")

// GoogleConfig describes the OAuth client registered with Google.
// Endpoint and UserInfoURL default to Google's and are overridden in tests.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
	Endpoint     oauth2.Endpoint
	UserInfoURL  string
}

// GoogleStrategy runs the OAuth2 authorization code flow against Google.
type GoogleStrategy struct {
	config      *oauth2.Config
	userInfoURL string
}

func NewGoogleStrategy(cfg GoogleConfig) *GoogleStrategy {
	endpoint := cfg.Endpoint
	if endpoint.AuthURL == "" {
		endpoint = endpoints.Google
	}
	userInfoURL := cfg.UserInfoURL
	if userInfoURL == "" {
		userInfoURL = GoogleUserInfoURL
	}

	return &GoogleStrategy{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			Endpoint:     endpoint,
			Scopes:       []string{"profile"},
		},
		userInfoURL: userInfoURL,
	}
}

// Name identifies the strategy in logs
func (s *GoogleStrategy) Name() string {
	return "google"
}

// AuthCodeURL returns the consent page URL the user is redirected to
func (s *GoogleStrategy) AuthCodeURL(state string) string {
	return s.config.AuthCodeURL(state)
}

// Exchange trades the authorization code for a token and fetches the
// user's profile with it
func (s *GoogleStrategy) Exchange(ctx context.Context, code string) (models.GoogleProfile, error) {
	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return models.GoogleProfile{}, fmt.Errorf("exchange code: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userInfoURL, nil)
	if err != nil {
		return models.GoogleProfile{}, fmt.Errorf("build userinfo request: %w", err)
	}

	resp, err := s.config.Client(ctx, token).Do(req)
	if err != nil {
		return models.GoogleProfile{}, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.GoogleProfile{}, fmt.Errorf("fetch userinfo: unexpected status %d", resp.StatusCode)
	}

	var profile models.GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return models.GoogleProfile{}, fmt.Errorf("decode userinfo: %w", err)
	}
	if profile.ID == "" {
		return models.GoogleProfile{}, ErrMissingProfileID
	}

	return profile, nil
}
