// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/storybooks/cliparse"
	"github.com/danielhkuo/storybooks/db"
	"github.com/danielhkuo/storybooks/models"
)

// SetupTestDB creates a fresh SQLite database with the full schema in a
// temporary directory. The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "storybooks_test.db")
	conn, err := db.Connect(context.Background(), cliparse.DatabaseSQLite, "file:"+path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Env:               cliparse.ModeProduction,
		Port:              3000,
		DatabaseURL:       "file:storybooks_test.db",
		DatabaseType:      cliparse.DatabaseSQLite,
		SessionSecret:     "test-session-secret",
		SessionStore:      cliparse.SessionStoreMemory,
		SessionMaxAge:     time.Hour,
		GoogleClientID:    "test-client-id",
		GoogleCallbackURL: "http://localhost:3000/auth/google/callback",
	}
}

// CreateTestUser inserts a user and returns it
func CreateTestUser(t *testing.T, conn *sql.DB, firstName string) *models.User {
	t.Helper()

	user := &models.User{
		ID:          uuid.NewString(),
		GoogleID:    "google-" + uuid.NewString(),
		DisplayName: firstName + " Tester",
		FirstName:   firstName,
		LastName:    "Tester",
		Image:       "https://example.com/" + strings.ToLower(firstName) + ".png",
		CreatedAt:   time.Now().UTC(),
	}

	_, err := conn.Exec(`
		INSERT INTO users (id, google_id, display_name, first_name, last_name, image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, user.ID, user.GoogleID, user.DisplayName, user.FirstName, user.LastName, user.Image, user.CreatedAt)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// CreateTestStory inserts a story owned by userID
// status should be "public" or "private"
func CreateTestStory(t *testing.T, conn *sql.DB, userID, title, status string) *models.Story {
	t.Helper()

	story := &models.Story{
		ID:        uuid.NewString(),
		Title:     title,
		Body:      "<p>Body of " + title + "</p>",
		Status:    status,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	_, err := conn.Exec(`
		INSERT INTO stories (id, title, body, status, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, story.ID, story.Title, story.Body, story.Status, story.UserID, story.CreatedAt)
	if err != nil {
		t.Fatalf("Failed to create test story: %v", err)
	}

	return story
}

// MakeRequest creates an HTTP test request with a JSON body
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeFormRequest creates an HTTP test request with a urlencoded body
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks that the response redirects to location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusFound {
		t.Errorf("Expected redirect (302), got %d. Body: %s", w.Code, w.Body.String())
		return
	}
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %s, got %s", location, got)
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
