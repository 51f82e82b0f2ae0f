// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/storybooks/testutil"
)

// captureRequest runs h and returns the request the inner handler saw
func captureRequest(t *testing.T, h func(http.Handler) http.Handler, req *http.Request) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	var seen *http.Request
	handler := h(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r
	}))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return seen, w
}

func TestBodyParser_URLEncoded(t *testing.T) {
	req := testutil.MakeFormRequest("POST", "/stories?q=1", url.Values{
		"title":  {"My Story"},
		"status": {"private"},
	})

	seen, _ := captureRequest(t, BodyParser, req)
	require.NotNil(t, seen)
	assert.Equal(t, "My Story", seen.PostForm.Get("title"))
	assert.Equal(t, "private", seen.PostForm.Get("status"))
	assert.Equal(t, "1", seen.Form.Get("q"))
	assert.Empty(t, seen.PostForm.Get("q"))
}

func TestBodyParser_JSON(t *testing.T) {
	body := map[string]interface{}{
		"title":  "Json",
		"count":  3,
		"draft":  true,
		"tags":   []string{"a", "b"},
		"author": map[string]string{"name": "Ada"},
	}
	req := testutil.MakeRequest("POST", "/stories", body, nil)

	seen, _ := captureRequest(t, BodyParser, req)
	require.NotNil(t, seen)
	assert.Equal(t, "Json", seen.PostForm.Get("title"))
	assert.Equal(t, "3", seen.PostForm.Get("count"))
	assert.Equal(t, "true", seen.PostForm.Get("draft"))
	assert.Equal(t, []string{"a", "b"}, seen.PostForm["tags"])
	assert.Equal(t, "Ada", seen.PostForm.Get("author[name]"))
	assert.Equal(t, "Json", seen.FormValue("title"))
}

func TestBodyParser_JSONArray(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`["first", {"title": "Nested"}, [1, 2]]`))
	req.Header.Set("Content-Type", "application/json")

	seen, w := captureRequest(t, BodyParser, req)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "first", seen.PostForm.Get("0"))
	assert.Equal(t, "Nested", seen.PostForm.Get("1[title]"))
	assert.Equal(t, []string{"1", "2"}, seen.PostForm["2"])
}

func TestBodyParser_EmptyJSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/json")

	seen, w := captureRequest(t, BodyParser, req)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, seen)
	assert.Empty(t, seen.PostForm)
}

func TestBodyParser_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		contentType string
		body        string
		status      int
	}{
		{"malformed JSON", "application/json", `{"title":`, http.StatusBadRequest},
		{"JSON string", "application/json", `"title"`, http.StatusBadRequest},
		{"JSON number", "application/json", `42`, http.StatusBadRequest},
		{"JSON too large", "application/json", `{"body":"` + strings.Repeat("x", MaxBodyBytes) + `"}`, http.StatusRequestEntityTooLarge},
		{"form too large", "application/x-www-form-urlencoded", "body=" + strings.Repeat("x", MaxBodyBytes), http.StatusRequestEntityTooLarge},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", tc.contentType)

			seen, w := captureRequest(t, BodyParser, req)
			assert.Nil(t, seen)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestBodyParser_OtherContentTypes(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader("raw"))
	req.Header.Set("Content-Type", "text/plain")

	seen, _ := captureRequest(t, BodyParser, req)
	require.NotNil(t, seen)
	assert.Nil(t, seen.PostForm)
}

func TestMethodOverride(t *testing.T) {
	testCases := []struct {
		name       string
		method     string
		override   string
		wantMethod string
	}{
		{"PUT override", "POST", "PUT", "PUT"},
		{"DELETE override lowercase", "POST", "delete", "DELETE"},
		{"invalid method ignored", "POST", "FROB", "POST"},
		{"GET not overridden", "GET", "DELETE", "GET"},
	}

	chain := func(next http.Handler) http.Handler {
		return BodyParser(MethodOverride(next))
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.MakeFormRequest(tc.method, "/stories/1", url.Values{
				"_method": {tc.override},
				"title":   {"T"},
			})

			seen, _ := captureRequest(t, chain, req)
			require.NotNil(t, seen)
			assert.Equal(t, tc.wantMethod, seen.Method)

			if tc.method == "POST" {
				assert.NotContains(t, seen.PostForm, MethodOverrideField)
				assert.NotContains(t, seen.Form, MethodOverrideField)
				assert.Equal(t, "T", seen.PostForm.Get("title"))
			}
		})
	}
}

func TestMethodOverride_NoField(t *testing.T) {
	req := testutil.MakeFormRequest("POST", "/stories", url.Values{"title": {"T"}})

	seen, _ := captureRequest(t, func(next http.Handler) http.Handler {
		return BodyParser(MethodOverride(next))
	}, req)
	require.NotNil(t, seen)
	assert.Equal(t, "POST", seen.Method)
}
