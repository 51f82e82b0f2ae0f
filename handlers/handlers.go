// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"
)

// Renderer writes a named view. *view.Engine satisfies it.
type Renderer interface {
	Render(w http.ResponseWriter, r *http.Request, name string, data map[string]any)
	RenderStatus(w http.ResponseWriter, r *http.Request, status int, name string, data map[string]any)
}

// renderError renders error/404 or error/500
func renderError(views Renderer, w http.ResponseWriter, r *http.Request, status int) {
	views.RenderStatus(w, r, status, "error/"+strconv.Itoa(status), nil)
}
