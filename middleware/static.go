// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// Static serves files from fsys for GET and HEAD requests whose path names
// a regular file. Everything else falls through to next.
func Static(fsys fs.FS) func(http.Handler) http.Handler {
	files := http.FileServer(http.FS(fsys))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
			if name == "" {
				next.ServeHTTP(w, r)
				return
			}

			info, err := fs.Stat(fsys, name)
			if err != nil || info.IsDir() {
				next.ServeHTTP(w, r)
				return
			}

			files.ServeHTTP(w, r)
		})
	}
}
