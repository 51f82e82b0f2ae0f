// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package web embeds the default views and static assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed all:views public
var assets embed.FS

// Views returns the embedded template tree rooted at views/
func Views() fs.FS {
	return sub("views")
}

// Public returns the embedded static assets rooted at public/
func Public() fs.FS {
	return sub("public")
}

func sub(dir string) fs.FS {
	f, err := fs.Sub(assets, dir)
	if err != nil {
		panic(err)
	}
	return f
}
