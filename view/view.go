// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package view

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"net/http"
	"path"
	"strings"

	"github.com/aymerick/raymond"
)

const (
	// Ext is the template file extension
	Ext = ".hbs"

	DefaultLayout = "main"

	layoutsDir  = "layouts"
	partialsDir = "partials"
)

// Engine renders handlebars views inside layouts.
//
// Templates are read from an fs.FS laid out as:
//
//	layouts/main.hbs      layout "main"
//	partials/_header.hbs  partial "_header"
//	stories/index.hbs     view "stories/index"
type Engine struct {
	layouts       map[string]*raymond.Template
	views         map[string]*raymond.Template
	defaultLayout string
}

// New parses every template in fsys. Parse errors fail immediately.
func New(fsys fs.FS) (*Engine, error) {
	partials := map[string]string{}
	layoutSources := map[string]string{}
	viewSources := map[string]string{}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != Ext {
			return nil
		}

		src, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read template %s: %w", p, err)
		}

		name := strings.TrimSuffix(p, Ext)
		switch {
		case strings.HasPrefix(name, layoutsDir+"/"):
			layoutSources[strings.TrimPrefix(name, layoutsDir+"/")] = string(src)
		case strings.HasPrefix(name, partialsDir+"/"):
			partials[strings.TrimPrefix(name, partialsDir+"/")] = string(src)
		default:
			viewSources[name] = string(src)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	funcs := helperFuncs()
	parse := func(name, src string) (*raymond.Template, error) {
		tpl, err := raymond.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		tpl.RegisterHelpers(funcs)
		tpl.RegisterPartials(partials)
		return tpl, nil
	}

	e := &Engine{
		layouts:       make(map[string]*raymond.Template, len(layoutSources)),
		views:         make(map[string]*raymond.Template, len(viewSources)),
		defaultLayout: DefaultLayout,
	}
	for name, src := range layoutSources {
		tpl, err := parse(layoutsDir+"/"+name, src)
		if err != nil {
			return nil, err
		}
		e.layouts[name] = tpl
	}
	for name, src := range viewSources {
		tpl, err := parse(name, src)
		if err != nil {
			return nil, err
		}
		e.views[name] = tpl
	}

	return e, nil
}

// Has reports whether a view with the given name was loaded
func (e *Engine) Has(name string) bool {
	_, ok := e.views[name]
	return ok
}

// Execute renders a view and wraps it in its layout.
//
// data["layout"] selects the layout: a layout name, or false for none.
// The layout receives the rendered view as {{{body}}}.
func (e *Engine) Execute(name string, data map[string]any) (string, error) {
	tpl, ok := e.views[name]
	if !ok {
		return "", fmt.Errorf("view %q not found", name)
	}

	body, err := tpl.Exec(data)
	if err != nil {
		return "", fmt.Errorf("render view %s: %w", name, err)
	}

	layoutName := e.defaultLayout
	switch v := data["layout"].(type) {
	case string:
		if v != "" {
			layoutName = v
		}
	case bool:
		if !v {
			return body, nil
		}
	}

	layout, ok := e.layouts[layoutName]
	if !ok {
		return "", fmt.Errorf("layout %q not found", layoutName)
	}

	ctx := maps.Clone(data)
	if ctx == nil {
		ctx = map[string]any{}
	}
	ctx["body"] = raymond.SafeString(body)

	out, err := layout.Exec(ctx)
	if err != nil {
		return "", fmt.Errorf("render layout %s: %w", layoutName, err)
	}
	return out, nil
}

// Render writes a view with status 200
func (e *Engine) Render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) {
	e.RenderStatus(w, r, http.StatusOK, name, data)
}

// RenderStatus writes a view with the request's locals merged under data
func (e *Engine) RenderStatus(w http.ResponseWriter, r *http.Request, status int, name string, data map[string]any) {
	ctx := Locals(r.Context())
	maps.Copy(ctx, data)

	out, err := e.Execute(name, ctx)
	if err != nil {
		slog.Error("failed to render view", "view", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := io.WriteString(w, out); err != nil {
		slog.Error("failed to write view", "view", name, "error", err)
	}
}
