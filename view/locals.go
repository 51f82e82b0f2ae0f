// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package view

import (
	"context"
	"maps"
)

type localsKey struct{}

// WithLocal returns a copy of ctx whose view locals include key
func WithLocal(ctx context.Context, key string, value any) context.Context {
	locals := Locals(ctx)
	locals[key] = value
	return context.WithValue(ctx, localsKey{}, locals)
}

// Locals returns a copy of the view locals set on ctx
func Locals(ctx context.Context) map[string]any {
	locals, _ := ctx.Value(localsKey{}).(map[string]any)
	out := maps.Clone(locals)
	if out == nil {
		out = map[string]any{}
	}
	return out
}
