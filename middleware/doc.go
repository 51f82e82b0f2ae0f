// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides the HTTP middleware chain and response helpers.

# Request Bodies

BodyParser reads urlencoded and JSON bodies (up to MaxBodyBytes) into
r.PostForm so handlers read both the same way:

	title := r.PostFormValue("title")

JSON objects flatten to parent[child] keys. A top-level JSON array is
keyed by index, so ["a","b"] reads as 0=a and 1=b. A bare string or
number at the top level is not a form and gets a 400 JSON error, as do
malformed bodies; oversized bodies get a 413.

# Method Override

HTML forms can only POST. MethodOverride turns a POST carrying
_method=PUT or _method=DELETE into that method before routing:

	<input type="hidden" name="_method" value="DELETE">

# Authentication

LoadUser resolves the session's user ID to a user in the request context.
RequireUser and RequireGuest redirect to "/" and "/dashboard" respectively.
Locals then exposes the user to views as "user" (nil for guests).

# Request Logging

RequestLogger logs method, path, status, bytes, duration_ms and the client
IP (see GetClientIP) once per request. The router installs it only in
development mode.

# Static Files

Static serves GET and HEAD requests for files that exist in the public
directory and passes everything else on.

# Metrics

	m := middleware.NewMetrics(registry)
	r.Use(m.Handler)

Counts requests and observes latency by method and chi route pattern.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
*/
package middleware
