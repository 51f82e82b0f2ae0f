// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// MaxBodyBytes caps urlencoded and JSON request bodies
const MaxBodyBytes = 100 << 10

// MethodOverrideField is the body field that overrides a POST's method
const MethodOverrideField = "_method"

// BodyParser parses urlencoded and JSON request bodies into r.PostForm.
// JSON objects are flattened, nested keys as parent[child]. A top-level
// JSON array is keyed by index ("0", "1", ...); any other top-level
// JSON value is rejected with a 400.
func BodyParser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.Body == http.NoBody {
			next.ServeHTTP(w, r)
			return
		}

		mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		switch mediaType {
		case "application/x-www-form-urlencoded":
			r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
			if err := r.ParseForm(); err != nil {
				bodyError(w, err)
				return
			}

		case "application/json":
			r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
			var body interface{}
			if err := ParseJSONBody(r, &body); err != nil && !errors.Is(err, io.EOF) {
				bodyError(w, err)
				return
			}

			form := url.Values{}
			switch v := body.(type) {
			case nil:
			case map[string]interface{}:
				flatten(form, "", v)
			case []interface{}:
				for i, item := range v {
					flatten(form, strconv.Itoa(i), item)
				}
			default:
				bodyError(w, errJSONScalar)
				return
			}
			if err := r.ParseForm(); err != nil {
				bodyError(w, err)
				return
			}
			r.PostForm = form
			for k, vs := range form {
				r.Form[k] = append(vs, r.Form[k]...)
			}
		}

		next.ServeHTTP(w, r)
	})
}

var errJSONScalar = errors.New("JSON body must be an object or array")

func bodyError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		ErrorResponse(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	ErrorResponse(w, http.StatusBadRequest, "malformed request body")
}

func flatten(form url.Values, prefix string, v interface{}) {
	switch val := v.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			key := k
			if prefix != "" {
				key = prefix + "[" + k + "]"
			}
			flatten(form, key, val[k])
		}
	case []interface{}:
		for _, item := range val {
			flatten(form, prefix, item)
		}
	case nil:
		form.Add(prefix, "")
	case string:
		form.Add(prefix, val)
	default:
		form.Add(prefix, fmt.Sprint(val))
	}
}

var overridableMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodOptions: true,
}

// MethodOverride lets HTML forms send PUT and DELETE. A POST whose parsed
// body carries a valid _method field is rerouted as that method and the
// field is dropped from the body. Must run after BodyParser.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.PostForm != nil {
			if values, ok := r.PostForm[MethodOverrideField]; ok {
				r.PostForm.Del(MethodOverrideField)
				r.Form.Del(MethodOverrideField)

				if len(values) > 0 {
					method := strings.ToUpper(values[0])
					if overridableMethods[method] {
						r.Method = method
					}
				}
			}
		}

		next.ServeHTTP(w, r)
	})
}
