// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/storybooks/auth"
	"github.com/danielhkuo/storybooks/models"
	"github.com/danielhkuo/storybooks/store"
	"github.com/danielhkuo/storybooks/testutil"
	"github.com/danielhkuo/storybooks/view"
	"github.com/danielhkuo/storybooks/web"
)

type testEnv struct {
	db      *sql.DB
	users   *store.Users
	stories *store.Stories
	views   *view.Engine
}

func setup(t *testing.T) *testEnv {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	views, err := view.New(web.Views())
	require.NoError(t, err)

	return &testEnv{
		db:      conn,
		users:   store.NewUsers(conn),
		stories: store.NewStories(conn),
		views:   views,
	}
}

// asUser attaches user to the request as LoadUser would
func asUser(r *http.Request, user *models.User) *http.Request {
	return r.WithContext(auth.WithUser(r.Context(), user))
}

// withURLParams sets chi URL parameters as the router would
func withURLParams(r *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
