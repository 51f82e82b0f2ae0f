// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the StoryBooks server.

StoryBooks is a server-rendered story sharing site. Users log in with
Google, write public or private stories and browse everyone's public ones.

# Starting the Server

Configuration comes from ./config/config.env (if present), the environment
and CLI flags, in increasing precedence:

	DATABASE_URL=file:storybooks.db SESSION_SECRET=... go run .

Or with flags:

	go run . -env development -p 3000 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file or PostgreSQL connection string
  - SESSION_SECRET (-session-secret): cookie signing secret
  - GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET: OAuth credentials

Optional settings:

  - NODE_ENV (-env): "development" enables request logging (default: production); APP_ENV is read only when NODE_ENV is unset
  - PORT (-p): server port (default: 3000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - SESSION_STORE (-session-store): sql, redis or memory (default: sql)
  - REDIS_URL (-redis): required for the redis session store
  - SESSION_SECURE (-session-secure): mark the session cookie Secure when served over HTTPS
  - GOOGLE_CALLBACK_URL: defaults to http://localhost:<port>/auth/google/callback
  - VIEWS_DIR, PUBLIC_DIR: serve templates and assets from disk instead of the binary

# Startup

Startup is linear: configuration, Google strategy, database connection and
schema, templates, session store, router, listen. Any failure is logged and
the process exits with status 1.

# Architecture

  - handlers: index, auth and story page handlers
  - router: chi routes and the middleware chain
  - middleware: body parsing, method override, logging, auth guards, metrics
  - session: cookie sessions over memory, SQL or Redis stores
  - view: handlebars template engine; helpers: its template helpers
  - store: users and stories
  - auth: signing, OAuth state and the Google strategy
  - db: connection and schema
  - cliparse: configuration parsing
  - web: embedded views and static assets

See package documentation for each component.
*/
package main
