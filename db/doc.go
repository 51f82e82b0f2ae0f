// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates its schema.

# Connecting

Connect picks the driver from the configured database type, pings the
server and creates the schema:

	conn, err := db.Connect(ctx, cfg.DatabaseType, cfg.DatabaseURL)

Supported types are "sqlite" (modernc.org/sqlite, pure Go) and "postgres"
(lib/pq). SQLite connections are limited to one open connection with foreign
keys enabled.

# Schema Creation

CreateSchema is safe to call multiple times - it uses IF NOT EXISTS for all
tables and indexes.

# Tables

  - users: Google-authenticated accounts
  - stories: user stories with public/private status
  - sessions: server-side session data for the sql session store

# Relationships

	users 1──* stories

Deleting a user cascades to their stories.
*/
package db
