// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Before reading the environment, ParseFlags loads ./config/config.env (or the
file named by -config) with godotenv. Variables already present in the
environment are not overridden and a missing file is ignored.

# Config Fields

  - Env: deployment mode (default: production)
  - Port: Server listen port (default: 3000)
  - DatabaseURL: database connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - SessionSecret: cookie signing secret
  - SessionStore: sql, redis or memory (default: sql)
  - SessionMaxAge: session lifetime (default: 336h)
  - RedisURL: required for the redis session store
  - GoogleClientID, GoogleClientSecret, GoogleCallbackURL: OAuth client
  - ViewsDir, PublicDir: on-disk overrides for embedded assets

# CLI Flags

	-config          Env file (default ./config/config.env)
	-env             Deployment mode
	-p               Server port
	-d               Database URL
	-t               Database type
	-session-secret  Session secret
	-session-store   Session store
	-redis           Redis URL
	-session-secure  Secure session cookie

# Environment Variables

	NODE_ENV (or APP_ENV) → -env
	PORT                  → -p
	DATABASE_URL          → -d
	DATABASE_TYPE         → -t
	SESSION_SECRET        → -session-secret
	SESSION_STORE         → -session-store
	REDIS_URL             → -redis
	SESSION_SECURE        → -session-secure

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if DATABASE_URL is missing, PORT is not a number,
DATABASE_TYPE or SESSION_STORE is unknown, or the redis store has no
REDIS_URL. SESSION_SECRET is checked when the session manager is created.
*/
package cliparse
