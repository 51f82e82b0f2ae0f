package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded into the environment before parsing, if present.
const DefaultEnvFile = "./config/config.env"

// Deployment modes
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// Supported database drivers
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

// Supported session stores
const (
	SessionStoreSQL    = "sql"
	SessionStoreRedis  = "redis"
	SessionStoreMemory = "memory"
)

type Config struct {
	Env          string `env:"NODE_ENV"`
	Port         int    `env:"PORT" envDefault:"3000"`
	DatabaseURL  string `env:"DATABASE_URL"`
	DatabaseType string `env:"DATABASE_TYPE" envDefault:"sqlite"`

	SessionSecret string        `env:"SESSION_SECRET"`
	SessionStore  string        `env:"SESSION_STORE" envDefault:"sql"`
	SessionMaxAge time.Duration `env:"SESSION_MAX_AGE" envDefault:"336h"`
	SessionSecure bool          `env:"SESSION_SECURE"`
	RedisURL      string        `env:"REDIS_URL"`

	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	GoogleCallbackURL  string `env:"GOOGLE_CALLBACK_URL"`

	// Empty means the assets embedded in the binary are used.
	ViewsDir  string `env:"VIEWS_DIR"`
	PublicDir string `env:"PUBLIC_DIR"`
}

// IsDevelopment reports whether the server runs in development mode.
// Only the exact value "development" enables it.
func (c Config) IsDevelopment() bool {
	return c.Env == ModeDevelopment
}

// ParseFlags loads the env file, parses the environment and applies
// CLI flag overrides on top
func ParseFlags(args []string) (Config, error) {
	var (
		cfg        Config
		configPath string
		mode       string
		port       int
		dbURL      string
		dbType     string
		secret     string
		store      string
		redisURL   string
		secure     bool
	)

	fs := flag.NewFlagSet("storybooks", flag.ContinueOnError)

	fs.StringVar(&configPath, "config", DefaultEnvFile, "Env file to load")
	fs.StringVar(&mode, "env", "", "Deployment mode (development or production)")

	// Network config (can be CLI args or env)
	fs.IntVar(&port, "p", 0, "Server port")
	fs.StringVar(&dbURL, "d", "", "Database URL")
	fs.StringVar(&dbType, "t", "", "Database type (sqlite or postgres)")

	// Sessions (prefer env variables, but allow CLI for dev)
	fs.StringVar(&secret, "session-secret", "", "Session secret (prefer env)")
	fs.StringVar(&store, "session-store", "", "Session store (sql, redis or memory)")
	fs.StringVar(&redisURL, "redis", "", "Redis URL for the redis session store")
	fs.BoolVar(&secure, "session-secure", false, "Mark the session cookie Secure (HTTPS only)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := loadEnvFile(configPath); err != nil {
		return Config{}, err
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	// CLI flags take precedence over env
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "env":
			cfg.Env = mode
		case "p":
			cfg.Port = port
		case "d":
			cfg.DatabaseURL = dbURL
		case "t":
			cfg.DatabaseType = dbType
		case "session-secret":
			cfg.SessionSecret = secret
		case "session-store":
			cfg.SessionStore = store
		case "redis":
			cfg.RedisURL = redisURL
		case "session-secure":
			cfg.SessionSecure = secure
		}
	})

	if cfg.Env == "" {
		cfg.Env = os.Getenv("APP_ENV")
	}
	if cfg.Env == "" {
		cfg.Env = ModeProduction
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	switch cfg.DatabaseType {
	case DatabaseSQLite, DatabasePostgres:
	default:
		return Config{}, fmt.Errorf("unsupported DATABASE_TYPE %q", cfg.DatabaseType)
	}

	switch cfg.SessionStore {
	case SessionStoreSQL, SessionStoreMemory:
	case SessionStoreRedis:
		if cfg.RedisURL == "" {
			return Config{}, errors.New("REDIS_URL required for the redis session store")
		}
	default:
		return Config{}, fmt.Errorf("unsupported SESSION_STORE %q", cfg.SessionStore)
	}

	if cfg.GoogleCallbackURL == "" {
		cfg.GoogleCallbackURL = "http://localhost:" + strconv.Itoa(cfg.Port) + "/auth/google/callback"
	}

	return cfg, nil
}

// loadEnvFile loads KEY=value pairs into the process environment without
// overriding variables that are already set. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}
