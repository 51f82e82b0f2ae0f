package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/storybooks/auth"
	"github.com/danielhkuo/storybooks/cliparse"
	"github.com/danielhkuo/storybooks/db"
	"github.com/danielhkuo/storybooks/router"
	"github.com/danielhkuo/storybooks/session"
	"github.com/danielhkuo/storybooks/view"
	"github.com/danielhkuo/storybooks/web"
)

const sessionPruneInterval = 15 * time.Minute

// setupLogger installs a text handler for terminals and JSON otherwise
func setupLogger(level *slog.LevelVar) {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// assets returns dir on disk when set, else the embedded fallback
func assets(dir string, embedded fs.FS) fs.FS {
	if dir == "" {
		return embedded
	}
	return os.DirFS(dir)
}

func main() {
	level := new(slog.LevelVar)
	setupLogger(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], level); err != nil {
		slog.Error("Server failed", "error", err)
		stop()
		os.Exit(1)
	}
}

// run starts the server and blocks until ctx is cancelled or serving fails
func run(ctx context.Context, args []string, level *slog.LevelVar) error {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(args)
	if err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	if cfg.IsDevelopment() {
		level.Set(slog.LevelDebug)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Google login
	strategy := auth.NewGoogleStrategy(auth.GoogleConfig{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		CallbackURL:  cfg.GoogleCallbackURL,
	})
	slog.Debug("auth strategy registered", "strategy", strategy.Name(), "callback", cfg.GoogleCallbackURL)

	// Connect, ping and create schema
	dbConn, err := db.Connect(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer dbConn.Close()
	slog.Info("Database connected", "type", cfg.DatabaseType)

	// Templates
	views, err := view.New(assets(cfg.ViewsDir, web.Views()))
	if err != nil {
		return fmt.Errorf("templates: %w", err)
	}

	// Session store
	var store session.Store
	switch cfg.SessionStore {
	case cliparse.SessionStoreRedis:
		redisStore, err := session.NewRedisStore(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("redis session store: %w", err)
		}
		defer redisStore.Close()

		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		err = redisStore.Ping(pingCtx)
		pingCancel()
		if err != nil {
			return fmt.Errorf("redis ping: %w", err)
		}
		store = redisStore
	case cliparse.SessionStoreMemory:
		store = session.NewMemoryStore()
	default:
		sqlStore := session.NewSQLStore(dbConn)
		go sqlStore.PruneEvery(ctx, sessionPruneInterval)
		store = sqlStore
	}

	sessions, err := session.NewManager(store, session.Options{
		Secret: cfg.SessionSecret,
		MaxAge: cfg.SessionMaxAge,
		Secure: cfg.SessionSecure,
	})
	if err != nil {
		return fmt.Errorf("sessions: %w", err)
	}

	// Create router
	mux := router.NewRouter(router.Deps{
		DB:       dbConn,
		Config:   cfg,
		Sessions: sessions,
		Views:    views,
		Strategy: strategy,
		Public:   assets(cfg.PublicDir, web.Public()),
	})

	server := http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	listener, err := net.Listen("tcp", ":"+strconv.Itoa(cfg.Port))
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	go func() {
		<-ctx.Done()
		server.Close()
	}()

	port := listener.Addr().(*net.TCPAddr).Port
	slog.Info("Server running in "+cfg.Env+" mode on port "+strconv.Itoa(port),
		"mode", cfg.Env,
		"port", port,
	)
	err = server.Serve(listener)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	slog.Info("Server closed")
	return nil
}
