package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"
	"gorm.io/gorm"

	"stabilitylog/internal/db"
	"stabilitylog/internal/handlers"
	applog "stabilitylog/internal/log"
	"stabilitylog/internal/metrics"
	"stabilitylog/internal/workspace"
)

// Config captures the runtime configuration for the HTTP server.
type Config struct {
	Addr      string
	Session   SessionConfig
	Database  *gorm.DB
	Workspace workspace.Options
}

// SessionConfig controls session behavior for the HTTP server.
type SessionConfig struct {
	Lifetime        time.Duration
	CookieName      string
	CookieDomain    string
	CookieSecure    bool
	CleanupInterval time.Duration
}

// Server wraps an http.Server together with the session store and metrics
// that back each workspace.
type Server struct {
	config       Config
	httpServer   *http.Server
	sessionStore *db.SessionStore
	metrics      *metrics.Recorder
}

// New builds a new Server using the provided configuration. Sessions are kept
// in cfg.Database when set and in process memory otherwise.
func New(cfg Config) (*Server, error) {
	applog.Debug(context.Background(), "initializing server",
		"addr", cfg.Addr,
		"sessionLifetime", cfg.Session.Lifetime.String(),
		"sessionCookie", cfg.Session.CookieName,
	)

	sessionCfg := cfg.Session
	if sessionCfg.Lifetime <= 0 {
		applog.Debug(context.Background(), "session lifetime not provided, using default")
		sessionCfg.Lifetime = 12 * time.Hour
	}
	if strings.TrimSpace(sessionCfg.CookieName) == "" {
		applog.Debug(context.Background(), "session cookie name not provided, using default")
		sessionCfg.CookieName = "stability_session"
	}
	if cfg.Workspace.Policy.MinRows < 0 {
		cfg.Workspace.Policy.MinRows = 0
	}

	sessionManager := scs.New()
	sessionManager.Lifetime = sessionCfg.Lifetime
	sessionManager.Cookie.Name = sessionCfg.CookieName
	sessionManager.Cookie.Domain = sessionCfg.CookieDomain
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	sessionManager.Cookie.Secure = sessionCfg.CookieSecure

	var store *db.SessionStore
	if cfg.Database != nil {
		store = db.NewSessionStore(cfg.Database, sessionCfg.CleanupInterval)
		sessionManager.Store = store
		applog.Debug(context.Background(), "sessions persisted in database",
			"cleanupInterval", sessionCfg.CleanupInterval.String(),
		)
	}

	applog.Debug(context.Background(), "session manager configured",
		"cookieName", sessionCfg.CookieName,
		"cookieDomain", sessionCfg.CookieDomain,
		"cookieSecure", sessionCfg.CookieSecure,
	)

	recorder := metrics.New()
	handlers.Configure(workspace.NewManager(sessionManager, cfg.Workspace), recorder)

	applog.Debug(context.Background(), "handler dependencies configured",
		"minScheduleRows", cfg.Workspace.Policy.MinRows,
		"seedSample", cfg.Workspace.SeedSample,
	)

	handler := sessionManager.LoadAndSave(newRouter(recorder.Handler()))

	applog.Debug(context.Background(), "http handler chain prepared")

	return &Server{
		config:       cfg,
		sessionStore: store,
		metrics:      recorder,
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// Start begins serving HTTP traffic using the underlying http.Server.
func (s *Server) Start() error {
	applog.Debug(context.Background(), "server starting listener", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop gracefully shuts down the HTTP server with a timeout and stops the
// expired session sweeper.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	applog.Debug(ctx, "server initiating graceful shutdown")
	err := s.httpServer.Shutdown(ctx)
	if s.sessionStore != nil {
		s.sessionStore.StopCleanup()
	}
	return err
}

// Handler exposes the configured HTTP handler, enabling integration tests.
func (s *Server) Handler() http.Handler {
	applog.Debug(context.Background(), "server handler requested")
	return s.httpServer.Handler
}
