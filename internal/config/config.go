package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
)

// Config captures the runtime configuration for the application.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Logging   LoggingConfig
	Session   SessionConfig
	Workspace WorkspaceConfig
}

// ServerConfig configures the HTTP server runtime behavior.
type ServerConfig struct {
	Addr string `default:":8080"`
}

// DatabaseConfig contains the database connection settings. The database
// only backs session storage; an empty URL without UseMock keeps sessions in
// process memory.
type DatabaseConfig struct {
	URL             string
	MaxIdleConns    int           `default:"2"`
	MaxOpenConns    int           `default:"10"`
	ConnMaxLifetime time.Duration `default:"1h"`
	ConnMaxIdleTime time.Duration `default:"15m"`
	UseMock         bool
}

// LoggingConfig controls the global logger.
type LoggingConfig struct {
	Level  string `default:"info"`
	Format string `default:"text"`
}

// SessionConfig controls the session that owns each workspace.
type SessionConfig struct {
	Lifetime        time.Duration `default:"12h"`
	CookieName      string        `default:"stability_session"`
	CookieDomain    string
	CookieSecure    bool
	CleanupInterval time.Duration `default:"5m"`
}

// WorkspaceConfig tunes the draft editor and suggestion behaviour.
type WorkspaceConfig struct {
	// MinScheduleRows is the fewest schedule rows a draft may be reduced to.
	MinScheduleRows int `default:"1"`
	// SeedSample places the sample batch record in every new workspace.
	SeedSample bool
	// ChambersIncludeDraft adds the draft's own rows to chamber suggestions.
	ChambersIncludeDraft bool
}

// envFile is read before the environment is inspected, when present.
var envFile = ".env"

// Load inspects the environment and builds a Config value.
func Load() (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := Config{}
	if err := defaults.Set(&cfg); err != nil {
		return Config{}, fmt.Errorf("apply defaults: %w", err)
	}

	cfg.Server.Addr = firstNonEmpty(
		os.Getenv("SERVER_ADDR"),
		os.Getenv("ADDR"),
		cfg.Server.Addr,
	)

	cfg.Database = DatabaseConfig{
		URL: firstNonEmpty(
			os.Getenv("DATABASE_URL"),
			os.Getenv("DB_URL"),
			"",
		),
		MaxIdleConns:    parseIntWithDefault(os.Getenv("DATABASE_MAX_IDLE_CONNS"), cfg.Database.MaxIdleConns),
		MaxOpenConns:    parseIntWithDefault(os.Getenv("DATABASE_MAX_OPEN_CONNS"), cfg.Database.MaxOpenConns),
		ConnMaxLifetime: parseDurationWithDefault(os.Getenv("DATABASE_CONN_MAX_LIFETIME"), cfg.Database.ConnMaxLifetime),
		ConnMaxIdleTime: parseDurationWithDefault(os.Getenv("DATABASE_CONN_MAX_IDLE_TIME"), cfg.Database.ConnMaxIdleTime),
		UseMock:         parseBoolWithDefault(os.Getenv("DATABASE_USE_MOCK"), cfg.Database.UseMock),
	}

	cfg.Logging = LoggingConfig{
		Level:  firstNonEmpty(os.Getenv("LOG_LEVEL"), cfg.Logging.Level),
		Format: firstNonEmpty(os.Getenv("LOG_FORMAT"), cfg.Logging.Format),
	}

	cfg.Session = SessionConfig{
		Lifetime:        parseDurationWithDefault(os.Getenv("SESSION_LIFETIME"), cfg.Session.Lifetime),
		CookieName:      firstNonEmpty(os.Getenv("SESSION_COOKIE_NAME"), cfg.Session.CookieName),
		CookieDomain:    strings.TrimSpace(os.Getenv("SESSION_COOKIE_DOMAIN")),
		CookieSecure:    parseBoolWithDefault(os.Getenv("SESSION_COOKIE_SECURE"), cfg.Session.CookieSecure),
		CleanupInterval: parseDurationWithDefault(os.Getenv("SESSION_CLEANUP_INTERVAL"), cfg.Session.CleanupInterval),
	}

	cfg.Workspace = WorkspaceConfig{
		MinScheduleRows:      parseIntWithDefault(os.Getenv("WORKSPACE_MIN_SCHEDULE_ROWS"), cfg.Workspace.MinScheduleRows),
		SeedSample:           parseBoolWithDefault(os.Getenv("WORKSPACE_SEED_SAMPLE"), cfg.Workspace.SeedSample),
		ChambersIncludeDraft: parseBoolWithDefault(os.Getenv("WORKSPACE_CHAMBERS_INCLUDE_DRAFT"), cfg.Workspace.ChambersIncludeDraft),
	}

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return Config{}, fmt.Errorf("server address must not be empty")
	}
	if cfg.Workspace.MinScheduleRows < 0 {
		return Config{}, fmt.Errorf("minimum schedule rows must not be negative")
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func parseIntWithDefault(value string, def int) int {
	if strings.TrimSpace(value) == "" {
		return def
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return def
	}
	return parsed
}

func parseDurationWithDefault(value string, def time.Duration) time.Duration {
	if strings.TrimSpace(value) == "" {
		return def
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return def
	}
	return parsed
}

func parseBoolWithDefault(value string, def bool) bool {
	if strings.TrimSpace(value) == "" {
		return def
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return def
	}
	return parsed
}
