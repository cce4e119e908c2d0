package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/fx"
)

// Module provides Config loaded from the environment.
var Module = fx.Module("config",
	fx.Provide(Load),
)

// Config is read once at startup.
type Config struct {
	Port            string
	OutputDir       string
	AssetDir        string
	FetchTimeout    time.Duration
	MaxRedirects    int
	FileMaxAge      time.Duration
	CleanupInterval time.Duration
	CORSOrigin      string
	LogLevel        string
	Environment     string
	NodeID          int64
}

func DefaultConfig() Config {
	return Config{
		Port:            "8080",
		OutputDir:       "generated",
		AssetDir:        "assets",
		FetchTimeout:    10 * time.Second,
		MaxRedirects:    5,
		FileMaxAge:      time.Hour,
		CleanupInterval: 15 * time.Minute,
		CORSOrigin:      "*",
		LogLevel:        "info",
		Environment:     "production",
		NodeID:          1,
	}
}

// Load reads the environment. Unset or unparsable values keep their
// defaults.
func Load() Config {
	c := Config{
		Port:            env("PORT"),
		OutputDir:       env("OUTPUT_DIR"),
		AssetDir:        env("ASSET_DIR"),
		FetchTimeout:    envDuration("FETCH_TIMEOUT"),
		MaxRedirects:    envInt("MAX_REDIRECTS", -1),
		FileMaxAge:      envDuration("FILE_MAX_AGE"),
		CleanupInterval: envDuration("CLEANUP_INTERVAL"),
		CORSOrigin:      env("CORS_ORIGIN"),
		LogLevel:        strings.ToLower(env("LOG_LEVEL")),
		Environment:     strings.ToLower(env("ENVIRONMENT")),
		NodeID:          int64(envInt("NODE_ID", -1)),
	}
	return c.withDefaults()
}

// IsDevelopment reports whether the service runs in development mode.
func (c Config) IsDevelopment() bool {
	return c.Environment == "development" || c.Environment == "dev"
}

// Addr is the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if c.Port == "" {
		c.Port = defaults.Port
	}
	if c.OutputDir == "" {
		c.OutputDir = defaults.OutputDir
	}
	if c.AssetDir == "" {
		c.AssetDir = defaults.AssetDir
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = defaults.FetchTimeout
	}
	// zero redirects is a valid setting
	if c.MaxRedirects < 0 {
		c.MaxRedirects = defaults.MaxRedirects
	}
	if c.FileMaxAge <= 0 {
		c.FileMaxAge = defaults.FileMaxAge
	}
	if c.CleanupInterval <= 0 {
		c.CleanupInterval = defaults.CleanupInterval
	}
	if c.CORSOrigin == "" {
		c.CORSOrigin = defaults.CORSOrigin
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.Environment == "" {
		c.Environment = defaults.Environment
	}
	// snowflake node ids are 10 bits
	if c.NodeID < 0 || c.NodeID > 1023 {
		c.NodeID = defaults.NodeID
	}
	return c
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envInt(key string, fallback int) int {
	v := env(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// envDuration accepts Go durations ("30s") or bare seconds ("30").
func envDuration(key string) time.Duration {
	v := env(key)
	if v == "" {
		return 0
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return 0
}
