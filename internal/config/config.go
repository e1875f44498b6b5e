package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress          string
	DatabaseURI         string
	CatalogFeedAddress  string
	AuthSecret          string
	CatalogSyncInterval time.Duration
	SyncWorkerPool      int
	SyncBatchSize       int
	SessionTTL          time.Duration
	ShutdownTimeout     time.Duration
}

const (
	defaultRunAddress          = ":8080"
	defaultAuthSecret          = "change-me-in-production"
	defaultCatalogSyncInterval = 5 * time.Minute
	defaultSyncWorkerPool      = 4
	defaultSyncBatchSize       = 64
	defaultSessionTTL          = 2 * time.Hour
	defaultShutdownTimeout     = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:          getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:         getString(lookup, "DATABASE_URI", ""),
		CatalogFeedAddress:  getString(lookup, "CATALOG_FEED_ADDRESS", ""),
		AuthSecret:          getString(lookup, "AUTH_SECRET", defaultAuthSecret),
		CatalogSyncInterval: getDuration(lookup, "CATALOG_SYNC_INTERVAL", defaultCatalogSyncInterval),
		SyncWorkerPool:      getInt(lookup, "SYNC_WORKER_POOL", defaultSyncWorkerPool),
		SyncBatchSize:       getInt(lookup, "SYNC_BATCH_SIZE", defaultSyncBatchSize),
		SessionTTL:          getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		ShutdownTimeout:     getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("dealerhub", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		syncIntervalStr    = cfg.CatalogSyncInterval.String()
		sessionTTLStr      = cfg.SessionTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.CatalogFeedAddress, "r", cfg.CatalogFeedAddress, "Catalog feed base URL")
	fs.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "Secret for signing auth tokens")
	fs.IntVar(&cfg.SyncWorkerPool, "sync-pool", cfg.SyncWorkerPool, "Number of concurrent catalog sync workers")
	fs.IntVar(&cfg.SyncBatchSize, "sync-batch", cfg.SyncBatchSize, "Maximum products per sync cycle")
	fs.StringVar(&syncIntervalStr, "sync-interval", syncIntervalStr, "Interval between catalog feed pulls")
	fs.StringVar(&sessionTTLStr, "session-ttl", sessionTTLStr, "Idle time before a dealer session is dropped")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.CatalogSyncInterval, err = time.ParseDuration(syncIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid sync interval: %w", err)
	}

	if cfg.SessionTTL, err = time.ParseDuration(sessionTTLStr); err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("AUTH_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read auth secret file: %w", err)
		}
		cfg.AuthSecret = string(content)
	}

	if cfg.SyncWorkerPool <= 0 {
		cfg.SyncWorkerPool = defaultSyncWorkerPool
	}

	if cfg.SyncBatchSize <= 0 {
		cfg.SyncBatchSize = defaultSyncBatchSize
	}

	if cfg.CatalogSyncInterval <= 0 {
		cfg.CatalogSyncInterval = defaultCatalogSyncInterval
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.CatalogFeedAddress == "" {
		return nil, fmt.Errorf("catalog feed address must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
