// Package worker holds the runtime configuration and health endpoints of
// the ingestion worker process.
package worker

import (
	"fmt"
	"time"

	"newsfeed/pkg/config"
)

// Config controls the consumer pool and the worker's auxiliary servers.
type Config struct {
	// PoolSize is the number of concurrent feed processors. It also
	// bounds the broker prefetch window.
	PoolSize int

	// ProcessTimeout caps how long one feed message may take end to
	// end before its context is cancelled.
	ProcessTimeout time.Duration

	// HealthAddr is the listen address of the health check server.
	HealthAddr string
}

// DefaultConfig returns production-ready defaults: a small pool sized for
// I/O-bound feed fetching and a generous per-feed timeout.
func DefaultConfig() Config {
	return Config{
		PoolSize:       4,
		ProcessTimeout: 5 * time.Minute,
		HealthAddr:     ":9091",
	}
}

// LoadConfigFromEnv reads the worker configuration from environment
// variables, falling back to defaults for missing or invalid values.
//
// Environment variables:
//   - WORKER_POOL: concurrent feed processors (default 4)
//   - WORKER_PROCESS_TIMEOUT: per-feed timeout, e.g. "5m"
//   - WORKER_HEALTH_ADDR: health server listen address
func LoadConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.PoolSize = config.GetEnvInt("WORKER_POOL", cfg.PoolSize)
	cfg.ProcessTimeout = config.GetEnvDuration("WORKER_PROCESS_TIMEOUT", cfg.ProcessTimeout)
	cfg.HealthAddr = config.GetEnvString("WORKER_HEALTH_ADDR", cfg.HealthAddr)
	return cfg
}

// Validate checks the configuration bounds.
func (c Config) Validate() error {
	if c.PoolSize < 1 || c.PoolSize > 64 {
		return fmt.Errorf("pool size must be between 1 and 64, got %d", c.PoolSize)
	}
	if c.ProcessTimeout <= 0 {
		return fmt.Errorf("process timeout must be positive, got %s", c.ProcessTimeout)
	}
	if c.HealthAddr == "" {
		return fmt.Errorf("health addr must not be empty")
	}
	return nil
}
