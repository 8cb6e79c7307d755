// Package db manages the Postgres connection pool for the submission ledger.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	pkgconfig "newsfeed/pkg/config"
)

// ConnectionConfig holds database connection pool configuration.
type ConnectionConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultConnectionConfig returns the default connection pool configuration.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 1 * time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
	}
}

// Open creates and configures a new database connection pool for the given
// DSN and verifies connectivity. Pool tuning can be adjusted through the
// DB_MAX_OPEN_CONNS, DB_MAX_IDLE_CONNS, DB_CONN_MAX_LIFETIME and
// DB_CONN_MAX_IDLE_TIME environment variables.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("open database: empty DSN")
	}

	database, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	cfg := connectionConfigFromEnv()
	database.SetMaxOpenConns(cfg.MaxOpenConns)
	database.SetMaxIdleConns(cfg.MaxIdleConns)
	database.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	database.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := database.PingContext(pingCtx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	slog.Info("database connection pool established",
		slog.Int("max_open_conns", cfg.MaxOpenConns),
		slog.Int("max_idle_conns", cfg.MaxIdleConns),
		slog.Duration("conn_max_lifetime", cfg.ConnMaxLifetime),
		slog.Duration("conn_max_idle_time", cfg.ConnMaxIdleTime))

	return database, nil
}

// connectionConfigFromEnv reads pool configuration from environment
// variables, falling back to defaults.
func connectionConfigFromEnv() ConnectionConfig {
	def := DefaultConnectionConfig()
	return ConnectionConfig{
		MaxOpenConns:    pkgconfig.GetEnvInt("DB_MAX_OPEN_CONNS", def.MaxOpenConns),
		MaxIdleConns:    pkgconfig.GetEnvInt("DB_MAX_IDLE_CONNS", def.MaxIdleConns),
		ConnMaxLifetime: pkgconfig.GetEnvDuration("DB_CONN_MAX_LIFETIME", def.ConnMaxLifetime),
		ConnMaxIdleTime: pkgconfig.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", def.ConnMaxIdleTime),
	}
}
