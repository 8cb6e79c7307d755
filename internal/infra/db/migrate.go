package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// schema creates the submission ledger table. The unique constraint on url
// is the only concurrency-safety mechanism the ledger relies on.
const schema = `
CREATE TABLE IF NOT EXISTS news_history (
	id           BIGSERIAL PRIMARY KEY,
	url          TEXT        NOT NULL,
	submitted_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT news_history_url_key UNIQUE (url)
)`

// Migrate applies the ledger schema. It is idempotent and safe to run at
// every process start.
func Migrate(ctx context.Context, database *sql.DB) error {
	if _, err := database.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate news_history: %w", err)
	}
	slog.Info("ledger schema applied")
	return nil
}
