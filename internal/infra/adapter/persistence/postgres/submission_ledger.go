// Package postgres implements the submission ledger on top of Postgres.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"newsfeed/internal/repository"
)

type SubmissionLedger struct {
	db *sql.DB
}

// NewSubmissionLedger creates a ledger backed by the given database handle.
func NewSubmissionLedger(db *sql.DB) repository.SubmissionLedger {
	return &SubmissionLedger{db: db}
}

// CheckAndInsert inserts the URL into news_history unless it is already
// present. The unique constraint on url decides the race: the insert that
// loses reports zero affected rows and is surfaced as "already exists",
// never as an error.
func (l *SubmissionLedger) CheckAndInsert(ctx context.Context, url string) (bool, error) {
	const query = `
INSERT INTO news_history (url, submitted_at)
VALUES ($1, $2)
ON CONFLICT (url) DO NOTHING`

	res, err := l.db.ExecContext(ctx, query, url, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("CheckAndInsert: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("CheckAndInsert: RowsAffected: %w", err)
	}
	return n == 1, nil
}
