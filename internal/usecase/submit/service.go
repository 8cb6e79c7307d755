// Package submit accepts feed URLs, records them in the durable
// submission ledger, and enqueues first-time URLs for ingestion.
package submit

import (
	"context"
	"fmt"
	"log/slog"

	"newsfeed/internal/domain/entity"
	"newsfeed/internal/observability/metrics"
	"newsfeed/internal/repository"
)

// Publisher enqueues a feed URL for the ingestion worker.
type Publisher interface {
	Publish(ctx context.Context, queue string, body []byte) error
}

// Outcome reports how a submission was handled.
type Outcome int

const (
	// Accepted means the URL was new: recorded in the ledger and
	// enqueued for ingestion.
	Accepted Outcome = iota
	// Duplicate means the URL was already in the ledger; nothing was
	// enqueued.
	Duplicate
)

// Service validates submitted URLs and runs the ledger-then-publish flow.
// The ledger insert happens first so a publish failure can never let the
// same URL slip through twice; a ledger failure rejects the submission
// outright.
type Service struct {
	ledger    repository.SubmissionLedger
	publisher Publisher
	queue     string
	logger    *slog.Logger
}

func NewService(ledger repository.SubmissionLedger, publisher Publisher, queue string, logger *slog.Logger) *Service {
	return &Service{ledger: ledger, publisher: publisher, queue: queue, logger: logger}
}

// Submit handles one feed URL end to end: validate, dedup against the
// ledger, enqueue when new.
func (s *Service) Submit(ctx context.Context, rawURL string) (Outcome, error) {
	if err := entity.ValidateURL(rawURL); err != nil {
		metrics.RecordSubmission(metrics.SubmissionError)
		return 0, err
	}

	inserted, err := s.ledger.CheckAndInsert(ctx, rawURL)
	if err != nil {
		metrics.RecordSubmission(metrics.SubmissionError)
		return 0, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
	}
	if !inserted {
		metrics.RecordSubmission(metrics.SubmissionDuplicate)
		s.logger.Info("duplicate submission skipped", slog.String("url", rawURL))
		return Duplicate, nil
	}

	if err := s.publisher.Publish(ctx, s.queue, []byte(rawURL)); err != nil {
		metrics.RecordSubmission(metrics.SubmissionError)
		return 0, fmt.Errorf("publish submission: %w", err)
	}

	metrics.RecordSubmission(metrics.SubmissionInserted)
	s.logger.Info("submission accepted",
		slog.String("url", rawURL),
		slog.String("queue", s.queue))
	return Accepted, nil
}
