// Package repository defines the persistence interfaces consumed by the
// use case layer.
package repository

import "context"

// SubmissionLedger is the durable set of previously submitted feed URLs.
// It supports exactly one mutation: an atomic check-and-insert. Entries are
// never updated or deleted.
type SubmissionLedger interface {
	// CheckAndInsert records the URL if it has not been seen before.
	// It returns true if the URL was inserted, false if it already existed.
	// The decision is atomic with respect to concurrent callers racing on
	// the same URL: exactly one of them observes true.
	CheckAndInsert(ctx context.Context, url string) (bool, error)
}
