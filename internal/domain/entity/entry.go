// Package entity defines the core domain entities of the news ingestion
// pipeline: URLs submitted for indexing and the feed entries extracted
// from them, along with validation rules and domain-specific errors.
package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Entry represents a single item extracted from a news feed.
// Entries are transient: they are projected into sink-specific documents
// (search document, graph node) and never persisted under their own record.
type Entry struct {
	Title       string
	Description string
	Link        string
	PublishedAt time.Time
	Source      string
}

// Key returns the stable identity of the entry used for deduplication in
// every sink. The key is a SHA-256 over title, link and source name, so
// two feeds that happen to publish entries with the same headline do not
// collide with each other.
func (e Entry) Key() string {
	h := sha256.New()
	h.Write([]byte(e.Title))
	h.Write([]byte{0})
	h.Write([]byte(e.Link))
	h.Write([]byte{0})
	h.Write([]byte(e.Source))
	return hex.EncodeToString(h.Sum(nil))
}
