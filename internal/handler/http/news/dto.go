// Package news provides the HTTP handlers for browsing ingested entries
// and submitting new feed URLs.
package news

import "newsfeed/internal/usecase/browse"

// SubmitRequest is the POST /news payload.
type SubmitRequest struct {
	NewsURL string `json:"news_url"`
}

// SubmitResponse echoes the submission service's reply.
type SubmitResponse struct {
	Message string `json:"message"`
}

// EntriesResponse wraps a list of entries from either store.
type EntriesResponse struct {
	Entries []browse.Record `json:"entries"`
	Count   int             `json:"count"`
}
