package ingest

import "errors"

// ErrFeedFetchFailed indicates the feed could not be retrieved or parsed.
// The broker layer uses it to decide redelivery.
var ErrFeedFetchFailed = errors.New("feed fetch failed")
