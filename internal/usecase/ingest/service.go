// Package ingest turns a queued feed URL into deduplicated entries in the
// search index and the graph store.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"newsfeed/internal/domain/entity"
	"newsfeed/internal/observability/metrics"
	"newsfeed/internal/utils/text"
)

// Feed is a fetched and parsed feed: the channel title plus its entries,
// already normalized by the fetcher.
type Feed struct {
	ChannelTitle string
	Entries      []entity.Entry
}

// FeedFetcher retrieves and parses a feed URL.
type FeedFetcher interface {
	Fetch(ctx context.Context, feedURL string) (Feed, error)
}

// SearchSink writes one entry into the search index. It reports whether a
// new document was created or the entry already existed.
type SearchSink interface {
	Upsert(ctx context.Context, e entity.Entry) (bool, error)
}

// GraphSink writes one entry into the graph store with the same
// created-or-duplicate contract.
type GraphSink interface {
	Upsert(ctx context.Context, e entity.Entry) (bool, error)
}

// FeedStats summarizes one processed feed.
type FeedStats struct {
	SourceTitle string
	Total       int
	Indexed     int
	Duplicates  int
	Failed      int
}

// Service consumes feed URLs and fans each entry out to both sinks. The
// sinks are written independently: a failure or duplicate in one never
// blocks the other, so the two stores converge entry by entry.
type Service struct {
	fetcher FeedFetcher
	search  SearchSink
	graph   GraphSink
	logger  *slog.Logger
}

func NewService(fetcher FeedFetcher, search SearchSink, graph GraphSink, logger *slog.Logger) *Service {
	return &Service{fetcher: fetcher, search: search, graph: graph, logger: logger}
}

// ProcessURL fetches the feed and writes every entry to both sinks.
// Entry-level failures are counted and logged but do not abort the feed;
// only a fetch failure returns an error, which signals the broker to
// redeliver.
func (s *Service) ProcessURL(ctx context.Context, feedURL string) (FeedStats, error) {
	start := time.Now()

	feed, err := s.fetcher.Fetch(ctx, feedURL)
	if err != nil {
		metrics.RecordFeedProcessed("fetch_failed", time.Since(start))
		return FeedStats{}, fmt.Errorf("%w: %s: %v", ErrFeedFetchFailed, feedURL, err)
	}

	stats := FeedStats{SourceTitle: feed.ChannelTitle, Total: len(feed.Entries)}
	for _, e := range feed.Entries {
		e.Description = text.Plain(e.Description)

		searchCreated, searchErr := s.search.Upsert(ctx, e)
		s.recordSink("search", searchCreated, searchErr)

		graphCreated, graphErr := s.graph.Upsert(ctx, e)
		s.recordSink("graph", graphCreated, graphErr)

		// Divergence means the stores have drifted apart and need
		// reconciling: one sink created the entry while the other saw
		// a duplicate or failed to write it.
		if searchCreated != graphCreated {
			metrics.RecordSinkDivergence()
			s.logger.Warn("sink divergence detected",
				slog.String("link", e.Link),
				slog.Bool("search_created", searchCreated),
				slog.Bool("graph_created", graphCreated))
		}

		if searchErr != nil || graphErr != nil {
			stats.Failed++
			s.logger.Error("entry write failed",
				slog.String("link", e.Link),
				slog.Any("search_error", searchErr),
				slog.Any("graph_error", graphErr))
			continue
		}

		if searchCreated || graphCreated {
			stats.Indexed++
		} else {
			stats.Duplicates++
		}
	}

	metrics.RecordFeedProcessed("processed", time.Since(start))
	s.logger.Info("feed processed",
		slog.String("url", feedURL),
		slog.String("source", stats.SourceTitle),
		slog.Int("total", stats.Total),
		slog.Int("indexed", stats.Indexed),
		slog.Int("duplicates", stats.Duplicates),
		slog.Int("failed", stats.Failed))
	return stats, nil
}

func (s *Service) recordSink(sink string, created bool, err error) {
	switch {
	case err != nil:
		metrics.RecordEntryIndexed(sink, metrics.ResultError)
	case created:
		metrics.RecordEntryIndexed(sink, metrics.ResultIndexed)
	default:
		metrics.RecordEntryIndexed(sink, metrics.ResultDuplicate)
	}
}
