// Package feed fetches and parses RSS/Atom feeds. It uses the gofeed
// library wrapped in circuit breaker and retry logic.
package feed

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/sony/gobreaker"

	"newsfeed/internal/domain/entity"
	"newsfeed/internal/resilience/circuitbreaker"
	"newsfeed/internal/resilience/retry"
	"newsfeed/internal/usecase/ingest"
)

// RSSFetcher implements ingest.FeedFetcher using the gofeed library.
type RSSFetcher struct {
	client         *http.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
}

// NewRSSFetcher creates a fetcher with the given HTTP client. Circuit
// breaker and retry policies are configured automatically.
func NewRSSFetcher(client *http.Client) *RSSFetcher {
	return &RSSFetcher{
		client:         client,
		circuitBreaker: circuitbreaker.New(circuitbreaker.FeedFetchConfig()),
		retryConfig:    retry.FeedFetchConfig(),
	}
}

// Fetch retrieves and parses the feed at feedURL, retrying transient
// failures through the circuit breaker.
func (f *RSSFetcher) Fetch(ctx context.Context, feedURL string) (ingest.Feed, error) {
	var parsed ingest.Feed

	retryErr := retry.WithBackoff(ctx, f.retryConfig, func() error {
		cbResult, err := f.circuitBreaker.Execute(func() (interface{}, error) {
			return f.doFetch(ctx, feedURL)
		})

		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("feed fetch circuit breaker open, request rejected",
					slog.String("service", "feed-fetch"),
					slog.String("url", feedURL),
					slog.String("state", f.circuitBreaker.State().String()))
			}
			return err
		}

		parsed = cbResult.(ingest.Feed)
		return nil
	})

	if retryErr != nil {
		return ingest.Feed{}, retryErr
	}

	return parsed, nil
}

// doFetch performs the actual feed fetch without retry or circuit breaker.
func (f *RSSFetcher) doFetch(ctx context.Context, feedURL string) (ingest.Feed, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = "NewsFeedBot"
	fp.Client = f.client

	feed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return ingest.Feed{}, err
	}

	source := feed.Title
	if source == "" {
		source = hostOf(feedURL)
	}

	entries := make([]entity.Entry, 0, len(feed.Items))
	for _, it := range feed.Items {
		pubAt := time.Now().UTC()
		if it.PublishedParsed != nil {
			pubAt = *it.PublishedParsed
		}

		description := it.Description
		if description == "" {
			description = it.Content
		}

		entries = append(entries, entity.Entry{
			Title:       it.Title,
			Description: description,
			Link:        it.Link,
			PublishedAt: pubAt,
			Source:      source,
		})
	}

	return ingest.Feed{ChannelTitle: source, Entries: entries}, nil
}

// hostOf names a feed that carries no channel title by its host.
func hostOf(feedURL string) string {
	u, err := url.Parse(feedURL)
	if err != nil || u.Host == "" {
		return feedURL
	}
	return u.Host
}
