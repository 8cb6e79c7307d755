// Package browse exposes read access to the ingested news entries, from
// both the search index and the graph store.
package browse

import (
	"context"
	"fmt"
	"log/slog"
)

// Record is one ingested news entry as returned to API clients. The
// published date is kept as the formatted string stored in the sinks.
type Record struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Link          string `json:"link"`
	PublishedDate string `json:"published_date"`
	Source        string `json:"source"`
}

// SearchStore reads entries back from the search index.
type SearchStore interface {
	All(ctx context.Context) ([]Record, error)
	Search(ctx context.Context, query string) ([]Record, error)
}

// GraphStore reads entries back from the graph database.
type GraphStore interface {
	All(ctx context.Context) ([]Record, error)
}

// Service answers read queries against the two sinks independently. A
// failure in one store never touches the other.
type Service struct {
	search SearchStore
	graph  GraphStore
	logger *slog.Logger
}

func NewService(search SearchStore, graph GraphStore, logger *slog.Logger) *Service {
	return &Service{search: search, graph: graph, logger: logger}
}

// SearchEntries returns entries from the search index. An empty query
// returns every indexed entry.
func (s *Service) SearchEntries(ctx context.Context, query string) ([]Record, error) {
	var (
		records []Record
		err     error
	)
	if query == "" {
		records, err = s.search.All(ctx)
	} else {
		records, err = s.search.Search(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("search store: %w", err)
	}

	s.logger.Debug("search entries fetched",
		slog.String("query", query),
		slog.Int("count", len(records)))
	return records, nil
}

// GraphEntries returns every news node recorded in the graph store.
func (s *Service) GraphEntries(ctx context.Context) ([]Record, error) {
	records, err := s.graph.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("graph store: %w", err)
	}

	s.logger.Debug("graph entries fetched", slog.Int("count", len(records)))
	return records, nil
}
