// Package elastic persists news entries into an Elasticsearch index and
// serves read queries against it.
package elastic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v8"

	"newsfeed/internal/domain/entity"
	"newsfeed/internal/usecase/browse"
)

// browseLimit caps how many entries a single read query returns.
const browseLimit = 1000

// document is the indexed shape of one news entry.
type document struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Link          string `json:"link"`
	PublishedDate string `json:"published_date"`
	Source        string `json:"source"`
}

// SearchSink writes entries into a fixed index, using the entry's content
// key as the document ID so the store itself rejects duplicates.
type SearchSink struct {
	client *elasticsearch.Client
	index  string
}

// NewSearchSink builds a sink against the Elasticsearch node at addr.
func NewSearchSink(addr, index string) (*SearchSink, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{addr},
	})
	if err != nil {
		return nil, fmt.Errorf("new elasticsearch client: %w", err)
	}
	return &SearchSink{client: client, index: index}, nil
}

// Upsert indexes the entry under its content key. It reports true when a
// new document was created and false when the key already existed; the
// create API's conflict response is the duplicate signal, so concurrent
// workers cannot double-write the same entry.
func (s *SearchSink) Upsert(ctx context.Context, e entity.Entry) (bool, error) {
	doc := document{
		Title:         e.Title,
		Description:   e.Description,
		Link:          e.Link,
		PublishedDate: e.PublishedAt.UTC().Format(time.RFC3339),
		Source:        e.Source,
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return false, fmt.Errorf("marshal document: %w", err)
	}

	res, err := s.client.Create(s.index, e.Key(), bytes.NewReader(body),
		s.client.Create.WithContext(ctx))
	if err != nil {
		return false, fmt.Errorf("index create: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusConflict {
		return false, nil
	}
	if res.IsError() {
		return false, fmt.Errorf("index create: %s", res.String())
	}
	return true, nil
}

// All returns up to browseLimit indexed entries.
func (s *SearchSink) All(ctx context.Context) ([]browse.Record, error) {
	query := `{"query":{"match_all":{}}}`
	return s.run(ctx, query)
}

// Search returns entries whose title or description matches the query.
func (s *SearchSink) Search(ctx context.Context, query string) ([]browse.Record, error) {
	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  query,
				"fields": []string{"title", "description"},
			},
		},
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal query: %w", err)
	}
	return s.run(ctx, string(raw))
}

func (s *SearchSink) run(ctx context.Context, query string) ([]browse.Record, error) {
	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(bytes.NewReader([]byte(query))),
		s.client.Search.WithSize(browseLimit),
	)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		// A search against a not-yet-created index means no entries
		// have been ingested, not a failure.
		if res.StatusCode == http.StatusNotFound {
			return []browse.Record{}, nil
		}
		return nil, fmt.Errorf("search: %s", res.String())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source document `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	records := make([]browse.Record, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		records = append(records, browse.Record{
			Title:         hit.Source.Title,
			Description:   hit.Source.Description,
			Link:          hit.Source.Link,
			PublishedDate: hit.Source.PublishedDate,
			Source:        hit.Source.Source,
		})
	}
	return records, nil
}

// Ping verifies the node is reachable.
func (s *SearchSink) Ping(ctx context.Context) error {
	res, err := s.client.Ping(s.client.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("ping: %s", res.String())
	}
	return nil
}
