// Package graph persists news entries into Neo4j as News nodes linked to
// their Source node, and serves read queries against the graph.
package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"newsfeed/internal/domain/entity"
	"newsfeed/internal/usecase/browse"
)

const (
	mergeSourceCypher = `MERGE (s:Source {name: $source})`

	// MERGE on the content key makes the write idempotent, and merging
	// the posted_on edge in the same statement keeps node and edge
	// together even across retries after a partial failure. The node
	// counter of this statement alone tells created from duplicate,
	// since the Source is merged separately beforehand.
	mergeNewsCypher = `MERGE (n:News {entry_id: $entry_id})
ON CREATE SET n.title = $title,
              n.description = $description,
              n.link = $link,
              n.published_date = $published_date,
              n.source = $source
WITH n
MATCH (s:Source {name: $source})
MERGE (n)-[:posted_on {published_date: $published_date}]->(s)`

	allNewsCypher = `MATCH (n:News)-[r:posted_on]->(s:Source)
RETURN n.title AS title,
       n.description AS description,
       n.link AS link,
       n.published_date AS published_date,
       s.name AS source
ORDER BY n.published_date DESC`
)

// queryRunner is the slice of the Neo4j driver the sink needs. The
// production runner executes against a live driver; tests substitute a
// fake.
type queryRunner interface {
	Run(ctx context.Context, cypher string, params map[string]any) ([]*neo4j.Record, neo4j.ResultSummary, error)
}

type driverRunner struct {
	driver neo4j.DriverWithContext
}

func (r driverRunner) Run(ctx context.Context, cypher string, params map[string]any) ([]*neo4j.Record, neo4j.ResultSummary, error) {
	res, err := neo4j.ExecuteQuery(ctx, r.driver, cypher, params, neo4j.EagerResultTransformer)
	if err != nil {
		return nil, nil, err
	}
	return res.Records, res.Summary, nil
}

// GraphSink writes entries into Neo4j keyed by the entry's content key.
type GraphSink struct {
	runner queryRunner
	driver neo4j.DriverWithContext
}

// NewGraphSink builds a sink against the Neo4j server at addr.
func NewGraphSink(addr, user, password string) (*GraphSink, error) {
	driver, err := neo4j.NewDriverWithContext(addr, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		return nil, fmt.Errorf("new neo4j driver: %w", err)
	}
	return &GraphSink{runner: driverRunner{driver: driver}, driver: driver}, nil
}

// Close releases the underlying driver.
func (g *GraphSink) Close(ctx context.Context) error {
	if g.driver == nil {
		return nil
	}
	return g.driver.Close(ctx)
}

// Ping verifies the server is reachable.
func (g *GraphSink) Ping(ctx context.Context) error {
	if g.driver == nil {
		return nil
	}
	return g.driver.VerifyConnectivity(ctx)
}

// Upsert merges the entry into the graph as a News node with a posted_on
// edge to its Source node. It reports true when a new News node was
// created; a duplicate key leaves the graph untouched and reports false.
func (g *GraphSink) Upsert(ctx context.Context, e entity.Entry) (bool, error) {
	published := e.PublishedAt.UTC().Format(time.RFC3339)
	params := map[string]any{
		"entry_id":       e.Key(),
		"title":          e.Title,
		"description":    e.Description,
		"link":           e.Link,
		"published_date": published,
		"source":         e.Source,
	}

	if _, _, err := g.runner.Run(ctx, mergeSourceCypher, map[string]any{"source": e.Source}); err != nil {
		return false, fmt.Errorf("merge source: %w", err)
	}

	_, summary, err := g.runner.Run(ctx, mergeNewsCypher, params)
	if err != nil {
		return false, fmt.Errorf("merge news: %w", err)
	}
	return summary.Counters().NodesCreated() > 0, nil
}

// All returns every News node in the graph, newest first.
func (g *GraphSink) All(ctx context.Context) ([]browse.Record, error) {
	records, _, err := g.runner.Run(ctx, allNewsCypher, nil)
	if err != nil {
		return nil, fmt.Errorf("match news: %w", err)
	}

	out := make([]browse.Record, 0, len(records))
	for _, rec := range records {
		out = append(out, browse.Record{
			Title:         recordString(rec, "title"),
			Description:   recordString(rec, "description"),
			Link:          recordString(rec, "link"),
			PublishedDate: recordString(rec, "published_date"),
			Source:        recordString(rec, "source"),
		})
	}
	return out, nil
}

func recordString(rec *neo4j.Record, key string) string {
	v, ok := rec.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
