package browse

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSearchStore struct {
	all        []Record
	searched   []Record
	lastQuery  string
	allErr     error
	searchErr  error
	allCalls   int
	queryCalls int
}

func (s *stubSearchStore) All(ctx context.Context) ([]Record, error) {
	s.allCalls++
	return s.all, s.allErr
}

func (s *stubSearchStore) Search(ctx context.Context, query string) ([]Record, error) {
	s.queryCalls++
	s.lastQuery = query
	return s.searched, s.searchErr
}

type stubGraphStore struct {
	records []Record
	err     error
}

func (s *stubGraphStore) All(ctx context.Context) ([]Record, error) {
	return s.records, s.err
}

func newTestService(search SearchStore, graph GraphStore) *Service {
	return NewService(search, graph, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSearchEntries_EmptyQueryReturnsAll(t *testing.T) {
	search := &stubSearchStore{all: []Record{{Title: "Go 1.25 released", Source: "Go Blog"}}}
	svc := newTestService(search, &stubGraphStore{})

	records, err := svc.SearchEntries(context.Background(), "")

	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 1, search.allCalls)
	assert.Equal(t, 0, search.queryCalls)
}

func TestSearchEntries_QueryUsesSearch(t *testing.T) {
	search := &stubSearchStore{searched: []Record{{Title: "generics"}}}
	svc := newTestService(search, &stubGraphStore{})

	records, err := svc.SearchEntries(context.Background(), "generics")

	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "generics", search.lastQuery)
	assert.Equal(t, 0, search.allCalls)
}

func TestSearchEntries_StoreError(t *testing.T) {
	wantErr := errors.New("index unavailable")
	svc := newTestService(&stubSearchStore{allErr: wantErr}, &stubGraphStore{})

	_, err := svc.SearchEntries(context.Background(), "")

	assert.ErrorIs(t, err, wantErr)
}

func TestGraphEntries(t *testing.T) {
	graph := &stubGraphStore{records: []Record{
		{Title: "a", Source: "s1"},
		{Title: "b", Source: "s2"},
	}}
	svc := newTestService(&stubSearchStore{}, graph)

	records, err := svc.GraphEntries(context.Background())

	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestGraphEntries_StoreError(t *testing.T) {
	wantErr := errors.New("graph down")
	svc := newTestService(&stubSearchStore{}, &stubGraphStore{err: wantErr})

	_, err := svc.GraphEntries(context.Background())

	assert.ErrorIs(t, err, wantErr)
}
