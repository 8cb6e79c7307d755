package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infragrpc "newsfeed/internal/infra/grpc"
	"newsfeed/internal/usecase/browse"
)

type stubBrowse struct {
	searchRecords []browse.Record
	graphRecords  []browse.Record
	searchErr     error
	graphErr      error
	lastQuery     string
}

func (s *stubBrowse) SearchEntries(ctx context.Context, query string) ([]browse.Record, error) {
	s.lastQuery = query
	return s.searchRecords, s.searchErr
}

func (s *stubBrowse) GraphEntries(ctx context.Context) ([]browse.Record, error) {
	return s.graphRecords, s.graphErr
}

type stubSender struct {
	message string
	err     error
	lastURL string
}

func (s *stubSender) SendNewsURL(ctx context.Context, rawURL string) (string, error) {
	s.lastURL = rawURL
	return s.message, s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newsMux(svc BrowseService, sender SubmissionSender) *http.ServeMux {
	mux := http.NewServeMux()
	Register(mux, svc, sender, testLogger())
	return mux
}

func TestSearchHandler_ReturnsEntries(t *testing.T) {
	svc := &stubBrowse{searchRecords: []browse.Record{
		{Title: "Go 1.25 released", Link: "https://go.dev/blog/go1.25", Source: "The Go Blog"},
	}}
	mux := newsMux(svc, &stubSender{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/news/search?q=release", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "release", svc.lastQuery)

	var resp EntriesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "Go 1.25 released", resp.Entries[0].Title)
}

func TestSearchHandler_EmptyQueryAllowed(t *testing.T) {
	svc := &stubBrowse{}
	mux := newsMux(svc, &stubSender{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/news/search", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, svc.lastQuery)
}

func TestSearchHandler_StoreError(t *testing.T) {
	svc := &stubBrowse{searchErr: errors.New("index down")}
	mux := newsMux(svc, &stubSender{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/news/search", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGraphHandler_ReturnsEntries(t *testing.T) {
	svc := &stubBrowse{graphRecords: []browse.Record{{Title: "a"}, {Title: "b"}}}
	mux := newsMux(svc, &stubSender{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/news/graph", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp EntriesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
}

func TestSubmitHandler_ForwardsURL(t *testing.T) {
	sender := &stubSender{message: "News Feed URL: https://go.dev/blog/feed.atom"}
	mux := newsMux(&stubBrowse{}, sender)

	rec := httptest.NewRecorder()
	body := strings.NewReader(`{"news_url":"https://go.dev/blog/feed.atom"}`)
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/news", body))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://go.dev/blog/feed.atom", sender.lastURL)

	var resp SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "News Feed URL: https://go.dev/blog/feed.atom", resp.Message)
}

func TestSubmitHandler_MissingURL(t *testing.T) {
	mux := newsMux(&stubBrowse{}, &stubSender{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/news", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "news_url is required")
}

func TestSubmitHandler_InvalidJSON(t *testing.T) {
	mux := newsMux(&stubBrowse{}, &stubSender{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/news", strings.NewReader(`{not json`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitHandler_RejectedMapsTo400(t *testing.T) {
	sender := &stubSender{err: fmt.Errorf("%w: scheme must be http or https", infragrpc.ErrSubmissionRejected)}
	mux := newsMux(&stubBrowse{}, sender)

	rec := httptest.NewRecorder()
	body := strings.NewReader(`{"news_url":"ftp://example.com"}`)
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/news", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitHandler_UnavailableMapsTo503(t *testing.T) {
	sender := &stubSender{err: infragrpc.ErrSubmissionUnavailable}
	mux := newsMux(&stubBrowse{}, sender)

	rec := httptest.NewRecorder()
	body := strings.NewReader(`{"news_url":"https://go.dev/blog/feed.atom"}`)
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/news", body))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
