package news

import (
	"context"
	"log/slog"
	"net/http"

	"newsfeed/internal/handler/http/respond"
	"newsfeed/internal/observability/logging"
	"newsfeed/internal/usecase/browse"
)

// BrowseService answers read queries over the ingested entries.
type BrowseService interface {
	SearchEntries(ctx context.Context, query string) ([]browse.Record, error)
	GraphEntries(ctx context.Context) ([]browse.Record, error)
}

// SearchHandler serves GET /news/search, reading from the search index.
// An optional q parameter filters by title and description; without it,
// every indexed entry is returned.
type SearchHandler struct {
	Svc    BrowseService
	Logger *slog.Logger
}

func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	query := r.URL.Query().Get("q")
	records, err := h.Svc.SearchEntries(ctx, query)
	if err != nil {
		logger.Error("search entries failed",
			slog.String("query", query),
			slog.String("error", err.Error()))
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, EntriesResponse{
		Entries: records,
		Count:   len(records),
	})
}
