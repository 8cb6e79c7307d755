package news

import (
	"log/slog"
	"net/http"

	"newsfeed/internal/handler/http/respond"
	"newsfeed/internal/observability/logging"
)

// GraphHandler serves GET /news/graph, reading the News nodes from the
// graph store.
type GraphHandler struct {
	Svc    BrowseService
	Logger *slog.Logger
}

func (h GraphHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	records, err := h.Svc.GraphEntries(ctx)
	if err != nil {
		logger.Error("graph entries failed",
			slog.String("error", err.Error()))
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, EntriesResponse{
		Entries: records,
		Count:   len(records),
	})
}
