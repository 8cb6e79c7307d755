package news

import (
	"log/slog"
	"net/http"
)

// Register mounts the news routes on the mux.
func Register(mux *http.ServeMux, svc BrowseService, sender SubmissionSender, logger *slog.Logger) {
	mux.Handle("GET /news/search", SearchHandler{Svc: svc, Logger: logger})
	mux.Handle("GET /news/graph", GraphHandler{Svc: svc, Logger: logger})
	mux.Handle("POST /news", SubmitHandler{Sender: sender, Logger: logger})
}
