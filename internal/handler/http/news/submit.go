package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"newsfeed/internal/handler/http/respond"
	infragrpc "newsfeed/internal/infra/grpc"
	"newsfeed/internal/observability/logging"
)

// SubmissionSender forwards a feed URL to the submission service.
type SubmissionSender interface {
	SendNewsURL(ctx context.Context, rawURL string) (string, error)
}

// SubmitHandler serves POST /news. It validates the JSON payload and
// forwards the URL to the submission service over gRPC.
type SubmitHandler struct {
	Sender SubmissionSender
	Logger *slog.Logger
}

func (h SubmitHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, fmt.Errorf("invalid JSON body"))
		return
	}
	if req.NewsURL == "" {
		respond.Error(w, http.StatusBadRequest, fmt.Errorf("news_url is required"))
		return
	}

	message, err := h.Sender.SendNewsURL(ctx, req.NewsURL)
	if err != nil {
		switch {
		case errors.Is(err, infragrpc.ErrSubmissionRejected):
			respond.SafeError(w, http.StatusBadRequest, err)
		case errors.Is(err, infragrpc.ErrSubmissionUnavailable):
			logger.Error("submission service unavailable",
				slog.String("url", req.NewsURL),
				slog.String("error", err.Error()))
			respond.SafeError(w, http.StatusServiceUnavailable, err)
		default:
			logger.Error("submission failed",
				slog.String("url", req.NewsURL),
				slog.String("error", err.Error()))
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	logger.Info("url forwarded to submission service",
		slog.String("url", req.NewsURL))
	respond.JSON(w, http.StatusOK, SubmitResponse{Message: message})
}
