// Package grpc provides the gRPC server for feed URL submission.
package grpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"newsfeed/internal/domain/entity"
	pb "newsfeed/internal/interface/grpc/pb/newsfeed"
	"newsfeed/internal/usecase/submit"
)

// Submitter runs the ledger-then-publish submission flow.
type Submitter interface {
	Submit(ctx context.Context, rawURL string) (submit.Outcome, error)
}

// NewsServer implements the gRPC NewsService.
type NewsServer struct {
	pb.UnimplementedNewsServiceServer
	submitter Submitter
}

// NewNewsServer creates a NewsServer backed by the given submitter.
func NewNewsServer(submitter Submitter) *NewsServer {
	return &NewsServer{submitter: submitter}
}

// SendNewsURL submits one feed URL. A new URL is recorded and enqueued; a
// known URL is reported back without being enqueued again.
func (s *NewsServer) SendNewsURL(ctx context.Context, req *pb.NewsRequest) (*pb.NewsResponse, error) {
	outcome, err := s.submitter.Submit(ctx, req.GetNewsUrl())
	if err != nil {
		var verr *entity.ValidationError
		if errors.As(err, &verr) {
			return nil, status.Error(codes.InvalidArgument, verr.Error())
		}
		if errors.Is(err, submit.ErrLedgerUnavailable) {
			slog.Error("submission ledger unavailable",
				slog.String("url", req.GetNewsUrl()),
				slog.String("error", err.Error()),
			)
			return nil, status.Error(codes.Unavailable, "submission ledger unavailable")
		}
		slog.Error("submission failed",
			slog.String("url", req.GetNewsUrl()),
			slog.String("error", err.Error()),
		)
		return nil, status.Error(codes.Internal, "failed to submit URL")
	}

	if outcome == submit.Duplicate {
		return &pb.NewsResponse{
			Message: fmt.Sprintf("URL already exists: %s", req.GetNewsUrl()),
		}, nil
	}

	return &pb.NewsResponse{
		Message: fmt.Sprintf("News Feed URL: %s", req.GetNewsUrl()),
	}, nil
}
