// Package grpc provides the client the API facade uses to reach the
// submission service.
package grpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	pb "newsfeed/internal/interface/grpc/pb/newsfeed"
	"newsfeed/internal/resilience/circuitbreaker"
)

var (
	// ErrSubmissionUnavailable indicates the submission service is not
	// reachable or its circuit breaker is open.
	ErrSubmissionUnavailable = errors.New("submission service unavailable")

	// ErrSubmissionRejected indicates the submission service refused
	// the URL as invalid.
	ErrSubmissionRejected = errors.New("submission rejected")
)

const defaultCallTimeout = 10 * time.Second

// SubmissionClient forwards feed URLs to the submission gRPC service,
// guarded by a circuit breaker.
type SubmissionClient struct {
	conn           *grpc.ClientConn
	client         pb.NewsServiceClient
	circuitBreaker *circuitbreaker.CircuitBreaker
	timeout        time.Duration
	logger         *slog.Logger
}

// NewSubmissionClient connects to the submission service at addr.
func NewSubmissionClient(addr string, logger *slog.Logger) (*SubmissionClient, error) {
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("create submission connection: %w", err)
	}

	return &SubmissionClient{
		conn:           conn,
		client:         pb.NewNewsServiceClient(conn),
		circuitBreaker: circuitbreaker.New(circuitbreaker.SubmissionRPCConfig()),
		timeout:        defaultCallTimeout,
		logger:         logger,
	}, nil
}

// SendNewsURL submits one feed URL and returns the service's reply text.
func (c *SubmissionClient) SendNewsURL(ctx context.Context, rawURL string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.circuitBreaker.Execute(func() (interface{}, error) {
		resp, err := c.client.SendNewsURL(ctx, &pb.NewsRequest{NewsUrl: rawURL})
		if err != nil {
			return nil, mapGRPCError(err)
		}
		return resp.GetMessage(), nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			c.logger.Warn("submission circuit breaker open, request rejected",
				slog.String("url", rawURL),
				slog.String("state", c.circuitBreaker.State().String()))
			return "", ErrSubmissionUnavailable
		}
		return "", err
	}

	return result.(string), nil
}

// Close releases the underlying connection.
func (c *SubmissionClient) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// mapGRPCError maps transport status codes to client errors.
func mapGRPCError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("%w: %v", ErrSubmissionUnavailable, err)
	}

	switch st.Code() {
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrSubmissionRejected, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", ErrSubmissionUnavailable, st.Message())
	default:
		return fmt.Errorf("submission service error: %s", st.Message())
	}
}
