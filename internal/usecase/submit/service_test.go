package submit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsfeed/internal/domain/entity"
)

type stubLedger struct {
	inserted bool
	err      error
	lastURL  string
	calls    int
}

func (s *stubLedger) CheckAndInsert(ctx context.Context, url string) (bool, error) {
	s.calls++
	s.lastURL = url
	return s.inserted, s.err
}

type stubPublisher struct {
	err       error
	lastQueue string
	lastBody  []byte
	calls     int
}

func (s *stubPublisher) Publish(ctx context.Context, queue string, body []byte) error {
	s.calls++
	s.lastQueue = queue
	s.lastBody = body
	return s.err
}

func newTestService(ledger *stubLedger, pub *stubPublisher) *Service {
	return NewService(ledger, pub, "news-queue", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSubmit_NewURLIsLedgeredAndPublished(t *testing.T) {
	ledger := &stubLedger{inserted: true}
	pub := &stubPublisher{}
	svc := newTestService(ledger, pub)

	outcome, err := svc.Submit(context.Background(), "https://go.dev/blog/feed.atom")

	require.NoError(t, err)
	assert.Equal(t, Accepted, outcome)
	assert.Equal(t, "https://go.dev/blog/feed.atom", ledger.lastURL)
	assert.Equal(t, "news-queue", pub.lastQueue)
	assert.Equal(t, []byte("https://go.dev/blog/feed.atom"), pub.lastBody)
}

func TestSubmit_DuplicateSkipsPublish(t *testing.T) {
	ledger := &stubLedger{inserted: false}
	pub := &stubPublisher{}
	svc := newTestService(ledger, pub)

	outcome, err := svc.Submit(context.Background(), "https://go.dev/blog/feed.atom")

	require.NoError(t, err)
	assert.Equal(t, Duplicate, outcome)
	assert.Zero(t, pub.calls, "duplicates must never be enqueued")
}

func TestSubmit_InvalidURLRejectedBeforeLedger(t *testing.T) {
	ledger := &stubLedger{}
	svc := newTestService(ledger, &stubPublisher{})

	_, err := svc.Submit(context.Background(), "ftp://example.com/feed")

	var verr *entity.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Zero(t, ledger.calls)
}

func TestSubmit_LedgerFailureFailsClosed(t *testing.T) {
	ledger := &stubLedger{err: errors.New("connection refused")}
	pub := &stubPublisher{}
	svc := newTestService(ledger, pub)

	_, err := svc.Submit(context.Background(), "https://go.dev/blog/feed.atom")

	assert.ErrorIs(t, err, ErrLedgerUnavailable)
	assert.Zero(t, pub.calls, "an unverifiable URL must not be enqueued")
}

func TestSubmit_PublishFailureSurfaces(t *testing.T) {
	ledger := &stubLedger{inserted: true}
	pub := &stubPublisher{err: errors.New("broker gone")}
	svc := newTestService(ledger, pub)

	_, err := svc.Submit(context.Background(), "https://go.dev/blog/feed.atom")

	assert.Error(t, err)
	assert.Equal(t, 1, ledger.calls)
}
