package rabbit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAcknowledger records how a delivery was settled.
type fakeAcknowledger struct {
	mu      sync.Mutex
	acked   bool
	nacked  bool
	requeue bool
}

func (f *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acked = true
	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nacked = true
	f.requeue = requeue
	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return f.Nack(tag, false, requeue)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandleDelivery_SuccessAcks(t *testing.T) {
	ack := &fakeAcknowledger{}
	d := amqp.Delivery{Acknowledger: ack, Body: []byte("https://example.com/rss")}

	handleDelivery(context.Background(), d, func(ctx context.Context, body []byte) error {
		assert.Equal(t, []byte("https://example.com/rss"), body)
		return nil
	}, discardLogger())

	assert.True(t, ack.acked)
	assert.False(t, ack.nacked)
}

func TestHandleDelivery_FirstFailureRequeues(t *testing.T) {
	ack := &fakeAcknowledger{}
	d := amqp.Delivery{Acknowledger: ack, Redelivered: false}

	handleDelivery(context.Background(), d, func(ctx context.Context, body []byte) error {
		return errors.New("fetch failed")
	}, discardLogger())

	assert.False(t, ack.acked)
	assert.True(t, ack.nacked)
	assert.True(t, ack.requeue, "first failure should go back to the queue")
}

func TestHandleDelivery_RedeliveredFailureDeadLetters(t *testing.T) {
	ack := &fakeAcknowledger{}
	d := amqp.Delivery{Acknowledger: ack, Redelivered: true}

	handleDelivery(context.Background(), d, func(ctx context.Context, body []byte) error {
		return errors.New("fetch failed again")
	}, discardLogger())

	assert.True(t, ack.nacked)
	assert.False(t, ack.requeue, "redelivered failure must not requeue")
}

func TestConsumeLoop_ProcessesAllDeliveries(t *testing.T) {
	deliveries := make(chan amqp.Delivery, 3)
	acks := make([]*fakeAcknowledger, 3)
	for i := range acks {
		acks[i] = &fakeAcknowledger{}
		deliveries <- amqp.Delivery{Acknowledger: acks[i], Body: []byte{byte(i)}}
	}
	close(deliveries)

	var mu sync.Mutex
	var seen [][]byte
	err := consumeLoop(context.Background(), deliveries, 2, func(ctx context.Context, body []byte) error {
		mu.Lock()
		seen = append(seen, body)
		mu.Unlock()
		return nil
	}, discardLogger())

	require.NoError(t, err)
	assert.Len(t, seen, 3)
	for _, a := range acks {
		assert.True(t, a.acked)
	}
}

func TestConsumeLoop_HandlerErrorDoesNotStopLoop(t *testing.T) {
	deliveries := make(chan amqp.Delivery, 2)
	first := &fakeAcknowledger{}
	second := &fakeAcknowledger{}
	deliveries <- amqp.Delivery{Acknowledger: first, Body: []byte("bad")}
	deliveries <- amqp.Delivery{Acknowledger: second, Body: []byte("good")}
	close(deliveries)

	err := consumeLoop(context.Background(), deliveries, 1, func(ctx context.Context, body []byte) error {
		if string(body) == "bad" {
			return errors.New("boom")
		}
		return nil
	}, discardLogger())

	require.NoError(t, err)
	assert.True(t, first.nacked)
	assert.True(t, second.acked)
}

func TestConsumeLoop_StopsOnContextCancel(t *testing.T) {
	deliveries := make(chan amqp.Delivery)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- consumeLoop(ctx, deliveries, 2, func(ctx context.Context, body []byte) error {
			return nil
		}, discardLogger())
	}()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("consume loop did not stop after cancellation")
	}
}
