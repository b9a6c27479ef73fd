package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"assetbook/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingPublisher holds every Publish until its context ends.
type blockingPublisher struct {
	mu      sync.Mutex
	started chan struct{}
	results []error
	closed  bool
}

func newBlockingPublisher() *blockingPublisher {
	return &blockingPublisher{started: make(chan struct{}, 10)}
}

func (p *blockingPublisher) Publish(ctx context.Context, event Event) error {
	p.started <- struct{}{}
	<-ctx.Done()
	p.mu.Lock()
	p.results = append(p.results, ctx.Err())
	p.mu.Unlock()
	return ctx.Err()
}

func (p *blockingPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []Event
	ctxErr error
}

func (p *recordingPublisher) Publish(ctx context.Context, event Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	p.ctxErr = ctx.Err()
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func TestAsyncPublisher_ReturnsBeforeDelivery(t *testing.T) {
	next := newBlockingPublisher()
	pub := NewAsyncPublisher(next, 50*time.Millisecond, logger.Nop())

	start := time.Now()
	require.NoError(t, pub.Publish(context.Background(), Event{Type: TypeAssetCreated, Key: "a1"}))
	assert.Less(t, time.Since(start), 50*time.Millisecond)

	select {
	case <-next.started:
	case <-time.After(time.Second):
		t.Fatal("event was never handed to the inner publisher")
	}

	require.NoError(t, pub.Close())
	next.mu.Lock()
	defer next.mu.Unlock()
	require.Len(t, next.results, 1)
	assert.ErrorIs(t, next.results[0], context.DeadlineExceeded)
	assert.True(t, next.closed)
}

func TestAsyncPublisher_DetachesFromCallerContext(t *testing.T) {
	next := &recordingPublisher{}
	pub := NewAsyncPublisher(next, time.Second, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, pub.Publish(ctx, Event{Type: TypeBookingCreated, Key: "b1"}))
	cancel()

	require.NoError(t, pub.Close())
	next.mu.Lock()
	defer next.mu.Unlock()
	require.Len(t, next.events, 1)
	assert.Equal(t, "b1", next.events[0].Key)
	assert.NoError(t, next.ctxErr)
}

func TestAsyncPublisher_CloseWaitsForInflight(t *testing.T) {
	next := newBlockingPublisher()
	pub := NewAsyncPublisher(next, 100*time.Millisecond, logger.Nop())

	require.NoError(t, pub.Publish(context.Background(), Event{Key: "a1"}))
	<-next.started

	start := time.Now()
	require.NoError(t, pub.Close())
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)

	next.mu.Lock()
	assert.Len(t, next.results, 1)
	next.mu.Unlock()
}

func TestAsyncPublisher_RejectsAfterClose(t *testing.T) {
	pub := NewAsyncPublisher(&recordingPublisher{}, time.Second, logger.Nop())
	require.NoError(t, pub.Close())
	require.NoError(t, pub.Close())

	err := pub.Publish(context.Background(), Event{Key: "late"})
	assert.True(t, errors.Is(err, ErrPublisherClosed))
}
