package events

import (
	"context"
	"errors"
	"sync"
	"time"

	"assetbook/pkg/logger"
)

const DefaultPublishTimeout = 10 * time.Second

var ErrPublisherClosed = errors.New("event publisher is closed")

// AsyncPublisher hands events to next in the background. Publish returns as soon as
// the event is queued; delivery runs on a context detached from the caller's and
// bounded by timeout. Failures are logged.
type AsyncPublisher struct {
	next    Publisher
	timeout time.Duration
	log     *logger.Logger

	mu       sync.RWMutex
	closed   bool
	inflight sync.WaitGroup
}

func NewAsyncPublisher(next Publisher, timeout time.Duration, log *logger.Logger) *AsyncPublisher {
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}
	return &AsyncPublisher{
		next:    next,
		timeout: timeout,
		log:     log,
	}
}

func (p *AsyncPublisher) Publish(ctx context.Context, event Event) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}

	p.inflight.Add(1)
	go func() {
		defer p.inflight.Done()

		pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
		defer cancel()

		if err := p.next.Publish(pubCtx, event); err != nil {
			p.log.Warn("Failed to publish event",
				"event_type", event.Type,
				"key", event.Key,
				"error", err,
			)
		}
	}()
	return nil
}

// Close stops accepting events, waits for queued ones and closes next.
func (p *AsyncPublisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()

	p.inflight.Wait()
	return p.next.Close()
}
