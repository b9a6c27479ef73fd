package docstore

import (
	"context"
	"time"
)

type timeoutStore struct {
	Store
	timeout time.Duration
}

// WithTimeout bounds every call made through the returned Store. A deadline already on
// the caller's context wins when it is sooner.
func WithTimeout(store Store, timeout time.Duration) Store {
	if timeout <= 0 {
		return store
	}
	return &timeoutStore{Store: store, timeout: timeout}
}

func (s *timeoutStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	deadline, hasDeadline := ctx.Deadline()
	if hasDeadline && time.Until(deadline) < s.timeout {
		return context.WithDeadline(ctx, deadline)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *timeoutStore) Insert(ctx context.Context, collection string, fields Fields, serverTime ...string) (*Document, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.Store.Insert(ctx, collection, fields, serverTime...)
}

func (s *timeoutStore) Find(ctx context.Context, collection string, filters ...Filter) ([]*Document, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.Store.Find(ctx, collection, filters...)
}

func (s *timeoutStore) EnsureIndex(ctx context.Context, collection string, field string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.Store.EnsureIndex(ctx, collection, field)
}

func (s *timeoutStore) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.Store.Ping(ctx)
}
