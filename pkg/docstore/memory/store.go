// Package memory is an in-process docstore.Store. It backs local development
// (STORE_BACKEND=memory) and the end-to-end tests.
package memory

import (
	"context"
	"sync"
	"time"

	"assetbook/pkg/docstore"

	"github.com/google/uuid"
)

type Store struct {
	mu          sync.RWMutex
	collections map[string][]*docstore.Document
	now         func() time.Time
	closed      bool
}

func NewStore() *Store {
	return NewStoreWithClock(time.Now)
}

func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{
		collections: make(map[string][]*docstore.Document),
		now:         now,
	}
}

func (s *Store) Insert(ctx context.Context, collection string, fields docstore.Fields, serverTime ...string) (*docstore.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, docstore.ErrClosed
	}

	// Millisecond precision matches what the networked backends keep.
	now := s.now().UTC().Truncate(time.Millisecond)
	doc := &docstore.Document{
		ID:     uuid.NewString(),
		Fields: docstore.Stamp(fields, now, serverTime...),
	}
	s.collections[collection] = append(s.collections[collection], doc)

	return copyDocument(doc), nil
}

func (s *Store) Find(ctx context.Context, collection string, filters ...docstore.Filter) ([]*docstore.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, docstore.ErrClosed
	}

	out := make([]*docstore.Document, 0)
	for _, doc := range s.collections[collection] {
		if matches(doc, filters) {
			out = append(out, copyDocument(doc))
		}
	}
	return out, nil
}

func (s *Store) EnsureIndex(ctx context.Context, collection string, field string) error {
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return docstore.ErrClosed
	}
	return ctx.Err()
}

func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func matches(doc *docstore.Document, filters []docstore.Filter) bool {
	for _, f := range filters {
		v, ok := doc.Fields[f.Field]
		if !ok || v != f.Value {
			return false
		}
	}
	return true
}

func copyDocument(doc *docstore.Document) *docstore.Document {
	return &docstore.Document{ID: doc.ID, Fields: doc.Fields.Clone()}
}
