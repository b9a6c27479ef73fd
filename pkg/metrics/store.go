package metrics

import (
	"context"
	"time"

	"assetbook/pkg/docstore"
)

type instrumentedStore struct {
	docstore.Store
}

// InstrumentStore records count and latency of every Insert and Find made through the
// returned store.
func InstrumentStore(store docstore.Store) docstore.Store {
	return &instrumentedStore{Store: store}
}

func (s *instrumentedStore) Insert(ctx context.Context, collection string, fields docstore.Fields, serverTime ...string) (*docstore.Document, error) {
	start := time.Now()
	doc, err := s.Store.Insert(ctx, collection, fields, serverTime...)
	observeStore("insert", collection, start, err)
	return doc, err
}

func (s *instrumentedStore) Find(ctx context.Context, collection string, filters ...docstore.Filter) ([]*docstore.Document, error) {
	start := time.Now()
	docs, err := s.Store.Find(ctx, collection, filters...)
	observeStore("find", collection, start, err)
	return docs, err
}

func observeStore(op, collection string, start time.Time, err error) {
	StoreOperations.WithLabelValues(op, collection, Result(err)).Inc()
	StoreDuration.WithLabelValues(op, collection).Observe(time.Since(start).Seconds())
}
