// Package docstore is the persistence boundary of the service: a collection-oriented
// document store that assigns ids and server timestamps on write.
//
// Records cross the boundary as Fields, a flat map of scalar values. Typed models map
// themselves to and from Fields; each backend maps Fields to its native representation.
package docstore

import (
	"context"
	"errors"
	"time"
)

var (
	ErrClosed = errors.New("document store is closed")
)

// Filter matches documents whose Field equals Value.
type Filter struct {
	Field string
	Value any
}

func Eq(field string, value any) Filter {
	return Filter{Field: field, Value: value}
}

// Document is a stored record together with its store-assigned id.
type Document struct {
	ID     string
	Fields Fields
}

type Store interface {
	// Insert writes a new document into collection. Every field named in serverTime is
	// set to the store's current time as part of the same write. The returned Document
	// is the record as stored, including the generated id and the assigned timestamps.
	Insert(ctx context.Context, collection string, fields Fields, serverTime ...string) (*Document, error)

	// Find returns the documents of collection matching all filters, in store order.
	Find(ctx context.Context, collection string, filters ...Filter) ([]*Document, error)

	// EnsureIndex makes equality lookups on field efficient. Backends that index every
	// field implicitly treat it as a no-op.
	EnsureIndex(ctx context.Context, collection string, field string) error

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Stamp copies fields and sets every name in serverTime to now. Backends without a
// server-side clock sentinel use it to build the stored record.
func Stamp(fields Fields, now time.Time, serverTime ...string) Fields {
	out := fields.Clone()
	for _, name := range serverTime {
		out[name] = now
	}
	return out
}
