package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"assetbook/pkg/docstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestInsert_AssignsIDAndServerTime(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 30, 0, 123456789, time.UTC)
	s := NewStoreWithClock(fixedClock(now))

	doc, err := s.Insert(context.Background(), "assets", docstore.Fields{"name": "Drone"}, "createdAt", "updatedAt")
	require.NoError(t, err)
	require.NotEmpty(t, doc.ID)

	created, ok := doc.Fields.Time("createdAt")
	require.True(t, ok)
	assert.Equal(t, now.Truncate(time.Millisecond), created)

	updated, ok := doc.Fields.Time("updatedAt")
	require.True(t, ok)
	assert.Equal(t, created, updated)
	assert.Equal(t, "Drone", doc.Fields["name"])
}

func TestInsert_DoesNotAliasCallerFields(t *testing.T) {
	s := NewStore()
	fields := docstore.Fields{"name": "Drone"}

	doc, err := s.Insert(context.Background(), "assets", fields, "createdAt")
	require.NoError(t, err)

	fields["name"] = "mutated"
	doc.Fields["name"] = "mutated too"

	docs, err := s.Find(context.Background(), "assets")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Drone", docs[0].Fields["name"])
	_, hasStamp := fields["createdAt"]
	assert.False(t, hasStamp, "caller fields must not be stamped in place")
}

func TestFind_EqualityFilterAndOrder(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	for _, who := range []string{"user1", "user2", "user1"} {
		_, err := s.Insert(ctx, "bookings", docstore.Fields{"bookedBy": who}, "createdAt")
		require.NoError(t, err)
	}

	docs, err := s.Find(ctx, "bookings", docstore.Eq("bookedBy", "user1"))
	require.NoError(t, err)
	require.Len(t, docs, 2)
	for _, d := range docs {
		assert.Equal(t, "user1", d.Fields["bookedBy"])
	}

	all, err := s.Find(ctx, "bookings")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "user2", all[1].Fields["bookedBy"], "store order is insertion order")
}

func TestFind_EmptyCollectionReturnsEmptySlice(t *testing.T) {
	s := NewStore()

	docs, err := s.Find(context.Background(), "bookings", docstore.Eq("bookedBy", "nobody"))
	require.NoError(t, err)
	require.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestClosedStoreFails(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	require.NoError(t, s.Close(ctx))

	_, err := s.Insert(ctx, "assets", docstore.Fields{}, "createdAt")
	assert.ErrorIs(t, err, docstore.ErrClosed)
	_, err = s.Find(ctx, "assets")
	assert.ErrorIs(t, err, docstore.ErrClosed)
	assert.ErrorIs(t, s.Ping(ctx), docstore.ErrClosed)
}

func TestCancelledContext(t *testing.T) {
	s := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Insert(ctx, "assets", docstore.Fields{}, "createdAt")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConcurrentInsertsGetUniqueIDs(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	const n = 50
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doc, err := s.Insert(ctx, "assets", docstore.Fields{"name": "x"}, "createdAt")
			if err == nil {
				ids <- doc.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[string]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}
