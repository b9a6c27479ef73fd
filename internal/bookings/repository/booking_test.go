package repository

import (
	"context"
	"testing"
	"time"

	"assetbook/pkg/docstore"
	"assetbook/pkg/docstore/memory"
	"assetbook/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type indexRecorder struct {
	docstore.Store
	collection, field string
}

func (r *indexRecorder) EnsureIndex(ctx context.Context, collection string, field string) error {
	r.collection, r.field = collection, field
	return nil
}

func booking(user string) *model.Booking {
	people := 2
	return &model.Booking{
		AssetID:        "asset-1",
		Date:           time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		BookedBy:       user,
		NumberOfPeople: &people,
		Currency:       "EUR",
		Status:         model.BookingStatusPending,
	}
}

func TestBookingRepository_CreateAndFindByBookedBy(t *testing.T) {
	repo := NewBookingRepository(memory.NewStore())
	ctx := context.Background()

	first, err := repo.Create(ctx, booking("user1"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, booking("user2"))
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())
	assert.Equal(t, model.BookingStatusPending, first.Status)
	require.NotNil(t, first.NumberOfPeople)
	assert.Equal(t, 2, *first.NumberOfPeople)

	mine, err := repo.FindByBookedBy(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, first.ID, mine[0].ID)

	none, err := repo.FindByBookedBy(ctx, "nobody")
	require.NoError(t, err)
	require.NotNil(t, none)
	assert.Empty(t, none)
}

func TestBookingRepository_EnsureIndexes(t *testing.T) {
	rec := &indexRecorder{}
	require.NoError(t, NewBookingRepository(rec).EnsureIndexes(context.Background()))

	assert.Equal(t, model.BookingsCollection, rec.collection)
	assert.Equal(t, model.FieldBookedBy, rec.field)
}
