package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	assetserrors "assetbook/internal/assets/errors"
	"assetbook/pkg/docstore"
	"assetbook/pkg/docstore/memory"
	"assetbook/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	docstore.Store
	insertDoc *docstore.Document
	err       error
}

func (s *stubStore) Insert(ctx context.Context, collection string, fields docstore.Fields, serverTime ...string) (*docstore.Document, error) {
	return s.insertDoc, s.err
}

func (s *stubStore) Find(ctx context.Context, collection string, filters ...docstore.Filter) ([]*docstore.Document, error) {
	return nil, s.err
}

func TestAssetRepository_CreateAndFindAll(t *testing.T) {
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	repo := NewAssetRepository(memory.NewStoreWithClock(func() time.Time { return now }))
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.Asset{
		Name: "Projector", Type: "equipment", Status: "available", PricePerDay: 15, Currency: "USD",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.Equal(t, now, created.UpdatedAt)
	assert.Equal(t, "Projector", created.Name)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)
	assert.Equal(t, 15.0, all[0].PricePerDay)
}

func TestAssetRepository_FindAllEmpty(t *testing.T) {
	repo := NewAssetRepository(memory.NewStore())

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.NotNil(t, all)
	assert.Empty(t, all)
}

func TestAssetRepository_StoreErrorPassesThrough(t *testing.T) {
	storeErr := errors.New("deadline exceeded")
	repo := NewAssetRepository(&stubStore{err: storeErr})

	_, err := repo.Create(context.Background(), &model.Asset{Name: "x"})
	assert.ErrorIs(t, err, storeErr)

	_, err = repo.FindAll(context.Background())
	assert.ErrorIs(t, err, storeErr)
}

func TestAssetRepository_RejectsIncompleteRecord(t *testing.T) {
	repo := NewAssetRepository(&stubStore{insertDoc: &docstore.Document{ID: "a1", Fields: docstore.Fields{}}})

	_, err := repo.Create(context.Background(), &model.Asset{Name: "x"})
	assert.ErrorIs(t, err, assetserrors.ErrIncompleteRecord)
}
