package repository

import (
	"context"
	"fmt"

	assetserrors "assetbook/internal/assets/errors"
	"assetbook/pkg/docstore"
	"assetbook/pkg/model"
)

type AssetRepository interface {
	Create(ctx context.Context, asset *model.Asset) (*model.Asset, error)
	FindAll(ctx context.Context) ([]*model.Asset, error)
}

type assetRepository struct {
	store docstore.Store
}

func NewAssetRepository(store docstore.Store) AssetRepository {
	return &assetRepository{store: store}
}

// Create stores asset and returns the stored record. createdAt and updatedAt come from
// the store clock in the same write.
func (r *assetRepository) Create(ctx context.Context, asset *model.Asset) (*model.Asset, error) {
	doc, err := r.store.Insert(ctx, model.AssetsCollection, asset.Fields(),
		model.FieldCreatedAt, model.FieldUpdatedAt)
	if err != nil {
		return nil, err
	}

	created := model.AssetFromDocument(doc)
	if created.ID == "" || created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		return nil, fmt.Errorf("%w: id=%q", assetserrors.ErrIncompleteRecord, created.ID)
	}
	return created, nil
}

func (r *assetRepository) FindAll(ctx context.Context) ([]*model.Asset, error) {
	docs, err := r.store.Find(ctx, model.AssetsCollection)
	if err != nil {
		return nil, err
	}

	assets := make([]*model.Asset, 0, len(docs))
	for _, doc := range docs {
		assets = append(assets, model.AssetFromDocument(doc))
	}
	return assets, nil
}
