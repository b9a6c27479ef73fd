package service

import (
	"context"

	"assetbook/internal/assets/repository"
	"assetbook/internal/assets/validator"
	apperrors "assetbook/pkg/errors"
	"assetbook/pkg/events"
	"assetbook/pkg/logger"
	"assetbook/pkg/middleware"
	"assetbook/pkg/model"
	"assetbook/pkg/validation"
)

type AssetService interface {
	GetAll(ctx context.Context) ([]*model.Asset, error)
	Create(ctx context.Context, input *model.AssetInput) (*model.Asset, error)
}

type assetService struct {
	repo      repository.AssetRepository
	validator *validator.AssetValidator
	events    events.Publisher
	log       *logger.Logger
}

func NewAssetService(
	repo repository.AssetRepository,
	validator *validator.AssetValidator,
	publisher events.Publisher,
	log *logger.Logger,
) AssetService {
	return &assetService{
		repo:      repo,
		validator: validator,
		events:    publisher,
		log:       log,
	}
}

func (s *assetService) GetAll(ctx context.Context) ([]*model.Asset, error) {
	assets, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list assets", "error", err)
		return nil, apperrors.Internal("Failed to retrieve assets", err)
	}
	return assets, nil
}

func (s *assetService) Create(ctx context.Context, input *model.AssetInput) (*model.Asset, error) {
	asset, err := s.validator.Validate(input)
	if err != nil {
		s.log.Warn("Asset validation failed", "error", err)
		return nil, validation.ToAppError("Asset validation failed", err)
	}

	created, err := s.repo.Create(ctx, asset)
	if err != nil {
		s.log.Error("Failed to create asset", "name", asset.Name, "error", err)
		return nil, apperrors.Internal("Failed to create asset", err)
	}

	s.log.Info("Asset created successfully",
		"id", created.ID,
		"name", created.Name,
		"type", created.Type,
	)

	s.publish(ctx, events.AssetCreated(created, middleware.RequestIDFromContext(ctx)))
	return created, nil
}

func (s *assetService) publish(ctx context.Context, event events.Event) {
	if err := s.events.Publish(ctx, event); err != nil {
		s.log.Warn("Failed to publish event",
			"event_type", event.Type,
			"key", event.Key,
			"error", err,
		)
	}
}
