package service

import (
	"context"
	"strings"

	bookingserrors "assetbook/internal/bookings/errors"
	"assetbook/internal/bookings/repository"
	"assetbook/internal/bookings/validator"
	apperrors "assetbook/pkg/errors"
	"assetbook/pkg/events"
	"assetbook/pkg/logger"
	"assetbook/pkg/middleware"
	"assetbook/pkg/model"
	"assetbook/pkg/validation"
)

const userIDField = "user_id"

type BookingService interface {
	GetByUser(ctx context.Context, userID string) ([]*model.Booking, error)
	Create(ctx context.Context, input *model.BookingInput) (*model.Booking, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	events    events.Publisher
	log       *logger.Logger
}

func NewBookingService(
	repo repository.BookingRepository,
	validator *validator.BookingValidator,
	publisher events.Publisher,
	log *logger.Logger,
) BookingService {
	return &bookingService{
		repo:      repo,
		validator: validator,
		events:    publisher,
		log:       log,
	}
}

func (s *bookingService) GetByUser(ctx context.Context, userID string) ([]*model.Booking, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperrors.ValidationField("Booking validation failed", userIDField, bookingserrors.ErrEmptyUserID.Error())
	}

	bookings, err := s.repo.FindByBookedBy(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list bookings", "user_id", userID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}
	return bookings, nil
}

func (s *bookingService) Create(ctx context.Context, input *model.BookingInput) (*model.Booking, error) {
	booking, err := s.validator.Validate(input)
	if err != nil {
		s.log.Warn("Booking validation failed", "error", err)
		return nil, validation.ToAppError("Booking validation failed", err)
	}

	created, err := s.repo.Create(ctx, booking)
	if err != nil {
		s.log.Error("Failed to create booking",
			"asset_id", booking.AssetID,
			"booked_by", booking.BookedBy,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to create booking", err)
	}

	s.log.Info("Booking created successfully",
		"id", created.ID,
		"asset_id", created.AssetID,
		"booked_by", created.BookedBy,
		"date", created.Date,
	)

	s.publish(ctx, events.BookingCreated(created, middleware.RequestIDFromContext(ctx)))
	return created, nil
}

func (s *bookingService) publish(ctx context.Context, event events.Event) {
	if err := s.events.Publish(ctx, event); err != nil {
		s.log.Warn("Failed to publish event",
			"event_type", event.Type,
			"key", event.Key,
			"error", err,
		)
	}
}
