package repository

import (
	"context"
	"fmt"

	bookingserrors "assetbook/internal/bookings/errors"
	"assetbook/pkg/docstore"
	"assetbook/pkg/model"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) (*model.Booking, error)
	FindByBookedBy(ctx context.Context, userID string) ([]*model.Booking, error)
	EnsureIndexes(ctx context.Context) error
}

type bookingRepository struct {
	store docstore.Store
}

func NewBookingRepository(store docstore.Store) BookingRepository {
	return &bookingRepository{store: store}
}

func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) (*model.Booking, error) {
	doc, err := r.store.Insert(ctx, model.BookingsCollection, booking.Fields(), model.FieldCreatedAt)
	if err != nil {
		return nil, err
	}

	created := model.BookingFromDocument(doc)
	if created.ID == "" || created.CreatedAt.IsZero() {
		return nil, fmt.Errorf("%w: id=%q", bookingserrors.ErrIncompleteRecord, created.ID)
	}
	return created, nil
}

func (r *bookingRepository) FindByBookedBy(ctx context.Context, userID string) ([]*model.Booking, error) {
	docs, err := r.store.Find(ctx, model.BookingsCollection, docstore.Eq(model.FieldBookedBy, userID))
	if err != nil {
		return nil, err
	}

	bookings := make([]*model.Booking, 0, len(docs))
	for _, doc := range docs {
		bookings = append(bookings, model.BookingFromDocument(doc))
	}
	return bookings, nil
}

func (r *bookingRepository) EnsureIndexes(ctx context.Context) error {
	return r.store.EnsureIndex(ctx, model.BookingsCollection, model.FieldBookedBy)
}
