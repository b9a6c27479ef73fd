// Package api assembles the asset and booking resources over a shared client.
package api

import (
	"context"

	assethandler "assetbook/internal/assets/handler"
	assetrepository "assetbook/internal/assets/repository"
	assetservice "assetbook/internal/assets/service"
	assetvalidator "assetbook/internal/assets/validator"
	bookinghandler "assetbook/internal/bookings/handler"
	bookingrepository "assetbook/internal/bookings/repository"
	bookingservice "assetbook/internal/bookings/service"
	bookingvalidator "assetbook/internal/bookings/validator"
	"assetbook/pkg/client"
	"assetbook/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	assets      *assethandler.AssetHandler
	bookings    *bookinghandler.BookingHandler
	bookingRepo bookingrepository.BookingRepository
}

func New(c *client.Client, log *logger.Logger) *Handler {
	assetRepo := assetrepository.NewAssetRepository(c.Store)
	assetSvc := assetservice.NewAssetService(
		assetRepo,
		assetvalidator.NewAssetValidator(log),
		c.Events,
		log,
	)

	bookingRepo := bookingrepository.NewBookingRepository(c.Store)
	bookingSvc := bookingservice.NewBookingService(
		bookingRepo,
		bookingvalidator.NewBookingValidator(log),
		c.Events,
		log,
	)

	return &Handler{
		assets:      assethandler.NewAssetHandler(assetSvc, log),
		bookings:    bookinghandler.NewBookingHandler(bookingSvc, log),
		bookingRepo: bookingRepo,
	}
}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	h.assets.RegisterRoutes(router)
	h.bookings.RegisterRoutes(router)
}

// EnsureIndexes creates the lookup index on bookings.bookedBy where the backend has one.
func (h *Handler) EnsureIndexes(ctx context.Context) error {
	return h.bookingRepo.EnsureIndexes(ctx)
}
