package client

import (
	"context"
	"net/url"

	"assetbook/pkg/model"
)

const bookingsPath = "/api/bookings"

type BookingClient struct {
	httpClient *HttpClient
}

func NewBookingClient(baseUrl string) *BookingClient {
	return &BookingClient{
		httpClient: NewHttpClient(baseUrl),
	}
}

func (c *BookingClient) ListForUser(ctx context.Context, userID string) ([]model.Booking, error) {
	resp, err := c.httpClient.GET(ctx, bookingsPath+"/"+url.PathEscape(userID))
	if err != nil {
		return nil, err
	}

	var bookings []model.Booking
	if err := decodeResponse(resp, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *BookingClient) Create(ctx context.Context, input model.BookingInput) (*model.Booking, error) {
	resp, err := c.httpClient.POST(ctx, bookingsPath, input)
	if err != nil {
		return nil, err
	}

	var booking model.Booking
	if err := decodeResponse(resp, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// CreateIdempotent sends key as Idempotency-Key so a retried call returns the first
// result instead of a second booking.
func (c *BookingClient) CreateIdempotent(ctx context.Context, input model.BookingInput, key string) (*model.Booking, error) {
	resp, err := c.httpClient.POSTWithHeaders(ctx, bookingsPath, input, map[string]string{"Idempotency-Key": key})
	if err != nil {
		return nil, err
	}

	var booking model.Booking
	if err := decodeResponse(resp, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}
