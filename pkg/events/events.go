// Package events publishes domain events after successful writes. Publishing is
// best-effort: callers log a failure and carry on, since the write has already been
// committed.
package events

import (
	"context"

	"assetbook/pkg/model"
)

const (
	TypeAssetCreated   = "asset.created"
	TypeBookingCreated = "booking.created"

	Source        = "assetbook-api"
	SchemaVersion = "1"
)

type Event struct {
	Type          string
	Key           string
	Payload       any
	CorrelationID string
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

func AssetCreated(asset *model.Asset, correlationID string) Event {
	return Event{
		Type:          TypeAssetCreated,
		Key:           asset.ID,
		Payload:       asset,
		CorrelationID: correlationID,
	}
}

func BookingCreated(booking *model.Booking, correlationID string) Event {
	return Event{
		Type:          TypeBookingCreated,
		Key:           booking.ID,
		Payload:       booking,
		CorrelationID: correlationID,
	}
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, event Event) error { return nil }

func (NopPublisher) Close() error { return nil }
