package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"assetbook/pkg/docstore"
)

const (
	BookingsCollection = "bookings"

	BookingStatusPending = "Pending"

	FieldAssetID        = "assetId"
	FieldDate           = "date"
	FieldBookedBy       = "bookedBy"
	FieldNumberOfPeople = "numberOfPeople"
	FieldCustomPrice    = "customPrice"
)

// DateLayouts are the accepted forms of a booking date. Values without a zone are UTC.
var DateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// BookingInput is the body of POST /api/bookings. Status takes any JSON value so that
// clients echoing a full record are not rejected; it never reaches the store.
type BookingInput struct {
	AssetID        string          `json:"assetId" validate:"required,notblank"`
	Date           *string         `json:"date" validate:"required,timestamp"`
	Description    *string         `json:"description,omitempty"`
	BookedBy       string          `json:"bookedBy" validate:"required,notblank"`
	NumberOfPeople *int            `json:"numberOfPeople,omitempty" validate:"omitempty,min=0"`
	CustomPrice    *float64        `json:"customPrice,omitempty"`
	Currency       string          `json:"currency" validate:"required,notblank"`
	Status         json.RawMessage `json:"status,omitempty"`
}

type Booking struct {
	ID             string    `json:"id"`
	AssetID        string    `json:"assetId"`
	Date           time.Time `json:"date"`
	Description    *string   `json:"description,omitempty"`
	BookedBy       string    `json:"bookedBy"`
	NumberOfPeople *int      `json:"numberOfPeople,omitempty"`
	CustomPrice    *float64  `json:"customPrice,omitempty"`
	Currency       string    `json:"currency"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ParseDate reads s in any of DateLayouts, ignoring surrounding white space.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

func (b *Booking) Fields() docstore.Fields {
	f := docstore.Fields{
		FieldAssetID:  b.AssetID,
		FieldDate:     b.Date,
		FieldBookedBy: b.BookedBy,
		FieldCurrency: b.Currency,
		FieldStatus:   b.Status,
	}
	docstore.SetOptional(f, FieldDescription, b.Description)
	docstore.SetOptional(f, FieldNumberOfPeople, b.NumberOfPeople)
	docstore.SetOptional(f, FieldCustomPrice, b.CustomPrice)
	return f
}

func BookingFromDocument(doc *docstore.Document) *Booking {
	f := doc.Fields
	b := &Booking{
		ID:             doc.ID,
		Description:    f.OptionalString(FieldDescription),
		NumberOfPeople: f.OptionalInt(FieldNumberOfPeople),
		CustomPrice:    f.OptionalFloat(FieldCustomPrice),
	}
	b.AssetID, _ = f.String(FieldAssetID)
	b.Date, _ = f.Time(FieldDate)
	b.BookedBy, _ = f.String(FieldBookedBy)
	b.Currency, _ = f.String(FieldCurrency)
	b.Status, _ = f.String(FieldStatus)
	b.CreatedAt, _ = f.Time(FieldCreatedAt)
	return b
}
