package model

import (
	"encoding/json"
	"testing"
	"time"

	"assetbook/pkg/docstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2024-06-01T10:00:00Z", time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)},
		{"2024-06-01T12:00:00+02:00", time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)},
		{"2024-06-01T10:00:00.250Z", time.Date(2024, 6, 1, 10, 0, 0, 250_000_000, time.UTC)},
		{"2024-06-01T10:00:00", time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)},
		{"2024-06-01", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{" 2024-06-01 ", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v want %v", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}

	for _, bad := range []string{"", "   ", "tomorrow", "01/06/2024", "1717236000"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, "ParseDate(%q)", bad)
	}
}

func TestAsset_FieldsRoundTrip(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	a := &Asset{
		Name:        "Drone",
		Type:        "equipment",
		Status:      "available",
		PricePerDay: 40,
		Currency:    "USD",
	}

	f := a.Fields()
	_, hasDescription := f[FieldDescription]
	assert.False(t, hasDescription, "absent description must not be stored")

	doc := &docstore.Document{ID: "a1", Fields: docstore.Stamp(f, now, FieldCreatedAt, FieldUpdatedAt)}
	got := AssetFromDocument(doc)

	assert.Equal(t, "a1", got.ID)
	assert.Equal(t, "Drone", got.Name)
	assert.Equal(t, 40.0, got.PricePerDay)
	assert.Nil(t, got.Description)
	assert.Equal(t, now, got.CreatedAt)
	assert.Equal(t, now, got.UpdatedAt)
}

func TestAsset_JSONOmitsAbsentDescription(t *testing.T) {
	raw, err := json.Marshal(&Asset{ID: "a1", Name: "Drone"})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "description")

	raw, err = json.Marshal(&Asset{ID: "a1", Description: ptr("4k camera")})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"description":"4k camera"`)
}

func TestBooking_FromDocumentWithDriverTypes(t *testing.T) {
	date := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	doc := &docstore.Document{
		ID: "b1",
		Fields: docstore.Fields{
			FieldAssetID:        "a1",
			FieldDate:           date,
			FieldBookedBy:       "user1",
			FieldNumberOfPeople: int64(4),
			FieldCustomPrice:    int64(100),
			FieldCurrency:       "EUR",
			FieldStatus:         BookingStatusPending,
			FieldCreatedAt:      date,
		},
	}

	b := BookingFromDocument(doc)

	assert.Equal(t, "b1", b.ID)
	require.NotNil(t, b.NumberOfPeople)
	assert.Equal(t, 4, *b.NumberOfPeople)
	require.NotNil(t, b.CustomPrice)
	assert.Equal(t, 100.0, *b.CustomPrice)
	assert.Nil(t, b.Description)
	assert.Equal(t, BookingStatusPending, b.Status)
	assert.Equal(t, date, b.Date)
}

func TestBooking_FieldsOmitAbsentOptionals(t *testing.T) {
	b := &Booking{AssetID: "a1", BookedBy: "user1", Currency: "USD", Status: BookingStatusPending}
	f := b.Fields()

	for _, key := range []string{FieldDescription, FieldNumberOfPeople, FieldCustomPrice, FieldCreatedAt} {
		_, ok := f[key]
		assert.False(t, ok, "%s should be absent", key)
	}
	assert.Equal(t, BookingStatusPending, f[FieldStatus])
}
