package model

import (
	"time"

	"assetbook/pkg/docstore"
)

const (
	AssetsCollection = "assets"

	FieldName        = "name"
	FieldType        = "type"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldPricePerDay = "pricePerDay"
	FieldCurrency    = "currency"
	FieldCreatedAt   = "createdAt"
	FieldUpdatedAt   = "updatedAt"
)

// AssetInput is the body of POST /api/assets. Accepted values are stored as sent.
type AssetInput struct {
	Name        string   `json:"name" validate:"required,notblank"`
	Type        string   `json:"type" validate:"required,notblank"`
	Description *string  `json:"description,omitempty"`
	Status      string   `json:"status" validate:"required,notblank"`
	PricePerDay *float64 `json:"pricePerDay" validate:"required,min=0"`
	Currency    string   `json:"currency" validate:"required,notblank"`
}

type Asset struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description *string   `json:"description,omitempty"`
	Status      string    `json:"status"`
	PricePerDay float64   `json:"pricePerDay"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Fields maps the caller-owned part of a to its stored form. ID and timestamps are
// assigned by the store.
func (a *Asset) Fields() docstore.Fields {
	f := docstore.Fields{
		FieldName:        a.Name,
		FieldType:        a.Type,
		FieldStatus:      a.Status,
		FieldPricePerDay: a.PricePerDay,
		FieldCurrency:    a.Currency,
	}
	docstore.SetOptional(f, FieldDescription, a.Description)
	return f
}

func AssetFromDocument(doc *docstore.Document) *Asset {
	f := doc.Fields
	a := &Asset{
		ID:          doc.ID,
		Description: f.OptionalString(FieldDescription),
	}
	a.Name, _ = f.String(FieldName)
	a.Type, _ = f.String(FieldType)
	a.Status, _ = f.String(FieldStatus)
	a.PricePerDay, _ = f.Float(FieldPricePerDay)
	a.Currency, _ = f.String(FieldCurrency)
	a.CreatedAt, _ = f.Time(FieldCreatedAt)
	a.UpdatedAt, _ = f.Time(FieldUpdatedAt)
	return a
}
