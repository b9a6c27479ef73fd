package mongodb

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToDocument_NormalisesDriverTypes(t *testing.T) {
	oid := primitive.NewObjectID()
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	doc := toDocument(bson.M{
		"_id":            oid,
		"name":           "Drone",
		"createdAt":      primitive.NewDateTimeFromTime(created),
		"numberOfPeople": int32(3),
		"pricePerDay":    12.5,
	})

	if doc.ID != oid.Hex() {
		t.Errorf("ID = %q, want %q", doc.ID, oid.Hex())
	}
	if _, ok := doc.Fields["_id"]; ok {
		t.Errorf("_id should not be copied into fields")
	}

	got, ok := doc.Fields.Time("createdAt")
	if !ok || !got.Equal(created) {
		t.Errorf("createdAt = %v, %v; want %v", got, ok, created)
	}
	if got.Location() != time.UTC {
		t.Errorf("createdAt should be UTC, got %v", got.Location())
	}

	if n, ok := doc.Fields.Int("numberOfPeople"); !ok || n != 3 {
		t.Errorf("numberOfPeople = %d, %v", n, ok)
	}
	if p, ok := doc.Fields.Float("pricePerDay"); !ok || p != 12.5 {
		t.Errorf("pricePerDay = %v, %v", p, ok)
	}
}

func TestFormatID_String(t *testing.T) {
	if got := formatID("abc"); got != "abc" {
		t.Errorf("formatID(string) = %q", got)
	}
}
