package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apperrors "assetbook/pkg/errors"
	"assetbook/pkg/logger"
	"assetbook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type mockBookingService struct {
	getByUserFunc func(ctx context.Context, userID string) ([]*model.Booking, error)
	createFunc    func(ctx context.Context, input *model.BookingInput) (*model.Booking, error)
}

func (m *mockBookingService) GetByUser(ctx context.Context, userID string) ([]*model.Booking, error) {
	if m.getByUserFunc != nil {
		return m.getByUserFunc(ctx, userID)
	}
	return []*model.Booking{}, nil
}

func (m *mockBookingService) Create(ctx context.Context, input *model.BookingInput) (*model.Booking, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, input)
	}
	return &model.Booking{ID: "b1", Status: model.BookingStatusPending}, nil
}

func newRouter(svc *mockBookingService) *httprouter.Router {
	router := httprouter.New()
	NewBookingHandler(svc, logger.Nop()).RegisterRoutes(router)
	return router
}

func TestListForUser_PassesPathParam(t *testing.T) {
	var received string
	router := newRouter(&mockBookingService{
		getByUserFunc: func(ctx context.Context, userID string) ([]*model.Booking, error) {
			received = userID
			return nil, nil
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bookings/user-42", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if received != "user-42" {
		t.Errorf("expected user-42, got %q", received)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("expected [], got %s", got)
	}
}

func TestListForUser_ValidationError(t *testing.T) {
	router := newRouter(&mockBookingService{
		getByUserFunc: func(ctx context.Context, userID string) ([]*model.Booking, error) {
			return nil, apperrors.ValidationField("Booking validation failed", "user_id", "user id cannot be empty")
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bookings/%20", nil))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestCreate_ReturnsPendingBooking(t *testing.T) {
	date := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	var received *model.BookingInput
	router := newRouter(&mockBookingService{
		createFunc: func(ctx context.Context, input *model.BookingInput) (*model.Booking, error) {
			received = input
			return &model.Booking{
				ID:        "b7",
				AssetID:   input.AssetID,
				Date:      date,
				BookedBy:  input.BookedBy,
				Currency:  "EUR",
				Status:    model.BookingStatusPending,
				CreatedAt: date,
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(
		`{"assetId":"a1","date":"2024-07-01","bookedBy":"user-42","currency":"eur","status":"Confirmed"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if received == nil || string(received.Status) != `"Confirmed"` {
		t.Fatalf("expected the raw input to reach the service, got %+v", received)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != model.BookingStatusPending || body["id"] != "b7" || body["date"] != "2024-07-01T00:00:00Z" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestCreate_EmptyBody(t *testing.T) {
	router := newRouter(&mockBookingService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", nil))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}
