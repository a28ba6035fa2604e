package desks

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sena/models"
	"sena/snapshot"
)

type stubBuilder struct {
	lastDate string
	err      error
}

func (s *stubBuilder) Build(ctx context.Context, date string) (*models.AvailabilitySnapshot, error) {
	if s.err != nil {
		return nil, s.err
	}
	if date == "" {
		date = snapshot.Today()
	}
	if !snapshot.ValidDate(date) {
		return nil, snapshot.ErrInvalidDate
	}
	s.lastDate = date
	return &models.AvailabilitySnapshot{
		Date:  date,
		Desks: []models.DeskAvailability{{DeskID: "D1", Slots: []models.SlotEntry{}}},
	}, nil
}

func TestGetAvailabilityExplicitDate(t *testing.T) {
	builder := &stubBuilder{}
	handler := GetAvailability(builder)

	req := httptest.NewRequest(http.MethodGet, "/api/desks?date=2024-01-10", nil)
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Date  string                    `json:"date"`
		Desks []models.DeskAvailability `json:"desks"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body.Date != "2024-01-10" {
		t.Errorf("expected date 2024-01-10, got %s", body.Date)
	}
	if len(body.Desks) != 1 || body.Desks[0].DeskID != "D1" {
		t.Errorf("unexpected desks: %+v", body.Desks)
	}
	if body.Desks[0].Slots == nil {
		t.Error("slots must be an empty list, not a missing field")
	}
}

func TestGetAvailabilityDefaultsToToday(t *testing.T) {
	builder := &stubBuilder{}
	handler := GetAvailability(builder)

	req := httptest.NewRequest(http.MethodGet, "/api/desks", nil)
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if builder.lastDate != snapshot.Today() {
		t.Errorf("expected today's date, builder saw %s", builder.lastDate)
	}
}

func TestGetAvailabilityInvalidDate(t *testing.T) {
	handler := GetAvailability(&stubBuilder{})

	req := httptest.NewRequest(http.MethodGet, "/api/desks?date=not-a-date", nil)
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetAvailabilityDataSourceDown(t *testing.T) {
	handler := GetAvailability(&stubBuilder{err: snapshot.ErrDataSourceUnavailable})

	req := httptest.NewRequest(http.MethodGet, "/api/desks?date=2024-01-10", nil)
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}
