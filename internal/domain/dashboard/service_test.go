package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type staticSource struct {
	stats Stats
}

func (s *staticSource) Stats(_ context.Context) (*Stats, error) {
	out := s.stats
	return &out, nil
}

func TestHandler_GetStats(t *testing.T) {
	src := &staticSource{stats: Stats{
		TotalPatients: 2,
		TotalDoctors:  2,
		TotalBeds:     3,
		AvailableBeds: 2,
		OccupiedBeds:  1,
	}}
	h := NewHandler(NewService(src))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil)
	rec := httptest.NewRecorder()

	if err := h.GetStats(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got["total_patients"] != 2 || got["available_beds"] != 2 || got["occupied_beds"] != 1 {
		t.Errorf("unexpected stats payload: %v", got)
	}
}
