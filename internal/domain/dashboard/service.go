// Package dashboard aggregates operational counts across the record
// collections. Stats are recomputed from the live collections on every
// call; nothing is cached or incrementally maintained.
package dashboard

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Stats is the dashboard snapshot. Patient count covers active patients
// only; every other count covers the whole collection.
type Stats struct {
	TotalPatients     int `json:"total_patients"`
	TotalDoctors      int `json:"total_doctors"`
	TotalBeds         int `json:"total_beds"`
	AvailableBeds     int `json:"available_beds"`
	OccupiedBeds      int `json:"occupied_beds"`
	TotalMedicines    int `json:"total_medicines"`
	LowStockMedicines int `json:"low_stock_medicines"`
	ExpiredMedicines  int `json:"expired_medicines"`
}

// Source produces a fresh Stats snapshot.
type Source interface {
	Stats(ctx context.Context) (*Stats, error)
}

type Service struct {
	src Source
}

func NewService(src Source) *Service {
	return &Service{src: src}
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	return s.src.Stats(ctx)
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/dashboard/stats", h.GetStats)
}

func (h *Handler) GetStats(c echo.Context) error {
	stats, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stats)
}
