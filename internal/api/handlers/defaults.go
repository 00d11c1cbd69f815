package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ev-charge-estimator/internal/api/models"
	"ev-charge-estimator/internal/config"
	"ev-charge-estimator/internal/estimate"
	"ev-charge-estimator/internal/window"
)

// DefaultsHandler tells a UI how to initialise its form
type DefaultsHandler struct {
	est  *estimate.Estimator
	cfg  *config.Config
	stop window.TimeOfDay
}

// NewDefaultsHandler creates a new defaults handler. cfg must have passed Validate.
func NewDefaultsHandler(est *estimate.Estimator, cfg *config.Config) *DefaultsHandler {
	stop, err := cfg.Estimate.StopTimeOfDay()
	if err != nil {
		stop = window.DefaultStop
	}
	return &DefaultsHandler{est: est, cfg: cfg, stop: stop}
}

// Get handles GET /api/v1/defaults
func (h *DefaultsHandler) Get(c *gin.Context) {
	now := h.est.Now()
	defaults := window.NewTimeWindow(now, h.stop)

	quick := []models.QuickSelectInfo{}
	for _, q := range window.QuickSelects(h.cfg.Estimate.QuickSelectHours) {
		quick = append(quick, models.QuickSelectInfo{
			Label: q.Label,
			Hours: q.Hours,
			Stop:  window.StopAfter(defaults, q.Duration()).Stop,
		})
	}

	c.JSON(http.StatusOK, models.DefaultsResponse{
		Vehicle: models.VehicleInfo{
			Name:        h.cfg.Vehicle.Name,
			CapacityKWh: h.cfg.Vehicle.CapacityKWh,
		},
		DefaultStop:      defaults.Stop,
		DefaultStopClock: h.stop.String(),
		QuickSelects:     quick,
		SweepHours:       h.cfg.Estimate.SweepHours,
	})
}
