package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ev-charge-estimator/internal/api/models"
	"ev-charge-estimator/internal/estimate"
	"ev-charge-estimator/internal/model"
	"ev-charge-estimator/internal/window"
)

// WindowHandler resolves start/stop pickers into hours
type WindowHandler struct {
	est *estimate.Estimator
}

// NewWindowHandler creates a new window handler
func NewWindowHandler(est *estimate.Estimator) *WindowHandler {
	return &WindowHandler{est: est}
}

// Resolve handles GET /api/v1/window
func (h *WindowHandler) Resolve(c *gin.Context) {
	var req models.WindowRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	now := h.est.Now()
	parsed := estimate.ParseForm(model.FormInput{Start: req.Start, Stop: req.Stop}, now)

	var resp models.WindowResponse
	switch src := parsed.Duration.(type) {
	case model.TimeWindow:
		resp.Start, resp.Stop = src.Start, window.StopInstant(src.Start, src.Stop)
	case model.StopTime:
		resp.Start, resp.Stop = now, window.StopInstant(now, src.Stop)
	}
	resp.Hours, resp.Available = window.Resolve(parsed.Duration, now)

	c.JSON(http.StatusOK, resp)
}
