package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"ev-charge-estimator/internal/api/middleware"
	"ev-charge-estimator/internal/api/models"
	"ev-charge-estimator/internal/config"
	"ev-charge-estimator/internal/estimate"
	"ev-charge-estimator/internal/metrics"
	"ev-charge-estimator/internal/model"
)

// EstimateHandler handles estimate requests
type EstimateHandler struct {
	est        *estimate.Estimator
	vehicle    config.VehicleConfig
	sweepHours []float64
	metrics    *metrics.Recorder
	log        zerolog.Logger
}

// NewEstimateHandler creates a new estimate handler
func NewEstimateHandler(est *estimate.Estimator, cfg *config.Config, rec *metrics.Recorder, log zerolog.Logger) *EstimateHandler {
	return &EstimateHandler{
		est:        est,
		vehicle:    cfg.Vehicle,
		sweepHours: cfg.Estimate.SweepHours,
		metrics:    rec,
		log:        log,
	}
}

// Estimate handles GET and POST /api/v1/estimate.
// Unreadable field values are not an error: they give the zero result.
func (h *EstimateHandler) Estimate(c *gin.Context) {
	var req models.EstimateRequest
	var err error
	if c.Request.Method == http.MethodGet {
		err = c.ShouldBindQuery(&req)
	} else {
		err = c.ShouldBindJSON(&req)
	}
	if err != nil {
		invalidRequest(c, err)
		return
	}

	parsed, res := h.est.EstimateForm(req.FormInput(h.vehicle.CapacityKWh))
	h.metrics.RecordEstimate(res)
	if res.IsPlaceholder() {
		h.log.Debug().Str("request_id", middleware.GetRequestID(c)).Msg("estimate input incomplete, returning zero result")
	}

	c.JSON(http.StatusOK, toEstimateResponse(middleware.GetRequestID(c), parsed, res))
}

// Sweep handles POST /api/v1/estimate/sweep. ?format=csv returns text/csv.
func (h *EstimateHandler) Sweep(c *gin.Context) {
	var req models.SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}
	hours := req.HoursList
	if len(hours) == 0 {
		hours = h.sweepHours
	}

	parsed := estimate.ParseForm(req.FormInput(h.vehicle.CapacityKWh), h.est.Now())
	rows := estimate.Sweep(parsed, hours)

	if c.Query("format") == "csv" {
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", `attachment; filename="sweep.csv"`)
		c.Status(http.StatusOK)
		if err := estimate.WriteSweepCSV(c.Writer, rows); err != nil {
			h.log.Error().Err(err).Msg("write sweep csv")
		}
		return
	}

	resp := models.SweepResponse{
		ID:   middleware.GetRequestID(c),
		Rows: make([]models.SweepRow, 0, len(rows)),
	}
	for _, r := range rows {
		resp.Rows = append(resp.Rows, models.SweepRow{
			Index:              r.Index,
			Hours:              r.Hours,
			EnergyToDeliverKWh: r.EnergyToDeliverKWh,
			AveragePowerKW:     r.AveragePowerKW,
			Direction:          string(r.Direction),
		})
	}
	c.JSON(http.StatusOK, resp)
}

func toEstimateResponse(id string, req model.ChargeRequest, res model.ChargeResult) models.EstimateResponse {
	warnings := []string{}
	for _, w := range estimate.Check(req, res) {
		warnings = append(warnings, string(w))
	}
	return models.EstimateResponse{
		ID:                 id,
		EnergyToDeliverKWh: res.EnergyToDeliverKWh,
		AveragePowerKW:     res.AveragePowerKW,
		DurationHours:      res.DurationHours,
		DurationAvailable:  res.DurationAvailable,
		Direction:          string(res.Direction()),
		Display:            estimate.DisplayOf(res),
		Warnings:           warnings,
	}
}

func invalidRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		},
	})
}
