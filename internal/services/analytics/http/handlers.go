// Package http provides http transport for analytics
package http

import (
	stdhttp "net/http"

	"viewlog/internal/modkit/httpkit"
	"viewlog/internal/services/analytics/domain"
	svc "viewlog/internal/services/analytics/service"
)

// Register mounts analytics endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// zero-filled daily record counts over a trailing window
	httpkit.PostJSON[domain.SeriesInput](r, "/series", h.series)

	// month-over-month summary for the dashboard
	httpkit.Get(r, "/monthly", h.monthly)
}

type handlers struct{ svc svc.Service }

// @Summary Daily record count series
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.SeriesInput true "Window"
// @Success 200 {array} domain.TimeSeriesPoint "ok"
// @Router /stats/series [post]
func (h *handlers) series(r *stdhttp.Request, in domain.SeriesInput) (any, error) {
	return h.svc.Series(r.Context(), in)
}

// @Summary Month-over-month statistics
// @Tags Stats
// @Produce json
// @Success 200 {object} domain.MonthlyStatistics "ok"
// @Router /stats/monthly [get]
func (h *handlers) monthly(r *stdhttp.Request) (any, error) {
	return h.svc.Monthly(r.Context())
}
