package module

import (
	"context"

	"viewlog/internal/services/analytics/domain"
	analyticssvc "viewlog/internal/services/analytics/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptServicePort struct{ svc analyticssvc.Service }

// Series returns the zero-filled daily record count series
func (a adaptServicePort) Series(ctx context.Context, in domain.SeriesInput) ([]domain.TimeSeriesPoint, error) {
	return a.svc.Series(ctx, in)
}

// Monthly returns month-over-month summary statistics
func (a adaptServicePort) Monthly(ctx context.Context) (domain.MonthlyStatistics, error) {
	return a.svc.Monthly(ctx)
}
