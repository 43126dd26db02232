package domain

import "context"

// ServicePort is the analytics surface exposed to transports and other modules
type ServicePort interface {
	Series(ctx context.Context, in SeriesInput) ([]TimeSeriesPoint, error)
	Monthly(ctx context.Context) (MonthlyStatistics, error)
}
