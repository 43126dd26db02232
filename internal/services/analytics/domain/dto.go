// Package domain holds DTOs for analytics http and service contracts
package domain

// SeriesInput selects a trailing daily window, optionally for one subject
type SeriesInput struct {
	Days    int    `json:"days" validate:"required,min=1,max=3650" example:"7"`
	Subject string `json:"subject,omitempty" validate:"omitempty,min=1,max=200" example:"Jordan Reeves"`
}

// TimeSeriesPoint is one day's record count; days with no records still appear
type TimeSeriesPoint struct {
	Date  string `json:"date" example:"2025-08-01"`
	Count int64  `json:"count" example:"42"`
}

// MetricChange pairs a current month value with its month-over-month change
type MetricChange struct {
	Current   int64   `json:"current" example:"15"`
	Previous  int64   `json:"previous" example:"10"`
	ChangePct float64 `json:"change_pct" example:"50"`
}

// MonthlyStatistics summarizes the current calendar month against the previous one
type MonthlyStatistics struct {
	Month   string       `json:"month" example:"2025-08"`
	Posts   MetricChange `json:"posts"`
	Viewers MetricChange `json:"viewers"`
	Records MetricChange `json:"records"`
}
