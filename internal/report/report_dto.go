package report

import "time"

// ReportRow holds one employee's week. Day slots are indexed by offset
// from the configured week-start day, not by calendar weekday.
type ReportRow struct {
	UserID         string     `json:"userId"`
	Name           string     `json:"name"`
	TotalHours     float64    `json:"totalHours"`
	ScheduledTotal float64    `json:"scheduledTotal"`
	ActualByDay    [7]float64 `json:"actualByDay"`
	ScheduledByDay [7]float64 `json:"scheduledByDay"`
	EstimatedPay   *float64   `json:"estimatedPay,omitempty"`
}

type WeeklyReportResponse struct {
	WeekStart    time.Time   `json:"weekStart"`
	WeekEnd      time.Time   `json:"weekEnd"`
	WeekStartDay int         `json:"weekStartDay"`
	Timezone     string      `json:"timezone"`
	Rows         []ReportRow `json:"rows"`
}
