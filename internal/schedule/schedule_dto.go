package schedule

type ScheduleItem struct {
	UserID    string  `json:"userId" binding:"required,uuid"`
	DayOfWeek int     `json:"dayOfWeek"`
	Hours     float64 `json:"hours"`
}

type SetSchedulesRequest struct {
	Items []ScheduleItem `json:"items" binding:"required,dive"`
}

// EmployeeScheduleRow is one grid row: seven slots indexed by calendar
// weekday, Sunday first.
type EmployeeScheduleRow struct {
	UserID   string     `json:"userId"`
	Name     string     `json:"name"`
	ByDay    [7]float64 `json:"byDay"`
	IsActive bool       `json:"isActive"`
}
