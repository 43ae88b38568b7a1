package timesheet

type EditEntryRequest struct {
	ClockInTime string `json:"clock_in_time" binding:"required"`
	// Absent clock-out reopens the shift: total_hours goes back to null.
	ClockOutTime *string `json:"clock_out_time"`
}

type EntryResponse struct {
	ID           string   `json:"id"`
	UserID       string   `json:"user_id"`
	UserName     string   `json:"user_name,omitempty"`
	ClockInTime  string   `json:"clock_in_time"`
	ClockOutTime *string  `json:"clock_out_time,omitempty"`
	TotalHours   *float64 `json:"total_hours,omitempty"`
	IsEdited     bool     `json:"is_edited"`
}

type AuditResponse struct {
	ID               string  `json:"id"`
	TimeEntryID      string  `json:"time_entry_id"`
	EditedByUserID   string  `json:"edited_by_user_id"`
	EditedByName     string  `json:"edited_by_name,omitempty"`
	EditedAt         string  `json:"edited_at"`
	PreviousClockIn  string  `json:"previous_clock_in"`
	PreviousClockOut *string `json:"previous_clock_out,omitempty"`
}
