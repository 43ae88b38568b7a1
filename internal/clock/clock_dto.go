package clock

type PunchRequest struct {
	PinCode string `json:"pin_code" binding:"required,numeric,min=4,max=8"`
	// UserID selects the employee-selector flow; without it the PIN alone
	// resolves the user.
	UserID string `json:"user_id"`
}

type UserSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type OpenEntry struct {
	ID          string `json:"id"`
	ClockInTime string `json:"clock_in_time"`
}

type StatusResponse struct {
	User        UserSummary `json:"user"`
	ActiveEntry *OpenEntry  `json:"active_entry"`
}

type PunchResponse struct {
	EntryID      string   `json:"entry_id"`
	ClockInTime  string   `json:"clock_in_time"`
	ClockOutTime *string  `json:"clock_out_time,omitempty"`
	TotalHours   *float64 `json:"total_hours,omitempty"`
}
