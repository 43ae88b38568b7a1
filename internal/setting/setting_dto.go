package setting

type SettingsResponse struct {
	WeekStartDay    int    `json:"weekStartDay"`
	Timezone        string `json:"timezone"`
	ReportRecipient string `json:"reportRecipient"`
	ReportBody      string `json:"reportBody"`
}

type UpdateWeekStartRequest struct {
	WeekStartDay *int `json:"weekStartDay" binding:"required"`
}

type UpdateTimezoneRequest struct {
	Timezone string `json:"timezone"`
}

type UpdateReportTemplateRequest struct {
	Recipient string `json:"recipient"`
	Body      string `json:"body"`
}
