package setting

import "time"

// Known keys. Values are free-form strings; typed accessors live on Service.
const (
	KeyWeekStartDay    = "week_start_day"
	KeyTimezone        = "timezone"
	KeyReportRecipient = "report_recipient"
	KeyReportBody      = "report_body"
)

type Setting struct {
	Key       string    `gorm:"column:key;type:varchar(64);primaryKey"`
	Value     string    `gorm:"column:value;type:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}
