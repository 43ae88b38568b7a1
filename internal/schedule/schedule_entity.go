package schedule

import (
	"time"

	"github.com/google/uuid"
)

// Schedule holds the expected hours for one employee on one weekday
// (0 = Sunday .. 6 = Saturday). Zero hours means "no schedule"; rows are
// upserted, never deleted.
type Schedule struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_schedule_user_day"`
	DayOfWeek int       `gorm:"column:day_of_week;not null;uniqueIndex:uq_schedule_user_day"`
	Hours     float64   `gorm:"column:hours;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Schedule) TableName() string {
	return "schedules"
}
