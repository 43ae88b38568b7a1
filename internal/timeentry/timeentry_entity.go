package timeentry

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// TimeEntry is one shift. A null clock_out_time means the shift is open.
// The partial unique index keeps the "at most one open shift per user"
// invariant in the storage layer, so concurrent clock-ins cannot both win.
type TimeEntry struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	UserID       uuid.UUID  `gorm:"column:user_id;type:uuid;not null;index;uniqueIndex:uq_open_entry_per_user,where:clock_out_time IS NULL"`
	ClockInTime  time.Time  `gorm:"column:clock_in_time;type:timestamptz;not null;index"`
	ClockOutTime *time.Time `gorm:"column:clock_out_time;type:timestamptz"`
	TotalHours   *float64   `gorm:"column:total_hours"`
	IsEdited     bool       `gorm:"column:is_edited;not null;default:false"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
	User         *UserRef   `gorm:"foreignKey:UserID;references:ID"`
}

func (TimeEntry) TableName() string {
	return "time_entries"
}

type UserRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (UserRef) TableName() string {
	return "users"
}

// RoundHours rounds elapsed hours to 2 decimal places, the precision
// total_hours is stored with.
func RoundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}
