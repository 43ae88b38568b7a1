package audit

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog is append-only: exactly one row per manual edit, written in the
// same transaction as the overwrite it records.
type AuditLog struct {
	ID               uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	TimeEntryID      uuid.UUID  `gorm:"column:time_entry_id;type:uuid;not null;index"`
	EditedByUserID   uuid.UUID  `gorm:"column:edited_by_user_id;type:uuid;not null"`
	EditedAt         time.Time  `gorm:"column:edited_at;type:timestamptz;not null;index"`
	PreviousClockIn  time.Time  `gorm:"column:previous_clock_in;type:timestamptz;not null"`
	PreviousClockOut *time.Time `gorm:"column:previous_clock_out;type:timestamptz"`
	EditedByUser     *EditorRef `gorm:"foreignKey:EditedByUserID;references:ID"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

type EditorRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (EditorRef) TableName() string {
	return "users"
}
