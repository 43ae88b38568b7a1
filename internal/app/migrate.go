package app

import (
	"go-timeclock/internal/audit"
	"go-timeclock/internal/messaging/kafka"
	"go-timeclock/internal/schedule"
	"go-timeclock/internal/setting"
	"go-timeclock/internal/timeentry"
	"go-timeclock/internal/user"

	"gorm.io/gorm"
)

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&timeentry.TimeEntry{},
		&audit.AuditLog{},
		&schedule.Schedule{},
		&setting.Setting{},
		&kafka.OutboxEvent{},
	)
}
