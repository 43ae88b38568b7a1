package app

import (
	"go-timeclock/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// seedUsers creates the demo accounts on an empty database so the clock
// pad works on first boot. Existing data is left alone.
func seedUsers(db *gorm.DB, logger *zap.Logger) error {
	var count int64
	if err := db.Model(&user.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	users := []user.User{
		{
			ID:       uuid.New(),
			Name:     "Admin",
			Role:     user.RoleAdmin,
			PinCode:  "1234",
			IsActive: true,
		},
		{
			ID:       uuid.New(),
			Name:     "Jane Employee",
			Role:     user.RoleEmployee,
			PinCode:  "5678",
			IsActive: true,
		},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	logger.Info("seeded demo users", zap.Int("count", len(users)))
	return nil
}
