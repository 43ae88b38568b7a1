package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

type User struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name      string    `gorm:"column:name;type:varchar(120);not null"`
	Role      string    `gorm:"column:role;type:varchar(20);not null;default:EMPLOYEE"`
	PinCode   string    `gorm:"column:pin_code;type:varchar(8);not null;index"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true"`
	HourlyPay *float64  `gorm:"column:hourly_pay"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}
