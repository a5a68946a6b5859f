package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDeviceModel is the GORM-specific struct for the 'user_devices' table.
// It represents a user's device registered for check-in confirmations.
type UserDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    string    `gorm:"type:varchar(64);not null;uniqueIndex:ux_user_devices_user_device"`
	DeviceID  string    `gorm:"type:varchar(255);not null;uniqueIndex:ux_user_devices_user_device"`
	PushToken string    `gorm:"type:varchar(255);not null"`
	Platform  string    `gorm:"type:varchar(50);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserDeviceModel) TableName() string {
	return "user_devices"
}
