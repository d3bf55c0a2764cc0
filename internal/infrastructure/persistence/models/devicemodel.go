package models

import (
	"time"

	"gorm.io/gorm"
)

// DeviceModel represents the database persistence model for devices.
// DeletedAt enables soft deletes; deleted rows stay in the table but are
// excluded from all queries through the default GORM scope.
type DeviceModel struct {
	ID           uint      `gorm:"primarykey"`
	UserID       uint      `gorm:"not null;index"`
	Name         string    `gorm:"size:255;not null"`
	Location     string    `gorm:"size:255;not null"`
	PurchaseDate time.Time `gorm:"not null;index"`
	InUse        bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (DeviceModel) TableName() string {
	return "devices"
}
