package models

import "time"

// SessionModel represents the database persistence model for sessions.
type SessionModel struct {
	ID         string    `gorm:"primarykey;size:64"`
	UserID     uint      `gorm:"not null;index"`
	TokenHash  string    `gorm:"size:64;not null;uniqueIndex"`
	ExpiresAt  time.Time `gorm:"not null;index"`
	LastUsedAt time.Time `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return "sessions"
}
