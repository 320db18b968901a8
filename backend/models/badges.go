package models

import "time"

type UserBadge struct {
	UserID   uint      `gorm:"primaryKey"`
	BadgeID  string    `gorm:"primaryKey"`
	EarnedAt time.Time `gorm:"not null"`
}
