package models

import "gorm.io/gorm"

// MoodEntry is one mood log per (user, date). Date is a YYYY-MM-DD string
// so the unique key never depends on time-of-day.
type MoodEntry struct {
	gorm.Model
	UserID uint   `gorm:"not null;uniqueIndex:uidx_user_mood_date"`
	MoodID string `gorm:"not null"`
	Date   string `gorm:"type:date;not null;uniqueIndex:uidx_user_mood_date"`
}
