package models

import (
	"time"

	"gorm.io/gorm"
)

// DailyProgressEntry is one journal entry per (user, week, day).
// Re-logging the same day updates Notes instead of inserting a duplicate.
type DailyProgressEntry struct {
	gorm.Model
	UserID    uint   `gorm:"not null;uniqueIndex:uidx_user_week_day"`
	WeekID    int    `gorm:"not null;uniqueIndex:uidx_user_week_day"`
	DayNumber int    `gorm:"not null;uniqueIndex:uidx_user_week_day"`
	Notes     string `gorm:"type:text"`
}

// UserStatistics holds at most one row per user. The journal streak pair
// and the exercise streak pair are tracked independently.
type UserStatistics struct {
	UserID                uint `gorm:"primaryKey"`
	CurrentStreak         int  `gorm:"not null;default:0"`
	LongestStreak         int  `gorm:"not null;default:0"`
	LastLogDate           time.Time
	ExerciseCurrentStreak int `gorm:"not null;default:0"`
	ExerciseLongestStreak int `gorm:"not null;default:0"`
	LastExerciseDate      time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// WeekProgress tracks per-user unlock and completion of a challenge week.
// CompletedAt stays nil until every day of the week has been logged.
type WeekProgress struct {
	gorm.Model
	UserID        uint `gorm:"not null;uniqueIndex:uidx_user_week"`
	WeekID        int  `gorm:"not null;uniqueIndex:uidx_user_week"`
	DaysCompleted int  `gorm:"not null;default:0"`
	StartedAt     time.Time
	CompletedAt   *time.Time
	UnlockedAt    time.Time
}
