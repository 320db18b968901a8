package models

import "time"

// WorkoutPlan stores the AI-generated plan. One plan per user; regenerating
// replaces the previous plan.
type WorkoutPlan struct {
	ID           string `gorm:"primaryKey"`
	UserID       uint   `gorm:"not null;uniqueIndex"`
	Goal         string `gorm:"not null"`
	FitnessLevel string `gorm:"not null"` // beginner, intermediate, advanced
	Frequency    int    `gorm:"not null"` // days per week, 1-7
	PlanData     string `gorm:"type:jsonb;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ExerciseCompletion records one completed exercise. A user completes each
// exercise at most once per level per plan; re-submitting edits the reps.
type ExerciseCompletion struct {
	ID            string    `gorm:"primaryKey"`
	UserID        uint      `gorm:"not null;uniqueIndex:uidx_completion"`
	PlanID        string    `gorm:"not null;uniqueIndex:uidx_completion"`
	LevelNumber   int       `gorm:"not null;uniqueIndex:uidx_completion"`
	ExerciseName  string    `gorm:"not null;uniqueIndex:uidx_completion"`
	PlannedSets   int       `gorm:"not null"`
	PlannedReps   int       `gorm:"not null"`
	CompletedSets int       `gorm:"not null"`
	CompletedReps int       `gorm:"not null"`
	CompletedAt   time.Time `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
