package utils

import (
	"fmt"

	"momentum/backend/models"
)

// WorkoutStatistics summarizes how far a user has progressed through their
// workout plan.
type WorkoutStatistics struct {
	GoalCompletionPercentage int `json:"goalCompletionPercentage"`
	TotalExercises           int `json:"totalExercises"`
	CompletedExercises       int `json:"completedExercises"`
	CurrentLevel             int `json:"currentLevel"`
}

// CalculateWorkoutStatistics counts unique completed (level, exercise) pairs
// against the plan, so repeating an exercise never inflates the percentage.
func CalculateWorkoutStatistics(plan *WorkoutPlanData, completions []models.ExerciseCompletion) WorkoutStatistics {
	total := 0
	for _, level := range plan.Levels {
		total += len(level.Exercises)
	}

	unique := make(map[string]bool, len(completions))
	currentLevel := 0
	for _, c := range completions {
		unique[fmt.Sprintf("%d-%s", c.LevelNumber, c.ExerciseName)] = true
		if c.LevelNumber > currentLevel {
			currentLevel = c.LevelNumber
		}
	}

	percentage := 0
	if total > 0 {
		percentage = len(unique) * 100 / total
		if percentage > 100 {
			percentage = 100
		}
	}

	return WorkoutStatistics{
		GoalCompletionPercentage: percentage,
		TotalExercises:           total,
		CompletedExercises:       len(unique),
		CurrentLevel:             currentLevel,
	}
}
