package utils

import (
	"fmt"

	"momentum/backend/config"
	"momentum/backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(AllModels()...); err != nil {
		return nil, err
	}

	return db, nil
}

// AllModels lists every persisted entity, for migrations in both the server
// and the test setup.
func AllModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.DailyProgressEntry{},
		&models.UserStatistics{},
		&models.WeekProgress{},
		&models.MoodEntry{},
		&models.WorkoutPlan{},
		&models.ExerciseCompletion{},
		&models.UserBadge{},
	}
}
