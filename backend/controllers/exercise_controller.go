package controllers

import (
	"encoding/json"
	"errors"
	"time"

	"momentum/backend/badges"
	"momentum/backend/config"
	"momentum/backend/models"
	"momentum/backend/progress"
	"momentum/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ExerciseController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Engine *progress.Service
}

func NewExerciseController(db *gorm.DB, cfg *config.Config, engine *progress.Service) *ExerciseController {
	return &ExerciseController{DB: db, Cfg: cfg, Engine: engine}
}

type GeneratePlanInput struct {
	Goal         string `json:"goal"`
	FitnessLevel string `json:"fitness_level"`
	Frequency    int    `json:"frequency"`
}

func validFitnessLevel(level string) bool {
	switch level {
	case "beginner", "intermediate", "advanced":
		return true
	}
	return false
}

// GenerateWorkoutPlan godoc
// @Summary Generate a workout plan
// @Description Generates a 5-level plan with AI and stores it, replacing any previous plan
// @Tags exercise
// @Accept json
// @Produce json
// @Param body body GeneratePlanInput true "Plan parameters"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /exercise/plan [post]
func (ec *ExerciseController) GenerateWorkoutPlan(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ec.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input GeneratePlanInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Goal == "" {
		return utils.BadRequest(c, "goal is required")
	}
	if !validFitnessLevel(input.FitnessLevel) {
		return utils.BadRequest(c, "fitness_level must be beginner, intermediate or advanced")
	}
	if input.Frequency < 1 || input.Frequency > 7 {
		return utils.BadRequest(c, "frequency must be between 1 and 7 days per week")
	}

	planData, err := utils.GenerateWorkoutPlan(c.Context(), ec.Cfg, input.Goal, input.FitnessLevel, input.Frequency)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate workout plan")
	}
	raw, err := json.Marshal(planData)
	if err != nil {
		return utils.InternalServerError(c, "Could not encode workout plan")
	}

	plan := models.WorkoutPlan{
		ID:           uuid.NewString(),
		UserID:       userID,
		Goal:         input.Goal,
		FitnessLevel: input.FitnessLevel,
		Frequency:    input.Frequency,
		PlanData:     string(raw),
	}

	// One plan per user: regenerating replaces the old plan and its history.
	err = ec.DB.Transaction(func(tx *gorm.DB) error {
		var old models.WorkoutPlan
		err := tx.Where("user_id = ?", userID).First(&old).Error
		if err == nil {
			if err := tx.Where("plan_id = ?", old.ID).Delete(&models.ExerciseCompletion{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&old).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&plan).Error
	})
	if err != nil {
		return utils.InternalServerError(c, "Could not store workout plan")
	}

	return c.JSON(fiber.Map{
		"message": "Workout plan generated",
		"plan": fiber.Map{
			"id":            plan.ID,
			"goal":          plan.Goal,
			"fitness_level": plan.FitnessLevel,
			"frequency":     plan.Frequency,
			"plan_data":     planData,
		},
	})
}

// GetWorkoutPlan godoc
// @Summary Get the stored workout plan
// @Tags exercise
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /exercise/plan [get]
func (ec *ExerciseController) GetWorkoutPlan(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ec.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var plan models.WorkoutPlan
	if err := ec.DB.Where("user_id = ?", userID).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "No workout plan found")
		}
		return utils.InternalServerError(c, "Could not query workout plan")
	}

	var planData utils.WorkoutPlanData
	if err := json.Unmarshal([]byte(plan.PlanData), &planData); err != nil {
		return utils.InternalServerError(c, "Could not decode workout plan")
	}

	return c.JSON(fiber.Map{
		"plan": fiber.Map{
			"id":            plan.ID,
			"goal":          plan.Goal,
			"fitness_level": plan.FitnessLevel,
			"frequency":     plan.Frequency,
			"plan_data":     planData,
		},
	})
}

type LogCompletionInput struct {
	LevelNumber   int    `json:"level_number"`
	ExerciseName  string `json:"exercise_name"`
	CompletedSets int    `json:"completed_sets"`
	CompletedReps int    `json:"completed_reps"`
}

// LogCompletion godoc
// @Summary Log an exercise completion
// @Description Records a completed exercise, updates the exercise streak and checks badges
// @Tags exercise
// @Accept json
// @Produce json
// @Param body body LogCompletionInput true "Completion data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /exercise [post]
func (ec *ExerciseController) LogCompletion(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ec.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input LogCompletionInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.ExerciseName == "" {
		return utils.BadRequest(c, "exercise_name is required")
	}
	if input.CompletedSets < 0 || input.CompletedReps < 0 {
		return utils.BadRequest(c, "completed_sets and completed_reps must not be negative")
	}

	var plan models.WorkoutPlan
	if err := ec.DB.Where("user_id = ?", userID).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "No workout plan found")
		}
		return utils.InternalServerError(c, "Could not query workout plan")
	}

	var planData utils.WorkoutPlanData
	if err := json.Unmarshal([]byte(plan.PlanData), &planData); err != nil {
		return utils.InternalServerError(c, "Could not decode workout plan")
	}

	planned, ok := findPlannedExercise(&planData, input.LevelNumber, input.ExerciseName)
	if !ok {
		return utils.BadRequest(c, "Exercise not found at that level of the plan")
	}

	now := ec.Engine.Now()
	completion := models.ExerciseCompletion{
		ID:            uuid.NewString(),
		UserID:        userID,
		PlanID:        plan.ID,
		LevelNumber:   input.LevelNumber,
		ExerciseName:  input.ExerciseName,
		PlannedSets:   planned.Sets,
		PlannedReps:   planned.Reps,
		CompletedSets: input.CompletedSets,
		CompletedReps: input.CompletedReps,
		CompletedAt:   now,
	}

	var newBadges []string
	err = ec.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"}, {Name: "plan_id"}, {Name: "level_number"}, {Name: "exercise_name"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"completed_sets": input.CompletedSets,
				"completed_reps": input.CompletedReps,
				"completed_at":   now,
				"updated_at":     now,
			}),
		}).Create(&completion).Error; err != nil {
			return err
		}

		if err := ec.Engine.TouchExerciseStreak(tx, userID, now); err != nil {
			return err
		}

		earned, err := badges.CheckAndAward(tx, userID, now, ec.Engine.Loc)
		if err != nil {
			return err
		}
		newBadges = earned
		return nil
	})
	if err != nil {
		return utils.InternalServerError(c, "Could not log exercise completion")
	}

	return c.JSON(fiber.Map{
		"message":    "Exercise completion saved",
		"completion": completion,
		"new_badges": newBadges,
	})
}

// GetTodayCompletions godoc
// @Summary List today's completions
// @Tags exercise
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /exercise [get]
func (ec *ExerciseController) GetTodayCompletions(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ec.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	return ec.respondWithCompletions(c, userID, ec.Engine.Now())
}

// GetCompletionsByDate godoc
// @Summary List completions for a date
// @Tags exercise
// @Produce json
// @Param date path string true "Date in YYYY-MM-DD format"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /exercise/{date} [get]
func (ec *ExerciseController) GetCompletionsByDate(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ec.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	day, err := time.ParseInLocation("2006-01-02", c.Params("date"), ec.Engine.Loc)
	if err != nil {
		return utils.BadRequest(c, "date must be in YYYY-MM-DD format")
	}

	return ec.respondWithCompletions(c, userID, day)
}

func (ec *ExerciseController) respondWithCompletions(c *fiber.Ctx, userID uint, day time.Time) error {
	loc := ec.Engine.Loc
	start := time.Date(day.In(loc).Year(), day.In(loc).Month(), day.In(loc).Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)

	var completions []models.ExerciseCompletion
	if err := ec.DB.
		Where("user_id = ? AND completed_at >= ? AND completed_at < ?", userID, start, end).
		Order("completed_at").
		Find(&completions).Error; err != nil {
		return utils.InternalServerError(c, "Could not query completions")
	}

	return c.JSON(fiber.Map{
		"completions": completions,
	})
}

func findPlannedExercise(plan *utils.WorkoutPlanData, levelNumber int, name string) (utils.PlanExercise, bool) {
	for _, level := range plan.Levels {
		if level.LevelNumber != levelNumber {
			continue
		}
		for _, ex := range level.Exercises {
			if ex.Name == name {
				return ex, true
			}
		}
	}
	return utils.PlanExercise{}, false
}
