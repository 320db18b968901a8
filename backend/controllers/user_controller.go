package controllers

import (
	"encoding/json"
	"errors"

	"momentum/backend/config"
	"momentum/backend/models"
	"momentum/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewUserController(db *gorm.DB, cfg *config.Config) *UserController {
	return &UserController{DB: db, Cfg: cfg}
}

// GetProfile godoc
// @Summary Get own profile
// @Tags user
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [get]
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, uc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalServerError(c, "Could not query user")
	}

	return c.JSON(fiber.Map{
		"user": fiber.Map{
			"id":         user.ID,
			"username":   user.Username,
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"avatar_url": user.AvatarURL,
			"created_at": user.CreatedAt,
		},
	})
}

type UpdateProfileInput struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	AvatarURL *string `json:"avatar_url"`
}

// UpdateProfile godoc
// @Summary Update own profile
// @Description Updates the fields present in the request body
// @Tags user
// @Accept json
// @Produce json
// @Param body body UpdateProfileInput true "Profile fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [put]
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, uc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	updates := map[string]interface{}{}
	if input.FirstName != nil {
		updates["first_name"] = *input.FirstName
	}
	if input.LastName != nil {
		updates["last_name"] = *input.LastName
	}
	if input.AvatarURL != nil {
		updates["avatar_url"] = *input.AvatarURL
	}
	if len(updates) == 0 {
		return utils.BadRequest(c, "Nothing to update")
	}

	if err := uc.DB.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		return utils.InternalServerError(c, "Could not update profile")
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated",
	})
}

// GetStatistics godoc
// @Summary Get own statistics
// @Description Returns journal and exercise streaks plus workout plan progress
// @Tags user
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/statistics [get]
func (uc *UserController) GetStatistics(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, uc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var stats models.UserStatistics
	err = uc.DB.Where("user_id = ?", userID).First(&stats).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.InternalServerError(c, "Could not query statistics")
	}

	payload := fiber.Map{
		"current_streak":          stats.CurrentStreak,
		"longest_streak":          stats.LongestStreak,
		"exercise_current_streak": stats.ExerciseCurrentStreak,
		"exercise_longest_streak": stats.ExerciseLongestStreak,
	}

	var totalEntries int64
	if err := uc.DB.Model(&models.DailyProgressEntry{}).
		Where("user_id = ?", userID).
		Count(&totalEntries).Error; err != nil {
		return utils.InternalServerError(c, "Could not query progress entries")
	}
	payload["total_entries"] = totalEntries

	var completedWeeks int64
	if err := uc.DB.Model(&models.WeekProgress{}).
		Where("user_id = ? AND completed_at IS NOT NULL", userID).
		Count(&completedWeeks).Error; err != nil {
		return utils.InternalServerError(c, "Could not query week progress")
	}
	payload["completed_weeks"] = completedWeeks

	var plan models.WorkoutPlan
	err = uc.DB.Where("user_id = ?", userID).First(&plan).Error
	if err == nil {
		var planData utils.WorkoutPlanData
		if err := json.Unmarshal([]byte(plan.PlanData), &planData); err != nil {
			return utils.InternalServerError(c, "Could not decode workout plan")
		}
		var completions []models.ExerciseCompletion
		if err := uc.DB.Where("user_id = ? AND plan_id = ?", userID, plan.ID).
			Find(&completions).Error; err != nil {
			return utils.InternalServerError(c, "Could not query completions")
		}
		payload["workout"] = utils.CalculateWorkoutStatistics(&planData, completions)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.InternalServerError(c, "Could not query workout plan")
	}

	return c.JSON(payload)
}
