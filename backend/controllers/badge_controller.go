package controllers

import (
	"time"

	"momentum/backend/badges"
	"momentum/backend/config"
	"momentum/backend/models"
	"momentum/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BadgeController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewBadgeController(db *gorm.DB, cfg *config.Config) *BadgeController {
	return &BadgeController{DB: db, Cfg: cfg}
}

// GetUserBadges godoc
// @Summary List badges
// @Description Returns the full catalog with the caller's earned state and progress
// @Tags badges
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /badges [get]
func (bc *BadgeController) GetUserBadges(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, bc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var rows []models.UserBadge
	if err := bc.DB.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return utils.InternalServerError(c, "Could not query badges")
	}
	earnedAt := make(map[string]time.Time, len(rows))
	for _, r := range rows {
		earnedAt[r.BadgeID] = r.EarnedAt
	}

	progress, err := badges.UserProgress(bc.DB, userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query badge progress")
	}

	result := make([]fiber.Map, 0, len(badges.All))
	for _, badge := range badges.All {
		item := fiber.Map{
			"id":          badge.ID,
			"name":        badge.Name,
			"description": badge.Description,
			"icon":        badge.Icon,
			"earned":      false,
		}
		if at, ok := earnedAt[badge.ID]; ok {
			item["earned"] = true
			item["earned_at"] = at
		}

		switch badge.CriteriaType {
		case badges.WorkoutCount:
			item["progress"] = progress.WorkoutCount
			item["target"] = badge.CriteriaValue
		case badges.TotalReps:
			item["progress"] = progress.TotalReps
			item["target"] = badge.CriteriaValue
		}

		result = append(result, item)
	}

	return c.JSON(fiber.Map{
		"badges": result,
	})
}
