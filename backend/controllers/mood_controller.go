package controllers

import (
	"errors"
	"time"

	"momentum/backend/config"
	"momentum/backend/models"
	"momentum/backend/progress"
	"momentum/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MoodController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Engine *progress.Service
}

func NewMoodController(db *gorm.DB, cfg *config.Config, engine *progress.Service) *MoodController {
	return &MoodController{DB: db, Cfg: cfg, Engine: engine}
}

func (mc *MoodController) today() string {
	return mc.Engine.Now().In(mc.Engine.Loc).Format("2006-01-02")
}

type MoodInput struct {
	MoodID string `json:"mood_id"`
	Date   string `json:"date"`
}

// CreateOrUpdateMood godoc
// @Summary Save mood
// @Description Creates or replaces the mood entry for a date (defaults to today)
// @Tags mood
// @Accept json
// @Produce json
// @Param body body MoodInput true "Mood data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /mood [post]
func (mc *MoodController) CreateOrUpdateMood(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, mc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input MoodInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.MoodID == "" {
		return utils.BadRequest(c, "mood_id is required")
	}

	date := input.Date
	if date == "" {
		date = mc.today()
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return utils.BadRequest(c, "date must be in YYYY-MM-DD format")
	}

	entry := models.MoodEntry{
		UserID: userID,
		MoodID: input.MoodID,
		Date:   date,
	}
	if err := mc.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"mood_id":    input.MoodID,
			"updated_at": mc.Engine.Now(),
		}),
	}).Create(&entry).Error; err != nil {
		return utils.InternalServerError(c, "Could not save mood entry")
	}

	return c.JSON(fiber.Map{
		"message": "Mood entry saved",
		"mood":    entry,
	})
}

// GetTodayMood godoc
// @Summary Get today's mood
// @Tags mood
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /mood [get]
func (mc *MoodController) GetTodayMood(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, mc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	return mc.respondWithMood(c, userID, mc.today())
}

// GetMoodByDate godoc
// @Summary Get mood for a date
// @Tags mood
// @Produce json
// @Param date path string true "Date in YYYY-MM-DD format"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /mood/{date} [get]
func (mc *MoodController) GetMoodByDate(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, mc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	date := c.Params("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return utils.BadRequest(c, "date must be in YYYY-MM-DD format")
	}

	return mc.respondWithMood(c, userID, date)
}

func (mc *MoodController) respondWithMood(c *fiber.Ctx, userID uint, date string) error {
	var entry models.MoodEntry
	err := mc.DB.Where("user_id = ? AND date = ?", userID, date).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(fiber.Map{"mood": nil})
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not query mood entry")
	}
	return c.JSON(fiber.Map{"mood": entry})
}
