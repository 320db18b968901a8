package controllers

import (
	"momentum/backend/challenge"
	"momentum/backend/config"
	"momentum/backend/progress"
	"momentum/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ChallengeController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Engine *progress.Service
}

func NewChallengeController(db *gorm.DB, cfg *config.Config, engine *progress.Service) *ChallengeController {
	return &ChallengeController{DB: db, Cfg: cfg, Engine: engine}
}

// GetAllWeeks godoc
// @Summary List challenge weeks
// @Description Returns all weeks of the curriculum with the caller's unlock state
// @Tags challenges
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /challenges [get]
func (cc *ChallengeController) GetAllWeeks(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	weeks := challenge.Weeks()
	result := make([]fiber.Map, 0, len(weeks))
	for _, week := range weeks {
		unlocked, err := cc.Engine.IsWeekUnlocked(userID, week.ID)
		if err != nil {
			return utils.InternalServerError(c, "Could not query week progress")
		}
		result = append(result, fiber.Map{
			"id":       week.ID,
			"title":    week.Title,
			"theme":    week.Theme,
			"unlocked": unlocked,
		})
	}

	return c.JSON(fiber.Map{
		"weeks": result,
	})
}

// GetWeek godoc
// @Summary Get a challenge week
// @Description Returns the full definition of one week
// @Tags challenges
// @Produce json
// @Param weekId path int true "Week ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /challenges/{weekId} [get]
func (cc *ChallengeController) GetWeek(c *fiber.Ctx) error {
	weekID, err := c.ParamsInt("weekId")
	if err != nil || weekID < 1 {
		return utils.BadRequest(c, "weekId must be a positive integer")
	}

	week, ok := challenge.WeekByID(weekID)
	if !ok {
		return utils.NotFound(c, "Week not found")
	}

	return c.JSON(fiber.Map{
		"week": week,
	})
}

// GetDay godoc
// @Summary Get a daily challenge
// @Description Returns one day's challenge with its mantra and journaling prompt
// @Tags challenges
// @Produce json
// @Param weekId path int true "Week ID"
// @Param dayNumber path int true "Day number"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /challenges/{weekId}/{dayNumber} [get]
func (cc *ChallengeController) GetDay(c *fiber.Ctx) error {
	weekID, err := c.ParamsInt("weekId")
	if err != nil || weekID < 1 {
		return utils.BadRequest(c, "weekId must be a positive integer")
	}
	dayNumber, err := c.ParamsInt("dayNumber")
	if err != nil || dayNumber < 1 {
		return utils.BadRequest(c, "dayNumber must be a positive integer")
	}

	week, ok := challenge.WeekByID(weekID)
	if !ok {
		return utils.NotFound(c, "Week not found")
	}
	day, ok := challenge.DayChallenge(weekID, dayNumber)
	if !ok {
		return utils.NotFound(c, "Challenge not found")
	}

	payload := fiber.Map{
		"day":         dayNumber,
		"title":       week.Title,
		"description": week.Description,
		"challenge":   day,
	}
	if mantra, ok := challenge.DailyMantra(weekID, dayNumber); ok {
		payload["mantra"] = mantra
	}
	if prompt, ok := challenge.DailyPrompt(weekID, dayNumber); ok {
		payload["prompt"] = prompt
	}

	return c.JSON(payload)
}

type DailyProgressInput struct {
	Notes string `json:"notes"`
}

// SubmitDailyProgress godoc
// @Summary Log daily progress
// @Description Records the journal entry for a day, updates the streak and cascades week completion
// @Tags challenges
// @Accept json
// @Produce json
// @Param weekId path int true "Week ID"
// @Param dayNumber path int true "Day number"
// @Param body body DailyProgressInput false "Journal notes"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /challenges/{weekId}/{dayNumber} [post]
func (cc *ChallengeController) SubmitDailyProgress(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	weekID, err := c.ParamsInt("weekId")
	if err != nil || weekID < 1 {
		return utils.BadRequest(c, "weekId must be a positive integer")
	}
	dayNumber, err := c.ParamsInt("dayNumber")
	if err != nil || dayNumber < 1 {
		return utils.BadRequest(c, "dayNumber must be a positive integer")
	}

	var input DailyProgressInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return utils.BadRequest(c, "Cannot parse JSON")
		}
	}

	if err := cc.Engine.SubmitDailyProgress(userID, weekID, dayNumber, input.Notes); err != nil {
		return utils.InternalServerError(c, "Could not save progress")
	}

	return c.JSON(fiber.Map{
		"message": "Progress saved",
	})
}
