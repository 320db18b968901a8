package routes

import (
	"momentum/backend/config"
	"momentum/backend/controllers"
	"momentum/backend/middleware"
	"momentum/backend/progress"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, engine *progress.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)

	// User routes
	userController := controllers.NewUserController(db, cfg)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)
	app.Put("/api/user/profile", authMiddleware, userController.UpdateProfile)
	app.Get("/api/user/statistics", authMiddleware, userController.GetStatistics)

	// Challenge routes
	challengeController := controllers.NewChallengeController(db, cfg, engine)
	challenges := app.Group("/api/challenges", authMiddleware)
	challenges.Get("/", challengeController.GetAllWeeks)
	challenges.Get("/:weekId", challengeController.GetWeek)
	challenges.Get("/:weekId/:dayNumber", challengeController.GetDay)
	challenges.Post("/:weekId/:dayNumber", challengeController.SubmitDailyProgress)

	// Mood routes
	moodController := controllers.NewMoodController(db, cfg, engine)
	mood := app.Group("/api/mood", authMiddleware)
	mood.Post("/", moodController.CreateOrUpdateMood)
	mood.Get("/", moodController.GetTodayMood)
	mood.Get("/:date", moodController.GetMoodByDate)

	// Exercise routes
	exerciseController := controllers.NewExerciseController(db, cfg, engine)
	exercise := app.Group("/api/exercise", authMiddleware)
	exercise.Post("/plan", exerciseController.GenerateWorkoutPlan)
	exercise.Get("/plan", exerciseController.GetWorkoutPlan)
	exercise.Post("/", exerciseController.LogCompletion)
	exercise.Get("/", exerciseController.GetTodayCompletions)
	exercise.Get("/:date", exerciseController.GetCompletionsByDate)

	// Badge routes
	badgeController := controllers.NewBadgeController(db, cfg)
	app.Get("/api/badges", authMiddleware, badgeController.GetUserBadges)
}
