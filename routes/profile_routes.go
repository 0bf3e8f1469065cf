package routes

import (
	"github.com/kwameasante/study_planner/handlers"
	"github.com/kwameasante/study_planner/middleware"
	"github.com/gofiber/fiber/v2"
)

func ProfileRoutes(app *fiber.App) {
	profile := app.Group("/api/v1/profile", middleware.Protected())

	profile.Get("", handlers.GetProfile)
	profile.Patch("", handlers.UpdateProfile)
}
