package routes

import (
	"github.com/kwameasante/study_planner/handlers"
	"github.com/kwameasante/study_planner/middleware"
	"github.com/gofiber/fiber/v2"
)

func QuizRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	quiz := api.Group("/quiz", middleware.Protected())
	quiz.Post("/get-weekly-quiz", handlers.GetWeeklyQuiz)
	quiz.Post("/validate-quiz", handlers.ValidateQuiz)
}
