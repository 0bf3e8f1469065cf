package routes

import (
	"github.com/kwameasante/study_planner/handlers"
	"github.com/gofiber/fiber/v2"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/courses", handlers.ListCourses)
	api.Get("/courses/:courseId/subjects", handlers.GetCourseSubjects)
}
