package main

import (
	"log"
	"time"

	config "github.com/kwameasante/study_planner/configs"
	"github.com/kwameasante/study_planner/database"
	"github.com/kwameasante/study_planner/jobs"
	"github.com/kwameasante/study_planner/routes"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	database.ConnectDB()
	database.Migrate()

	c := cron.New()
	c.AddFunc("0 6 * * 1", jobs.LogWeeklyQuizSummary)
	go c.Start()
	log.Println("✅ Cron job for weekly quiz summary scheduled successfully.")

	app := fiber.New(fiber.Config{
		AppName:       "Study Planner",
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PATCH, OPTIONS",
		ExposeHeaders: "Content-Length",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.PublicRoutes(app)
	routes.AuthRoutes(app)
	routes.ProfileRoutes(app)
	routes.QuizRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	port := config.ConfigOr("PORT", "8080")
	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
