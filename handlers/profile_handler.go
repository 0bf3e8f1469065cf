package handlers

import (
	"github.com/kwameasante/study_planner/database"
	"github.com/kwameasante/study_planner/models"
	"github.com/gofiber/fiber/v2"
)

type UpdateProfileRequest struct {
	FullName       *string `json:"full_name"`
	SelectedCourse *string `json:"selected_course"`
}

func GetProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var quizHistory []models.QuizAttempt
	database.DB.Where("user_id = ?", userID).
		Order("completed_at desc").
		Find(&quizHistory)

	return c.JSON(fiber.Map{
		"user":          user,
		"quizzes_taken": len(quizHistory),
		"quiz_history":  quizHistory,
	})
}

func UpdateProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.SelectedCourse != nil {
		user.SelectedCourse = req.SelectedCourse
	}

	database.DB.Save(&user)

	return c.JSON(user)
}
