package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/kwameasante/study_planner/database"
	"github.com/kwameasante/study_planner/models"
	"github.com/kwameasante/study_planner/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Questions drawn per weekly quiz.
const weeklyQuizSize = 10

type WeeklyQuizRequest struct {
	WeekStartDate string `json:"week_start_date"`
}

// PublicQuestion is what a student sees before submitting: no correct
// answer, no calculation hint.
type PublicQuestion struct {
	ID       uuid.UUID `json:"id"`
	Subject  string    `json:"subject"`
	Question string    `json:"question"`
	OptionA  string    `json:"option_a"`
	OptionB  string    `json:"option_b"`
	OptionC  string    `json:"option_c"`
	OptionD  string    `json:"option_d"`
}

func GetWeeklyQuiz(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req WeeklyQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	drawn := services.DrawWeeklyQuestions(database.DB, models.QuizSubjects, weeklyQuizSize)

	questions := make([]PublicQuestion, len(drawn))
	for i, q := range drawn {
		questions[i] = PublicQuestion{
			ID:       q.ID,
			Subject:  q.Subject,
			Question: q.Question,
			OptionA:  q.OptionA,
			OptionB:  q.OptionB,
			OptionC:  q.OptionC,
			OptionD:  q.OptionD,
		}
	}

	var existing models.QuizAttempt
	var attempt *models.QuizAttempt
	err = database.DB.Where("user_id = ? AND week_start_date = ?", userID, req.WeekStartDate).
		First(&existing).Error
	if err == nil {
		attempt = &existing
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Error checking quiz attempt for user %s: %v", userID, err)
	}

	return c.JSON(fiber.Map{
		"questions":     questions,
		"has_attempted": attempt != nil,
		"attempt":       attempt,
	})
}

type SubmittedAnswer struct {
	QuestionID     string `json:"question_id"`
	SelectedAnswer string `json:"selected_answer"`
}

type ValidateQuizRequest struct {
	QuestionIDs   []string          `json:"question_ids" validate:"required,min=1"`
	Answers       []SubmittedAnswer `json:"answers" validate:"required,min=1"`
	WeekStartDate string            `json:"week_start_date"`
}

func ValidateQuiz(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req ValidateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// The only read of ground truth, strictly after auth and validation.
	var questions []models.QuizQuestion
	if err := database.DB.Select("id", "correct_answer").
		Where("id IN ?", req.QuestionIDs).Find(&questions).Error; err != nil {
		log.Printf("Error fetching correct answers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch questions"})
	}

	correctAnswers := make(map[string]string, len(questions))
	for _, q := range questions {
		correctAnswers[q.ID.String()] = q.CorrectAnswer
	}

	// Answers for ids outside the fetched mapping score zero, silently.
	score := 0
	for _, answer := range req.Answers {
		if correct, ok := correctAnswers[answer.QuestionID]; ok && correct == answer.SelectedAnswer {
			score++
		}
	}

	questionIDsJSON, _ := json.Marshal(req.QuestionIDs)
	answersJSON, _ := json.Marshal(req.Answers)

	attempt := models.QuizAttempt{
		ID:            uuid.New(),
		UserID:        userID,
		WeekStartDate: req.WeekStartDate,
		QuestionIDs:   questionIDsJSON,
		Answers:       answersJSON,
		Score:         score,
		CompletedAt:   time.Now(),
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "week_start_date"}},
			DoUpdates: clause.AssignmentColumns([]string{"question_ids", "answers", "score", "completed_at"}),
		}).Create(&attempt).Error; err != nil {
			return err
		}
		// On conflict the stored row keeps its original id; read it back.
		return tx.Where("user_id = ? AND week_start_date = ?", userID, req.WeekStartDate).
			First(&attempt).Error
	})
	if err != nil {
		log.Printf("Error saving quiz attempt for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save quiz attempt"})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"score":      score,
		"total":      len(req.QuestionIDs),
		"attempt_id": attempt.ID,
	})
}
