package jobs

import (
	"log"
	"time"

	"github.com/kwameasante/study_planner/database"
	"github.com/kwameasante/study_planner/models"
)

// LogWeeklyQuizSummary logs how many quiz attempts were completed over the
// past seven days and their mean score. Read-only reporting; scores are
// never recomputed here.
func LogWeeklyQuizSummary() {
	log.Println("Running job: LogWeeklyQuizSummary...")

	since := time.Now().AddDate(0, 0, -7)

	var count int64
	err := database.DB.Model(&models.QuizAttempt{}).
		Where("completed_at >= ?", since).
		Count(&count).Error
	if err != nil {
		log.Printf("Error counting weekly quiz attempts: %v", err)
		return
	}

	if count == 0 {
		log.Println("No quiz attempts completed this week.")
		return
	}

	var meanScore float64
	err = database.DB.Model(&models.QuizAttempt{}).
		Where("completed_at >= ?", since).
		Select("COALESCE(AVG(score), 0)").
		Row().Scan(&meanScore)
	if err != nil {
		log.Printf("Error averaging weekly quiz scores: %v", err)
		return
	}

	log.Printf("Weekly quiz summary: %d attempt(s), mean score %.2f.", count, meanScore)
}
