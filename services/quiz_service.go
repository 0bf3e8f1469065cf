package services

import (
	"log"
	"math/rand"

	"github.com/kwameasante/study_planner/models"
	"gorm.io/gorm"
)

// Per-subject candidate pool cap for one weekly draw.
const QuestionPoolLimit = 100

// SubjectQuotas splits total question slots across subjects: every subject
// gets floor(total/subjects), and the first total%subjects subjects in
// enumeration order get one extra.
func SubjectQuotas(total, subjects int) []int {
	if subjects <= 0 {
		return nil
	}
	base := total / subjects
	remainder := total % subjects

	quotas := make([]int, subjects)
	for i := range quotas {
		quotas[i] = base
		if i < remainder {
			quotas[i]++
		}
	}
	return quotas
}

// SampleQuestions picks up to n questions from pool, uniformly at random.
// A pool smaller than n is returned whole; the shortfall is not an error.
func SampleQuestions(pool []models.QuizQuestion, n int) []models.QuizQuestion {
	shuffled := make([]models.QuizQuestion, len(pool))
	copy(shuffled, pool)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if n > len(shuffled) {
		n = len(shuffled)
	}
	if n < 0 {
		n = 0
	}
	return shuffled[:n]
}

// DrawWeeklyQuestions assembles a stratified random question set: each
// subject contributes its quota drawn from a capped pool, then the combined
// set is shuffled again so subjects are not grouped in presentation order.
// A failed fetch degrades that subject's contribution to zero questions;
// a shortfall in one subject is never redistributed to the others.
func DrawWeeklyQuestions(db *gorm.DB, subjects []string, total int) []models.QuizQuestion {
	quotas := SubjectQuotas(total, len(subjects))

	var drawn []models.QuizQuestion
	for i, subject := range subjects {
		var pool []models.QuizQuestion
		err := db.Where("subject = ?", subject).Limit(QuestionPoolLimit).Find(&pool).Error
		if err != nil {
			log.Printf("Error fetching %s questions: %v", subject, err)
			continue
		}
		drawn = append(drawn, SampleQuestions(pool, quotas[i])...)
	}

	rand.Shuffle(len(drawn), func(i, j int) {
		drawn[i], drawn[j] = drawn[j], drawn[i]
	})
	return drawn
}
