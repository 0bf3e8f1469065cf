package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// One row per (user, week). Resubmissions overwrite it, never duplicate it.
type QuizAttempt struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_attempt_user_week" json:"user_id"`
	WeekStartDate string         `gorm:"size:30;not null;uniqueIndex:idx_attempt_user_week" json:"week_start_date"`
	QuestionIDs   datatypes.JSON `gorm:"type:jsonb" json:"question_ids"`
	Answers       datatypes.JSON `gorm:"type:jsonb" json:"answers"`
	Score         int            `gorm:"not null" json:"score"`
	CompletedAt   time.Time      `gorm:"not null" json:"completed_at"`
}
