package models

import "github.com/google/uuid"

// Subjects a weekly quiz draws from, in quota order.
var QuizSubjects = []string{"maths", "science", "english"}

type QuizQuestion struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Subject       string    `gorm:"size:50;not null;index" json:"subject"`
	Question      string    `gorm:"type:text;not null" json:"question"`
	OptionA       string    `gorm:"type:text;not null" json:"option_a"`
	OptionB       string    `gorm:"type:text;not null" json:"option_b"`
	OptionC       string    `gorm:"type:text;not null" json:"option_c"`
	OptionD       string    `gorm:"type:text;not null" json:"option_d"`
	IsCalculation bool      `gorm:"not null;default:false" json:"-"`
	CorrectAnswer string    `gorm:"size:1;not null" json:"-"`
}
