package model

import (
	"encoding/json"
	"time"
)

// QuizAttempt is an append-only record of one quiz submission; rows are
// never mutated after insert.
// swagger:model QuizAttempt
type QuizAttempt struct {
	UUIDBase
	UserID         string          `gorm:"size:36;index;not null" json:"userId"`
	ContentID      string          `gorm:"size:36;index;not null" json:"contentId"`
	Answers        json.RawMessage `gorm:"type:json;not null" json:"answers"`
	Score          int             `gorm:"not null" json:"score"`
	TotalQuestions int             `gorm:"not null" json:"totalQuestions"`
	AttemptedAt    time.Time       `json:"attemptedAt"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}
