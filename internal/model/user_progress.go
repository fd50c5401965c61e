package model

import "time"

type ProgressStatus string

const (
	ProgressNotStarted ProgressStatus = "not_started"
	ProgressInProgress ProgressStatus = "in_progress"
	ProgressCompleted  ProgressStatus = "completed"
)

// UserProgress records completion of a content item by a user. The unique
// index on (user_id, content_id) backs the ledger's idempotence guarantee.
// swagger:model UserProgress
type UserProgress struct {
	UUIDBase
	UserID      string         `gorm:"size:36;index:idx_user_content,unique;not null" json:"userId"`
	ContentID   string         `gorm:"size:36;index:idx_user_content,unique;not null" json:"contentId"`
	Status      ProgressStatus `gorm:"size:16;default:'not_started'" json:"status"`
	CompletedAt *time.Time     `json:"completedAt"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
