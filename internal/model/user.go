package model

import "time"

// swagger:model User
type User struct {
	UUIDBase
	Email           string     `gorm:"size:100;unique;not null" json:"email"`
	Password        string     `gorm:"size:100;not null" json:"-"`
	SelectedBoardID *string    `gorm:"size:64" json:"selectedBoardId"`
	SelectedClassID *string    `gorm:"size:64" json:"selectedClassId"`
	Points          int        `gorm:"default:0" json:"points"`
	CurrentStreak   int        `gorm:"default:0" json:"currentStreak"`
	LastActiveDate  *time.Time `json:"lastActiveDate"`
}

func (User) TableName() string {
	return "users"
}
