package model

// swagger:model Class
type Class struct {
	UUIDBase
	BoardID     string `gorm:"size:64;index;not null" json:"boardId"`
	ClassNumber int    `gorm:"not null" json:"classNumber"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`
}

func (Class) TableName() string {
	return "classes"
}
