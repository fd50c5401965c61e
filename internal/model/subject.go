package model

// swagger:model Subject
type Subject struct {
	UUIDBase
	ClassID     string `gorm:"size:64;index;not null" json:"classId"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Icon        string `gorm:"size:16" json:"icon"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`
}

func (Subject) TableName() string {
	return "subjects"
}
