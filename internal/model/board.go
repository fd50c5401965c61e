package model

// Board is the top-level curriculum authority (CBSE, ICSE, ...).
// swagger:model Board
type Board struct {
	UUIDBase
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`
}

func (Board) TableName() string {
	return "boards"
}
