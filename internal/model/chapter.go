package model

// Chapter is the smallest curriculum unit; generated content hangs off it.
// swagger:model Chapter
type Chapter struct {
	UUIDBase
	SubjectID     string `gorm:"size:64;index;not null" json:"subjectId"`
	Name          string `gorm:"size:150;not null" json:"name"`
	Description   string `gorm:"size:255" json:"description"`
	ChapterNumber int    `gorm:"default:1" json:"chapterNumber"`
	IsActive      bool   `gorm:"default:true" json:"isActive"`
}

func (Chapter) TableName() string {
	return "chapters"
}

// ChapterMeta is the denormalized chapter row the generator works from,
// produced by joining chapters up the board chain.
type ChapterMeta struct {
	ID            string `json:"id"`
	ChapterName   string `json:"chapterName"`
	ChapterNumber int    `json:"chapterNumber"`
	SubjectName   string `json:"subjectName"`
	ClassNumber   int    `json:"classNumber"`
	BoardName     string `json:"boardName"`
}

// ChapterDetail is the chapter-detail view: the meta row plus whatever
// content has already been generated for the chapter. A nil slot means
// that content type has not been requested yet.
// swagger:model ChapterDetail
type ChapterDetail struct {
	ChapterMeta
	Video *ContentItem `json:"video"`
	Quiz  *ContentItem `json:"quiz"`
}
