package model

import "encoding/json"

type ContentType string

const (
	ContentVideo ContentType = "video"
	ContentQuiz  ContentType = "quiz"
)

// ContentItem is a generated (or uploaded) artifact tied to one chapter.
// The composite unique index is what makes get-or-create idempotent: at most
// one row may exist per (chapter, type).
// swagger:model ContentItem
type ContentItem struct {
	UUIDBase
	ChapterID   string          `gorm:"size:64;index:idx_chapter_type,unique;not null" json:"chapterId"`
	ContentType ContentType     `gorm:"size:16;index:idx_chapter_type,unique;not null" json:"contentType"`
	Data        json.RawMessage `gorm:"type:json;not null" json:"data"`
}

func (ContentItem) TableName() string {
	return "content"
}
