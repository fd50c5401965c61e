package repository

import (
	"errors"

	"vidya_backend/internal/model"

	"gorm.io/gorm"
)

type ContentRepository struct {
	DB *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{DB: db}
}

func (r *ContentRepository) FindByIDAndType(id string, contentType model.ContentType) (*model.ContentItem, error) {
	var item model.ContentItem
	err := r.DB.Where("id = ? AND content_type = ?", id, contentType).First(&item).Error
	return &item, err
}

func (r *ContentRepository) FindByChapterAndType(chapterID string, contentType model.ContentType) (*model.ContentItem, error) {
	var item model.ContentItem
	err := r.DB.Where("chapter_id = ? AND content_type = ?", chapterID, contentType).First(&item).Error
	return &item, err
}

func (r *ContentRepository) ListByChapter(chapterID string) ([]model.ContentItem, error) {
	var items []model.ContentItem
	err := r.DB.Where("chapter_id = ?", chapterID).Order("created_at").Find(&items).Error
	return items, err
}

func (r *ContentRepository) Create(item *model.ContentItem) error {
	return r.DB.Create(item).Error
}

func (r *ContentRepository) Update(item *model.ContentItem) error {
	return r.DB.Save(item).Error
}

// IsDuplicate reports whether err is the unique-index violation raised when
// two requests race to insert the same (chapter, type) pair.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
