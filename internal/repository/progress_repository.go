package repository

import (
	"vidya_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) Create(progress *model.UserProgress) error {
	return r.DB.Create(progress).Error
}

func (r *ProgressRepository) FindByUserAndContent(userID, contentID string) (*model.UserProgress, error) {
	var progress model.UserProgress
	err := r.DB.Where("user_id = ? AND content_id = ?", userID, contentID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *ProgressRepository) ListByUser(userID string) ([]model.ProgressDetail, error) {
	var details []model.ProgressDetail
	err := r.DB.Table("user_progress").
		Select("user_progress.id, user_progress.content_id, content.content_type, chapters.name AS chapter_name, subjects.name AS subject_name, user_progress.status, user_progress.completed_at").
		Joins("JOIN content ON user_progress.content_id = content.id").
		Joins("JOIN chapters ON content.chapter_id = chapters.id").
		Joins("JOIN subjects ON chapters.subject_id = subjects.id").
		Where("user_progress.user_id = ?", userID).
		Scan(&details).Error
	return details, err
}

func (r *ProgressRepository) CountCompletedByType(userID string, contentType model.ContentType) (int64, error) {
	var count int64
	err := r.DB.Table("user_progress").
		Joins("JOIN content ON user_progress.content_id = content.id").
		Where("user_progress.user_id = ? AND content.content_type = ? AND user_progress.status = ?",
			userID, contentType, model.ProgressCompleted).
		Count(&count).Error
	return count, err
}
