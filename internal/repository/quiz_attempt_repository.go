package repository

import (
	"vidya_backend/internal/model"

	"gorm.io/gorm"
)

type QuizAttemptRepository struct {
	DB *gorm.DB
}

func NewQuizAttemptRepository(db *gorm.DB) *QuizAttemptRepository {
	return &QuizAttemptRepository{DB: db}
}

func (r *QuizAttemptRepository) Create(attempt *model.QuizAttempt) error {
	return r.DB.Create(attempt).Error
}

func (r *QuizAttemptRepository) ListByUser(userID string) ([]model.AttemptDetail, error) {
	var details []model.AttemptDetail
	err := r.DB.Table("quiz_attempts").
		Select("quiz_attempts.id, quiz_attempts.content_id, chapters.name AS chapter_name, subjects.name AS subject_name, quiz_attempts.score, quiz_attempts.total_questions, quiz_attempts.attempted_at").
		Joins("JOIN content ON quiz_attempts.content_id = content.id").
		Joins("JOIN chapters ON content.chapter_id = chapters.id").
		Joins("JOIN subjects ON chapters.subject_id = subjects.id").
		Where("quiz_attempts.user_id = ?", userID).
		Order("quiz_attempts.attempted_at DESC").
		Scan(&details).Error
	return details, err
}

func (r *QuizAttemptRepository) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.QuizAttempt{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *QuizAttemptRepository) AverageScoreByUser(userID string) (float64, error) {
	var avg *float64
	err := r.DB.Model(&model.QuizAttempt{}).
		Select("AVG(score * 100.0 / total_questions)").
		Where("user_id = ?", userID).
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}
