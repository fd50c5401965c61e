package service

import (
	"errors"
	"time"

	"vidya_backend/internal/model"
	"vidya_backend/internal/repository"
	"vidya_backend/internal/util"

	"gorm.io/gorm"
)

// VideoCompletionPoints is awarded the first time a user completes a video.
const VideoCompletionPoints = 50

// CompletionResult distinguishes a first completion from a repeat one.
type CompletionResult struct {
	NewlyCompleted bool `json:"newlyCompleted"`
	PointsAwarded  int  `json:"pointsAwarded"`
}

type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	ContentRepo  *repository.ContentRepository
	UserRepo     *repository.UserRepository
	UserService  *UserService
}

func NewProgressService(progressRepo *repository.ProgressRepository, contentRepo *repository.ContentRepository, userRepo *repository.UserRepository, userService *UserService) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		ContentRepo:  contentRepo,
		UserRepo:     userRepo,
		UserService:  userService,
	}
}

// MarkCompleted records that the user finished a piece of content. The call
// is idempotent: only the first completion inserts a row and awards points,
// every later call is a no-op. Two concurrent first calls are arbitrated by
// the unique (user, content) index so points are awarded exactly once.
func (s *ProgressService) MarkCompleted(userID, contentID string) (*CompletionResult, error) {
	// Only videos are completable; quizzes settle through attempts.
	if _, err := s.ContentRepo.FindByIDAndType(contentID, model.ContentVideo); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrContentNotFound
		}
		return nil, err
	}

	_, err := s.ProgressRepo.FindByUserAndContent(userID, contentID)
	if err == nil {
		return &CompletionResult{NewlyCompleted: false, PointsAwarded: 0}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	progress := &model.UserProgress{
		UserID:      userID,
		ContentID:   contentID,
		Status:      model.ProgressCompleted,
		CompletedAt: &now,
	}
	if err := s.ProgressRepo.Create(progress); err != nil {
		if repository.IsDuplicate(err) {
			return &CompletionResult{NewlyCompleted: false, PointsAwarded: 0}, nil
		}
		return nil, err
	}

	if err := s.UserRepo.AddPoints(userID, VideoCompletionPoints); err != nil {
		return nil, err
	}
	if err := s.UserService.RecordActivity(userID); err != nil {
		return nil, err
	}

	return &CompletionResult{NewlyCompleted: true, PointsAwarded: VideoCompletionPoints}, nil
}

func (s *ProgressService) ListProgress(userID string) ([]model.ProgressDetail, error) {
	return s.ProgressRepo.ListByUser(userID)
}
