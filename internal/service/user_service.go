package service

import (
	"math"
	"time"

	"vidya_backend/internal/model"
	"vidya_backend/internal/repository"
	"vidya_backend/internal/util"
)

const recentActivityLimit = 10

type UserService struct {
	UserRepo        *repository.UserRepository
	ProgressRepo    *repository.ProgressRepository
	QuizAttemptRepo *repository.QuizAttemptRepository
}

func NewUserService(userRepo *repository.UserRepository, progressRepo *repository.ProgressRepository, attemptRepo *repository.QuizAttemptRepository) *UserService {
	return &UserService{
		UserRepo:        userRepo,
		ProgressRepo:    progressRepo,
		QuizAttemptRepo: attemptRepo,
	}
}

func (s *UserService) GetProfile(userID string) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	return user, nil
}

// RecordActivity advances the user's daily streak. Repeated activity on the
// same day leaves the streak untouched; activity on the day after the last
// extends it; any longer gap resets the streak to one.
func (s *UserService) RecordActivity(userID string) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return util.ErrUserNotFound
	}

	today := truncateDay(time.Now().UTC())
	streak := 1
	if user.LastActiveDate != nil {
		last := truncateDay(user.LastActiveDate.UTC())
		switch {
		case last.Equal(today):
			return nil
		case last.Equal(today.AddDate(0, 0, -1)):
			streak = user.CurrentStreak + 1
		}
	}

	return s.UserRepo.SetActivity(userID, streak, today)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// GetStats aggregates the user's activity into the dashboard view.
func (s *UserService) GetStats(userID string) (*model.UserStats, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	videos, err := s.ProgressRepo.CountCompletedByType(userID, model.ContentVideo)
	if err != nil {
		return nil, err
	}

	attempts, err := s.QuizAttemptRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	avgScore := 0
	if attempts > 0 {
		avg, err := s.QuizAttemptRepo.AverageScoreByUser(userID)
		if err != nil {
			return nil, err
		}
		avgScore = int(math.Round(avg))
	}

	recent, err := s.QuizAttemptRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(recent) > recentActivityLimit {
		recent = recent[:recentActivityLimit]
	}

	return &model.UserStats{
		VideosWatched:    int(videos),
		QuizzesAttempted: int(attempts),
		AverageQuizScore: avgScore,
		TotalPoints:      user.Points,
		CurrentStreak:    user.CurrentStreak,
		RecentActivity:   recent,
	}, nil
}

func (s *UserService) ListAttempts(userID string) ([]model.AttemptDetail, error) {
	return s.QuizAttemptRepo.ListByUser(userID)
}
