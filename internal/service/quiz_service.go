package service

import (
	"encoding/json"
	"errors"
	"math"
	"time"

	"vidya_backend/internal/generator"
	"vidya_backend/internal/model"
	"vidya_backend/internal/repository"
	"vidya_backend/internal/util"

	"gorm.io/gorm"
)

// PointsPerCorrect is awarded for each correctly answered quiz question.
const PointsPerCorrect = 10

// QuestionResult reports how one question was graded.
type QuestionResult struct {
	Index     int    `json:"index"`
	Question  string `json:"question"`
	Submitted string `json:"submitted"`
	Correct   string `json:"correct"`
	IsCorrect bool   `json:"isCorrect"`
}

// QuizResult is what a submission returns to the client.
type QuizResult struct {
	AttemptID      string           `json:"attemptId"`
	Score          int              `json:"score"`
	TotalQuestions int              `json:"totalQuestions"`
	Percentage     int              `json:"percentage"`
	PointsAwarded  int              `json:"pointsAwarded"`
	Results        []QuestionResult `json:"results"`
}

type QuizService struct {
	ContentRepo *repository.ContentRepository
	AttemptRepo *repository.QuizAttemptRepository
	UserRepo    *repository.UserRepository
	UserService *UserService
}

func NewQuizService(contentRepo *repository.ContentRepository, attemptRepo *repository.QuizAttemptRepository, userRepo *repository.UserRepository, userService *UserService) *QuizService {
	return &QuizService{
		ContentRepo: contentRepo,
		AttemptRepo: attemptRepo,
		UserRepo:    userRepo,
		UserService: userService,
	}
}

// Score grades answers against a quiz. An answer is correct only when it is
// exactly equal to the stored answer string. The submission must carry one
// answer per question; anything else is rejected before grading.
func Score(quiz *generator.QuizPayload, answers []string) (int, []QuestionResult, error) {
	if len(answers) != len(quiz.Questions) {
		return 0, nil, util.ErrMalformedSubmission
	}
	score := 0
	results := make([]QuestionResult, len(quiz.Questions))
	for i, q := range quiz.Questions {
		correct := answers[i] == q.Answer
		if correct {
			score++
		}
		results[i] = QuestionResult{
			Index:     i,
			Question:  q.Q,
			Submitted: answers[i],
			Correct:   q.Answer,
			IsCorrect: correct,
		}
	}
	return score, results, nil
}

// Percentage converts a score into an integer percentage, rounded half up.
func Percentage(score, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(score) * 100 / float64(total)))
}

// Submit grades a quiz submission, records the attempt and awards points.
// A malformed submission leaves no attempt row and awards nothing.
func (s *QuizService) Submit(userID, contentID string, answers []string) (*QuizResult, error) {
	item, err := s.ContentRepo.FindByIDAndType(contentID, model.ContentQuiz)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrContentNotFound
		}
		return nil, err
	}

	var quiz generator.QuizPayload
	if err := json.Unmarshal(item.Data, &quiz); err != nil {
		return nil, err
	}

	score, results, err := Score(&quiz, answers)
	if err != nil {
		return nil, err
	}

	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}
	attempt := &model.QuizAttempt{
		UserID:         userID,
		ContentID:      contentID,
		Answers:        answersJSON,
		Score:          score,
		TotalQuestions: len(quiz.Questions),
		AttemptedAt:    time.Now().UTC(),
	}
	if err := s.AttemptRepo.Create(attempt); err != nil {
		return nil, err
	}

	points := score * PointsPerCorrect
	if points > 0 {
		if err := s.UserRepo.AddPoints(userID, points); err != nil {
			return nil, err
		}
	}
	if err := s.UserService.RecordActivity(userID); err != nil {
		return nil, err
	}

	return &QuizResult{
		AttemptID:      attempt.ID,
		Score:          score,
		TotalQuestions: len(quiz.Questions),
		Percentage:     Percentage(score, len(quiz.Questions)),
		PointsAwarded:  points,
		Results:        results,
	}, nil
}
