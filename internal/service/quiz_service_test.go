package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"vidya_backend/internal/generator"
	"vidya_backend/internal/model"
	"vidya_backend/internal/util"
)

func insertMotionQuiz(t *testing.T, env *testEnv) (*model.ContentItem, []string) {
	t.Helper()

	payload, err := generator.NewFallback().GenerateQuiz(context.Background(), model.ChapterMeta{
		ID: testChapterID, ChapterName: "Motion", SubjectName: "Physics", ClassNumber: 9, BoardName: "CBSE",
	})
	if err != nil {
		t.Fatalf("generating quiz fixture: %v", err)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}

	item := &model.ContentItem{ChapterID: testChapterID, ContentType: model.ContentQuiz, Data: data}
	if err := env.contentRepo.Create(item); err != nil {
		t.Fatalf("inserting quiz content: %v", err)
	}

	answers := make([]string, len(payload.Questions))
	for i, q := range payload.Questions {
		answers[i] = q.Answer
	}
	return item, answers
}

func TestScoreExactMatch(t *testing.T) {
	quiz := &generator.QuizPayload{Questions: []generator.Question{
		{Q: "q1", Options: []string{"a", "b", "c", "d"}, Answer: "a"},
		{Q: "q2", Options: []string{"a", "b", "c", "d"}, Answer: "b"},
		{Q: "q3", Options: []string{"a", "b", "c", "d"}, Answer: "c"},
	}}

	score, results, err := Score(quiz, []string{"a", "b", "d"})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if score != 2 {
		t.Errorf("score = %d, want 2", score)
	}
	if !results[0].IsCorrect || !results[1].IsCorrect || results[2].IsCorrect {
		t.Errorf("per-question results = %+v", results)
	}

	// Close but not equal strings never count.
	score, _, err = Score(quiz, []string{"A", " b", "c "})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if score != 0 {
		t.Errorf("near-miss answers scored %d, want 0", score)
	}
}

func TestScoreLengthMismatch(t *testing.T) {
	quiz := &generator.QuizPayload{Questions: []generator.Question{
		{Q: "q1", Options: []string{"a", "b", "c", "d"}, Answer: "a"},
	}}

	if _, _, err := Score(quiz, []string{"a", "b"}); !errors.Is(err, util.ErrMalformedSubmission) {
		t.Errorf("error = %v, want ErrMalformedSubmission", err)
	}
	if _, _, err := Score(quiz, nil); !errors.Is(err, util.ErrMalformedSubmission) {
		t.Errorf("error = %v, want ErrMalformedSubmission", err)
	}
}

func TestPercentageRounding(t *testing.T) {
	tests := []struct {
		score, total, want int
	}{
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{5, 5, 100},
		{0, 5, 0},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := Percentage(tt.score, tt.total); got != tt.want {
			t.Errorf("Percentage(%d, %d) = %d, want %d", tt.score, tt.total, got, tt.want)
		}
	}
}

func TestSubmitFullMarks(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env.db, "student@example.com")
	item, answers := insertMotionQuiz(t, env)

	result, err := env.quiz.Submit(user.ID, item.ID, answers)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if result.Score != 5 || result.TotalQuestions != 5 {
		t.Errorf("score = %d/%d, want 5/5", result.Score, result.TotalQuestions)
	}
	if result.Percentage != 100 {
		t.Errorf("percentage = %d, want 100", result.Percentage)
	}
	if result.PointsAwarded != 5*PointsPerCorrect {
		t.Errorf("points = %d, want %d", result.PointsAwarded, 5*PointsPerCorrect)
	}

	updated, err := env.userRepo.FindByID(user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Points != 5*PointsPerCorrect {
		t.Errorf("user points = %d, want %d", updated.Points, 5*PointsPerCorrect)
	}
	if updated.CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1", updated.CurrentStreak)
	}

	var count int64
	env.db.Model(&model.QuizAttempt{}).Count(&count)
	if count != 1 {
		t.Errorf("attempt rows = %d, want 1", count)
	}
}

func TestSubmitMalformedLeavesNoAttempt(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env.db, "student@example.com")
	item, _ := insertMotionQuiz(t, env)

	_, err := env.quiz.Submit(user.ID, item.ID, []string{"only one answer"})
	if !errors.Is(err, util.ErrMalformedSubmission) {
		t.Fatalf("error = %v, want ErrMalformedSubmission", err)
	}

	var count int64
	env.db.Model(&model.QuizAttempt{}).Count(&count)
	if count != 0 {
		t.Errorf("attempt rows = %d, want 0", count)
	}

	updated, err := env.userRepo.FindByID(user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Points != 0 {
		t.Errorf("user points = %d, want 0", updated.Points)
	}
}

func TestSubmitUnknownContent(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env.db, "student@example.com")

	_, err := env.quiz.Submit(user.ID, "no-such-content", []string{"a"})
	if !errors.Is(err, util.ErrContentNotFound) {
		t.Errorf("error = %v, want ErrContentNotFound", err)
	}
}

func TestSubmitRejectsVideoContent(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env.db, "student@example.com")

	video := &model.ContentItem{
		ChapterID:   testChapterID,
		ContentType: model.ContentVideo,
		Data:        json.RawMessage(`{"script":"s","videoUrl":"u","duration":90}`),
	}
	if err := env.contentRepo.Create(video); err != nil {
		t.Fatal(err)
	}

	_, err := env.quiz.Submit(user.ID, video.ID, []string{"a"})
	if !errors.Is(err, util.ErrContentNotFound) {
		t.Errorf("error = %v, want ErrContentNotFound", err)
	}
}

func TestSubmitAttemptsAreAppendOnly(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env.db, "student@example.com")
	item, answers := insertMotionQuiz(t, env)

	if _, err := env.quiz.Submit(user.ID, item.ID, answers); err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	wrong := make([]string, len(answers))
	for i := range wrong {
		wrong[i] = "definitely wrong"
	}
	if _, err := env.quiz.Submit(user.ID, item.ID, wrong); err != nil {
		t.Fatalf("second Submit: %v", err)
	}

	var count int64
	env.db.Model(&model.QuizAttempt{}).Count(&count)
	if count != 2 {
		t.Errorf("attempt rows = %d, want 2", count)
	}

	// Points only accrue from the first, fully correct attempt.
	updated, err := env.userRepo.FindByID(user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Points != 5*PointsPerCorrect {
		t.Errorf("user points = %d, want %d", updated.Points, 5*PointsPerCorrect)
	}
}
