package service

import (
	"encoding/json"
	"testing"
	"time"

	"vidya_backend/internal/model"
)

func TestRecordActivityStreak(t *testing.T) {
	env := newTestEnv(t)

	t.Run("first activity starts streak", func(t *testing.T) {
		user := createTestUser(t, env.db, "first@example.com")
		if err := env.user.RecordActivity(user.ID); err != nil {
			t.Fatalf("RecordActivity: %v", err)
		}
		updated, _ := env.userRepo.FindByID(user.ID)
		if updated.CurrentStreak != 1 {
			t.Errorf("streak = %d, want 1", updated.CurrentStreak)
		}
		if updated.LastActiveDate == nil {
			t.Error("last active date not set")
		}
	})

	t.Run("same day is a no-op", func(t *testing.T) {
		user := createTestUser(t, env.db, "sameday@example.com")
		if err := env.user.RecordActivity(user.ID); err != nil {
			t.Fatal(err)
		}
		if err := env.user.RecordActivity(user.ID); err != nil {
			t.Fatal(err)
		}
		updated, _ := env.userRepo.FindByID(user.ID)
		if updated.CurrentStreak != 1 {
			t.Errorf("streak = %d, want 1", updated.CurrentStreak)
		}
	})

	t.Run("consecutive day extends streak", func(t *testing.T) {
		user := createTestUser(t, env.db, "daily@example.com")
		if err := env.userRepo.SetActivity(user.ID, 4, *daysAgo(1)); err != nil {
			t.Fatal(err)
		}
		if err := env.user.RecordActivity(user.ID); err != nil {
			t.Fatal(err)
		}
		updated, _ := env.userRepo.FindByID(user.ID)
		if updated.CurrentStreak != 5 {
			t.Errorf("streak = %d, want 5", updated.CurrentStreak)
		}
	})

	t.Run("gap resets streak", func(t *testing.T) {
		user := createTestUser(t, env.db, "lapsed@example.com")
		if err := env.userRepo.SetActivity(user.ID, 9, *daysAgo(3)); err != nil {
			t.Fatal(err)
		}
		if err := env.user.RecordActivity(user.ID); err != nil {
			t.Fatal(err)
		}
		updated, _ := env.userRepo.FindByID(user.ID)
		if updated.CurrentStreak != 1 {
			t.Errorf("streak = %d, want 1", updated.CurrentStreak)
		}
	})
}

func TestGetStats(t *testing.T) {
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
	quiz := &model.ContentItem{
		ChapterID:   testChapterID,
		ContentType: model.ContentQuiz,
		Data:        json.RawMessage(`{}`),
	}
	if err := env.contentRepo.Create(quiz); err != nil {
		t.Fatal(err)
	}

	if _, err := env.progress.MarkCompleted(user.ID, video.ID); err != nil {
		t.Fatalf("MarkCompleted: %v", err)
	}

	// Two attempts: 1/3 and 2/3 correct, average score should land on 50.
	attempts := []*model.QuizAttempt{
		{UserID: user.ID, ContentID: quiz.ID, Answers: json.RawMessage(`["a","b","c"]`), Score: 1, TotalQuestions: 3, AttemptedAt: time.Now().Add(-time.Hour)},
		{UserID: user.ID, ContentID: quiz.ID, Answers: json.RawMessage(`["a","b","c"]`), Score: 2, TotalQuestions: 3, AttemptedAt: time.Now()},
	}
	for _, a := range attempts {
		if err := env.attemptRepo.Create(a); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := env.user.GetStats(user.ID)
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}

	if stats.VideosWatched != 1 {
		t.Errorf("videos watched = %d, want 1", stats.VideosWatched)
	}
	if stats.QuizzesAttempted != 2 {
		t.Errorf("quizzes attempted = %d, want 2", stats.QuizzesAttempted)
	}
	if stats.AverageQuizScore != 50 {
		t.Errorf("average score = %d, want 50", stats.AverageQuizScore)
	}
	if stats.TotalPoints != VideoCompletionPoints {
		t.Errorf("total points = %d, want %d", stats.TotalPoints, VideoCompletionPoints)
	}
	if stats.CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1", stats.CurrentStreak)
	}
	if len(stats.RecentActivity) != 2 {
		t.Fatalf("recent activity = %d entries, want 2", len(stats.RecentActivity))
	}
	// Most recent attempt first.
	if stats.RecentActivity[0].Score != 2 {
		t.Errorf("recent activity not ordered by attempt time: %+v", stats.RecentActivity)
	}
}

func TestGetStatsEmpty(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env.db, "new@example.com")

	stats, err := env.user.GetStats(user.ID)
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.VideosWatched != 0 || stats.QuizzesAttempted != 0 || stats.AverageQuizScore != 0 {
		t.Errorf("empty stats = %+v", stats)
	}
}
