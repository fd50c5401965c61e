package model

import "time"

// ProgressDetail is a user_progress row joined with its chapter context.
type ProgressDetail struct {
	ID          string         `json:"id"`
	ContentID   string         `json:"contentId"`
	ContentType ContentType    `json:"contentType"`
	ChapterName string         `json:"chapterName"`
	SubjectName string         `json:"subjectName"`
	Status      ProgressStatus `json:"status"`
	CompletedAt *time.Time     `json:"completedAt"`
}

// AttemptDetail is a quiz_attempts row joined with its chapter context.
type AttemptDetail struct {
	ID             string    `json:"id"`
	ContentID      string    `json:"contentId"`
	ChapterName    string    `json:"chapterName"`
	SubjectName    string    `json:"subjectName"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	AttemptedAt    time.Time `json:"attemptedAt"`
}

// UserStats is the aggregate view served by the stats endpoint.
type UserStats struct {
	VideosWatched    int             `json:"videosWatched"`
	QuizzesAttempted int             `json:"quizzesAttempted"`
	AverageQuizScore int             `json:"averageQuizScore"`
	TotalPoints      int             `json:"totalPoints"`
	CurrentStreak    int             `json:"currentStreak"`
	RecentActivity   []AttemptDetail `json:"recentActivity"`
}
