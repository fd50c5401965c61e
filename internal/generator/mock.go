package generator

import (
	"context"

	"vidya_backend/internal/model"
)

// MockStrategy is a test double. When Err is set both generate calls fail
// with it; otherwise the configured payloads are returned as-is.
type MockStrategy struct {
	Quiz     *QuizPayload
	Video    *VideoPayload
	Err      error
	Calls    int
	LastMeta *model.ChapterMeta
}

func (m *MockStrategy) Name() string { return "mock" }

func (m *MockStrategy) GenerateQuiz(_ context.Context, meta model.ChapterMeta) (*QuizPayload, error) {
	m.Calls++
	m.LastMeta = &meta
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Quiz, nil
}

func (m *MockStrategy) GenerateVideo(_ context.Context, meta model.ChapterMeta) (*VideoPayload, error) {
	m.Calls++
	m.LastMeta = &meta
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Video, nil
}
