package generator

import (
	"context"
	"fmt"

	"vidya_backend/internal/model"
	"vidya_backend/pkg/logger"
	"vidya_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// Chain tries each strategy in registration order and returns the first
// payload that passes validation. With the deterministic fallback registered
// last, a fully configured chain never fails.
type Chain struct {
	strategies []Strategy
}

func NewChain(strategies ...Strategy) *Chain {
	return &Chain{strategies: strategies}
}

func (c *Chain) GenerateQuiz(ctx context.Context, meta model.ChapterMeta) (*QuizPayload, error) {
	for _, s := range c.strategies {
		payload, err := s.GenerateQuiz(ctx, meta)
		if err == nil && payload == nil {
			err = fmt.Errorf("strategy returned no payload")
		}
		if err == nil {
			err = payload.Validate()
		}
		if err != nil {
			logger.Log.Warn("quiz generation strategy failed, trying next",
				zap.String("strategy", s.Name()),
				zap.String("chapter", meta.ID),
				zap.Error(err),
			)
			continue
		}

		monitoring.GenerationCounter.WithLabelValues("quiz", s.Name()).Inc()
		return payload, nil
	}
	return nil, fmt.Errorf("all quiz generation strategies failed for chapter %s", meta.ID)
}

func (c *Chain) GenerateVideo(ctx context.Context, meta model.ChapterMeta) (*VideoPayload, error) {
	for _, s := range c.strategies {
		payload, err := s.GenerateVideo(ctx, meta)
		if err == nil && payload == nil {
			err = fmt.Errorf("strategy returned no payload")
		}
		if err == nil {
			err = payload.Validate()
		}
		if err != nil {
			logger.Log.Warn("video generation strategy failed, trying next",
				zap.String("strategy", s.Name()),
				zap.String("chapter", meta.ID),
				zap.Error(err),
			)
			continue
		}

		monitoring.GenerationCounter.WithLabelValues("video", s.Name()).Inc()
		return payload, nil
	}
	return nil, fmt.Errorf("all video generation strategies failed for chapter %s", meta.ID)
}
