package generator

import (
	"context"
	"fmt"

	"vidya_backend/internal/model"
)

const (
	// QuizQuestionCount is the number of questions every generated quiz
	// must carry, regardless of which strategy produced it.
	QuizQuestionCount = 5

	// QuizOptionCount is the number of answer options per question.
	QuizOptionCount = 4

	// VideoDuration is the target length in seconds for generated videos.
	VideoDuration = 90
)

// Question holds one multiple-choice question. Answer is the correct option
// by literal value, not by index; scoring compares exact strings.
type Question struct {
	Q       string   `json:"q"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
}

// swagger:model QuizPayload
type QuizPayload struct {
	Questions []Question `json:"questions"`
}

// swagger:model VideoPayload
type VideoPayload struct {
	Script   string `json:"script"`
	VideoURL string `json:"videoUrl"`
	Duration int    `json:"duration"`
}

// Strategy produces content payloads for a chapter. Implementations either
// succeed with a structurally valid payload or return an error; the chain
// treats every error the same and moves on.
type Strategy interface {
	Name() string
	GenerateQuiz(ctx context.Context, meta model.ChapterMeta) (*QuizPayload, error)
	GenerateVideo(ctx context.Context, meta model.ChapterMeta) (*VideoPayload, error)
}

// Validate checks the structural contract every quiz payload must satisfy
// before it is persisted or served.
func (p *QuizPayload) Validate() error {
	if len(p.Questions) != QuizQuestionCount {
		return fmt.Errorf("expected %d questions, got %d", QuizQuestionCount, len(p.Questions))
	}
	for i, q := range p.Questions {
		if q.Q == "" {
			return fmt.Errorf("question %d has an empty prompt", i)
		}
		if len(q.Options) != QuizOptionCount {
			return fmt.Errorf("question %d has %d options, expected %d", i, len(q.Options), QuizOptionCount)
		}
		seen := make(map[string]bool, QuizOptionCount)
		answerFound := false
		for _, opt := range q.Options {
			if opt == "" {
				return fmt.Errorf("question %d has an empty option", i)
			}
			if seen[opt] {
				return fmt.Errorf("question %d has duplicate option %q", i, opt)
			}
			seen[opt] = true
			if opt == q.Answer {
				answerFound = true
			}
		}
		if !answerFound {
			return fmt.Errorf("question %d answer %q is not among its options", i, q.Answer)
		}
	}
	return nil
}

func (p *VideoPayload) Validate() error {
	if p.VideoURL == "" {
		return fmt.Errorf("video payload has no asset URL")
	}
	if p.Duration <= 0 {
		return fmt.Errorf("video payload has non-positive duration %d", p.Duration)
	}
	return nil
}
