package generator

import "testing"

func TestQuizPayloadValidate(t *testing.T) {
	base := validQuiz()

	tests := []struct {
		name   string
		mutate func(*QuizPayload)
		ok     bool
	}{
		{"valid", func(p *QuizPayload) {}, true},
		{"too few questions", func(p *QuizPayload) { p.Questions = p.Questions[:3] }, false},
		{"empty prompt", func(p *QuizPayload) { p.Questions[2].Q = "" }, false},
		{"wrong option count", func(p *QuizPayload) { p.Questions[0].Options = []string{"a", "b"} }, false},
		{"duplicate options", func(p *QuizPayload) { p.Questions[1].Options = []string{"a", "a", "c", "d"} }, false},
		{"answer not an option", func(p *QuizPayload) { p.Questions[4].Answer = "z" }, false},
		{"empty option", func(p *QuizPayload) { p.Questions[3].Options[2] = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := &QuizPayload{Questions: make([]Question, len(base.Questions))}
			for i, q := range base.Questions {
				opts := make([]string, len(q.Options))
				copy(opts, q.Options)
				q.Options = opts
				payload.Questions[i] = q
			}
			tt.mutate(payload)

			err := payload.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestVideoPayloadValidate(t *testing.T) {
	valid := &VideoPayload{Script: "s", VideoURL: "https://example.com/v.mp4", Duration: 90}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	noURL := &VideoPayload{Script: "s", Duration: 90}
	if err := noURL.Validate(); err == nil {
		t.Error("payload without URL passed validation")
	}

	zeroDuration := &VideoPayload{Script: "s", VideoURL: "https://example.com/v.mp4"}
	if err := zeroDuration.Validate(); err == nil {
		t.Error("payload with zero duration passed validation")
	}
}
