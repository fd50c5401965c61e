package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"vidya_backend/internal/config"
	"vidya_backend/internal/model"
)

// Provider generates content through an OpenAI-compatible chat completions
// endpoint, plus an asynchronous rendering provider for video assets. Any
// failure (transport, status, shape) is returned as a plain error so the
// chain can fall through.
type Provider struct {
	ai     config.AIConfig
	video  config.VideoConfig
	client *http.Client
}

func NewProvider(ai config.AIConfig, video config.VideoConfig) *Provider {
	timeout := time.Duration(ai.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Provider{
		ai:    ai,
		video: video,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (p *Provider) Name() string { return "provider" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (p *Provider) complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	reqBody := chatCompletionRequest{
		Model:       p.ai.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   maxTokens,
		Temperature: 0.7,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.ai.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.ai.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	if result.Error != nil {
		return "", fmt.Errorf("AI API error: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("AI returned no choices")
	}

	return result.Choices[0].Message.Content, nil
}

func (p *Provider) GenerateQuiz(ctx context.Context, meta model.ChapterMeta) (*QuizPayload, error) {
	prompt := fmt.Sprintf(`Generate %d multiple-choice questions for a grade %d %s student studying %s - Chapter: %s.

Each question should have:
- A clear, educational question
- %d answer options
- One correct answer
- Questions should test understanding of key concepts

Return the response as a JSON object with this exact structure:
{
  "questions": [
    {
      "q": "Question text here",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "answer": "Correct option text"
    }
  ]
}

Make sure the questions are appropriate for grade %d level and cover the main topics of %s in %s.`,
		QuizQuestionCount, meta.ClassNumber, meta.BoardName, meta.SubjectName, meta.ChapterName,
		QuizOptionCount, meta.ClassNumber, meta.ChapterName, meta.SubjectName)

	content, err := p.complete(ctx, prompt, 2000)
	if err != nil {
		return nil, err
	}

	var payload QuizPayload
	if err := json.Unmarshal([]byte(extractJSON(content)), &payload); err != nil {
		return nil, fmt.Errorf("malformed quiz response: %w", err)
	}

	// The chain validates too, but failing here attributes the error to the
	// provider in logs rather than to a broken payload downstream.
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	return &payload, nil
}

func (p *Provider) GenerateVideo(ctx context.Context, meta model.ChapterMeta) (*VideoPayload, error) {
	prompt := fmt.Sprintf(`Create a concise, educational script for a %d-second animated video explaining %s from %s for a grade %d %s student.

The script should:
- Be engaging and age-appropriate
- Cover the main concepts clearly
- Use simple, understandable language
- Include key points and examples
- Be structured for visual presentation
- Be exactly %d seconds when spoken at normal pace

Format the response as a clear, well-structured script that can be used for video generation.`,
		VideoDuration, meta.ChapterName, meta.SubjectName, meta.ClassNumber, meta.BoardName, VideoDuration)

	script, err := p.complete(ctx, prompt, 1500)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(script) == "" {
		return nil, fmt.Errorf("AI returned an empty script")
	}

	videoURL, err := p.renderVideo(ctx, script, meta)
	if err != nil {
		return nil, err
	}

	return &VideoPayload{
		Script:   script,
		VideoURL: videoURL,
		Duration: VideoDuration,
	}, nil
}

type renderRequest struct {
	Prompt      string `json:"prompt"`
	Duration    int    `json:"duration"`
	AspectRatio string `json:"aspect_ratio"`
	Style       string `json:"style"`
}

type renderResponse struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	VideoURL string `json:"video_url"`
}

// renderVideo submits a render job and polls for completion. The poll loop
// is capped at a fixed number of attempts with fixed backoff; hitting the
// cap is an error like any other, which sends the chain to the fallback.
func (p *Provider) renderVideo(ctx context.Context, script string, meta model.ChapterMeta) (string, error) {
	if p.video.BaseURL == "" {
		return "", fmt.Errorf("video provider not configured")
	}

	body, err := json.Marshal(renderRequest{
		Prompt:      fmt.Sprintf("Educational animated video about %s in %s. %s", meta.ChapterName, meta.SubjectName, script),
		Duration:    VideoDuration,
		AspectRatio: "16:9",
		Style:       "educational",
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.video.BaseURL+"/generate", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.video.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("video API error (status %d): %s", resp.StatusCode, string(b))
	}

	var job renderResponse
	if err := json.NewDecoder(resp.Body).Decode(&job); err != nil {
		return "", err
	}
	if job.ID == "" {
		return "", fmt.Errorf("video API returned no job id")
	}

	attempts := p.video.PollAttempts
	if attempts <= 0 {
		attempts = 30
	}
	interval := time.Duration(p.video.PollIntervalSec) * time.Second
	if interval <= 0 {
		interval = 10 * time.Second
	}

	for i := 0; i < attempts; i++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(interval):
		}

		status, err := p.pollRender(ctx, job.ID)
		if err != nil {
			return "", err
		}

		switch status.Status {
		case "completed":
			if status.VideoURL == "" {
				return "", fmt.Errorf("video job %s completed without a URL", job.ID)
			}
			return status.VideoURL, nil
		case "failed":
			return "", fmt.Errorf("video job %s failed", job.ID)
		}
	}

	return "", fmt.Errorf("video job %s timed out after %d polls", job.ID, attempts)
}

func (p *Provider) pollRender(ctx context.Context, jobID string) (*renderResponse, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", p.video.BaseURL+"/generate/"+jobID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.video.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("video API error (status %d): %s", resp.StatusCode, string(b))
	}

	var status renderResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, err
	}
	return &status, nil
}

// extractJSON pulls the outermost JSON object out of a response that may be
// wrapped in markdown fences or prose.
func extractJSON(content string) string {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		return content[start : end+1]
	}
	return content
}
