package generator

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"vidya_backend/internal/model"
)

func physicsMeta(chapter string) model.ChapterMeta {
	return model.ChapterMeta{
		ID:            "chapter-1",
		ChapterName:   chapter,
		ChapterNumber: 1,
		SubjectName:   "Physics",
		ClassNumber:   9,
		BoardName:     "CBSE",
	}
}

func TestFallbackQuizAlwaysValid(t *testing.T) {
	f := NewFallback()
	metas := []model.ChapterMeta{
		physicsMeta("Motion"),
		physicsMeta("Force and Laws of Motion"),
		physicsMeta("Some Chapter Nobody Curated"),
		{ID: "c2", ChapterName: "Algebra", SubjectName: "Mathematics", ClassNumber: 10, BoardName: "ICSE"},
		{ID: "c3", ChapterName: "Photosynthesis", SubjectName: "Science", ClassNumber: 7, BoardName: "State Board"},
	}

	for _, meta := range metas {
		payload, err := f.GenerateQuiz(context.Background(), meta)
		if err != nil {
			t.Fatalf("GenerateQuiz(%q) returned error: %v", meta.ChapterName, err)
		}
		if err := payload.Validate(); err != nil {
			t.Errorf("GenerateQuiz(%q) produced invalid payload: %v", meta.ChapterName, err)
		}
	}
}

func TestFallbackQuizDeterministic(t *testing.T) {
	f := NewFallback()
	meta := physicsMeta("Some Chapter Nobody Curated")

	first, err := f.GenerateQuiz(context.Background(), meta)
	if err != nil {
		t.Fatalf("first GenerateQuiz: %v", err)
	}
	second, err := f.GenerateQuiz(context.Background(), meta)
	if err != nil {
		t.Fatalf("second GenerateQuiz: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("fallback quiz is not deterministic for identical metadata")
	}
}

func TestFallbackMotionCurated(t *testing.T) {
	f := NewFallback()
	payload, err := f.GenerateQuiz(context.Background(), physicsMeta("Motion"))
	if err != nil {
		t.Fatalf("GenerateQuiz: %v", err)
	}

	if got := payload.Questions[0].Q; got != "What is the definition of motion in Physics?" {
		t.Errorf("first question prompt = %q, subject not substituted", got)
	}
	if got := payload.Questions[1].Answer; got != "Speed with direction" {
		t.Errorf("velocity answer = %q", got)
	}
}

func TestFallbackQuizSubjectOptionsDistinct(t *testing.T) {
	f := NewFallback()
	// A subject that collides with one of the fixed decoy options.
	meta := model.ChapterMeta{
		ID: "c4", ChapterName: "Sets", SubjectName: "Mathematics", ClassNumber: 11, BoardName: "CBSE",
	}

	payload, err := f.GenerateQuiz(context.Background(), meta)
	if err != nil {
		t.Fatalf("GenerateQuiz: %v", err)
	}
	if err := payload.Validate(); err != nil {
		t.Errorf("colliding subject produced invalid payload: %v", err)
	}
}

func TestFallbackGenericQuizGradeOption(t *testing.T) {
	f := NewFallback()
	meta := physicsMeta("Some Chapter Nobody Curated")

	payload, err := f.GenerateQuiz(context.Background(), meta)
	if err != nil {
		t.Fatalf("GenerateQuiz: %v", err)
	}

	want := fmt.Sprintf("Grade %d", meta.ClassNumber)
	if got := payload.Questions[1].Answer; got != want {
		t.Errorf("grade question answer = %q, want %q", got, want)
	}
}

func TestFallbackVideo(t *testing.T) {
	f := NewFallback()

	tests := []struct {
		chapter string
		wantURL string
	}{
		{"Motion", curatedVideos["Motion"]},
		{"Sound", curatedVideos["Sound"]},
		{"Some Chapter Nobody Curated", defaultVideoURL},
	}

	for _, tt := range tests {
		payload, err := f.GenerateVideo(context.Background(), physicsMeta(tt.chapter))
		if err != nil {
			t.Fatalf("GenerateVideo(%q): %v", tt.chapter, err)
		}
		if payload.VideoURL != tt.wantURL {
			t.Errorf("GenerateVideo(%q) URL = %q, want %q", tt.chapter, payload.VideoURL, tt.wantURL)
		}
		if payload.Duration != VideoDuration {
			t.Errorf("GenerateVideo(%q) duration = %d, want %d", tt.chapter, payload.Duration, VideoDuration)
		}
		if payload.Script == "" {
			t.Errorf("GenerateVideo(%q) produced an empty script", tt.chapter)
		}
	}
}
