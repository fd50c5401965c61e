package generator

import (
	"context"
	"fmt"
	"strings"

	"vidya_backend/internal/model"
)

// Fallback synthesizes content from chapter metadata alone. It performs no
// network calls and always succeeds, which is what lets the chain guarantee
// that content endpoints never come back empty.
type Fallback struct{}

func NewFallback() *Fallback {
	return &Fallback{}
}

func (f *Fallback) Name() string { return "fallback" }

// Curated question sets for chapters we ship seed data for, keyed by exact
// chapter title.
var curatedQuizzes = map[string][]Question{
	"Motion": {
		{
			Q: "What is the definition of motion in %s?",
			Options: []string{
				"Change in position over time",
				"Speed of an object",
				"Force applied to an object",
				"Distance traveled",
			},
			Answer: "Change in position over time",
		},
		{
			Q: "What is velocity?",
			Options: []string{
				"Speed of an object",
				"Speed with direction",
				"Distance traveled",
				"Time taken",
			},
			Answer: "Speed with direction",
		},
		{
			Q: "What is acceleration?",
			Options: []string{
				"Speed of an object",
				"Change in velocity over time",
				"Distance traveled",
				"Force applied",
			},
			Answer: "Change in velocity over time",
		},
		{
			Q: "What is the unit of velocity?",
			Options: []string{
				"m/s²",
				"m/s",
				"kg",
				"N",
			},
			Answer: "m/s",
		},
		{
			Q: "What is uniform motion?",
			Options: []string{
				"Motion with changing speed",
				"Motion with constant speed",
				"Motion with acceleration",
				"Motion at rest",
			},
			Answer: "Motion with constant speed",
		},
	},
	"Force and Laws of Motion": {
		{
			Q: "What is Newton's First Law of Motion?",
			Options: []string{
				"F = ma",
				"Every action has an equal and opposite reaction",
				"An object at rest stays at rest unless acted upon",
				"Force equals mass times acceleration",
			},
			Answer: "An object at rest stays at rest unless acted upon",
		},
		{
			Q: "What is the formula for force?",
			Options: []string{
				"F = mv",
				"F = ma",
				"F = m/a",
				"F = v/t",
			},
			Answer: "F = ma",
		},
		{
			Q: "What is inertia?",
			Options: []string{
				"Force applied to an object",
				"Resistance to change in motion",
				"Speed of an object",
				"Mass of an object",
			},
			Answer: "Resistance to change in motion",
		},
		{
			Q: "What is the unit of force?",
			Options: []string{
				"kg",
				"m/s",
				"N (Newton)",
				"J",
			},
			Answer: "N (Newton)",
		},
		{
			Q: "What is Newton's Third Law?",
			Options: []string{
				"F = ma",
				"Every action has an equal and opposite reaction",
				"An object at rest stays at rest",
				"Force equals mass times acceleration",
			},
			Answer: "Every action has an equal and opposite reaction",
		},
	},
}

func (f *Fallback) GenerateQuiz(ctx context.Context, meta model.ChapterMeta) (*QuizPayload, error) {
	if curated, ok := curatedQuizzes[meta.ChapterName]; ok {
		questions := make([]Question, len(curated))
		copy(questions, curated)
		// The first curated Motion question embeds the subject name.
		for i := range questions {
			questions[i].Q = formatPrompt(questions[i].Q, meta.SubjectName)
		}
		return &QuizPayload{Questions: questions}, nil
	}

	questions := []Question{
		{
			Q: fmt.Sprintf("What is the main topic of %s in %s?", meta.ChapterName, meta.SubjectName),
			Options: []string{
				"A fundamental concept",
				"An advanced topic",
				"A simple idea",
				"A complex theory",
			},
			Answer: "A fundamental concept",
		},
		{
			Q: "Which grade level is this chapter appropriate for?",
			Options: []string{
				"Primary school",
				fmt.Sprintf("Grade %d", meta.ClassNumber),
				"High school",
				"College",
			},
			Answer: fmt.Sprintf("Grade %d", meta.ClassNumber),
		},
		{
			Q: "What subject does this chapter belong to?",
			Options: distinctOptions([]string{
				"Mathematics",
				meta.SubjectName,
				"Science",
				"English",
			}, meta.SubjectName),
			Answer: meta.SubjectName,
		},
		{
			Q: fmt.Sprintf("What is the purpose of studying %s?", meta.ChapterName),
			Options: []string{
				"To understand basic concepts",
				"To learn advanced topics",
				"To memorize facts",
				"To solve complex problems",
			},
			Answer: "To understand basic concepts",
		},
		{
			Q: fmt.Sprintf("How important is %s for grade %d students?", meta.ChapterName, meta.ClassNumber),
			Options: []string{
				"Very important",
				"Somewhat important",
				"Not important",
				"Optional",
			},
			Answer: "Very important",
		},
	}

	return &QuizPayload{Questions: questions}, nil
}

// Canned video assets for known chapters; anything else gets the default.
var curatedVideos = map[string]string{
	"Motion":                   "https://sample-videos.com/zip/10/mp4/SampleVideo_1280x720_1mb.mp4",
	"Force and Laws of Motion": "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
	"Gravitation":              "https://sample-videos.com/zip/10/mp4/SampleVideo_1280x720_2mb.mp4",
	"Work and Energy":          "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
	"Sound":                    "https://sample-videos.com/zip/10/mp4/SampleVideo_1280x720_5mb.mp4",
}

const defaultVideoURL = "https://sample-videos.com/zip/10/mp4/SampleVideo_1280x720_1mb.mp4"

var curatedScripts = map[string]string{
	"Motion": `Welcome to our lesson on Motion!

Motion is when something changes its position over time. Imagine you're walking to school - you're in motion!

There are different types of motion:
- Linear motion: moving in a straight line
- Circular motion: moving in a circle
- Random motion: moving in no particular pattern

Speed tells us how fast something is moving. If you run faster than you walk, you have more speed!

Velocity is speed with direction. If you're running north at 5 meters per second, that's your velocity.

Acceleration is when your speed changes. When you start running, you accelerate!

Remember: Motion is all around us - from cars on the road to planets in space. Understanding motion helps us understand how our world works!`,
	"Force and Laws of Motion": `Let's learn about Force and Laws of Motion!

Force is a push or pull that can make things move, stop, or change direction. When you kick a ball, you're applying force!

Newton's First Law says: Objects at rest stay at rest, and objects in motion stay in motion, unless acted upon by a force.

This is called inertia - the tendency to resist change. A heavy box is hard to push because it has more inertia!

Newton's Second Law: Force equals mass times acceleration (F = ma). The more force you apply, the more acceleration you get!

Newton's Third Law: For every action, there's an equal and opposite reaction. When you jump, you push down on the ground, and the ground pushes back up!

Forces are everywhere - gravity pulls us down, friction slows us down, and our muscles push and pull to help us move!`,
}

func (f *Fallback) GenerateVideo(ctx context.Context, meta model.ChapterMeta) (*VideoPayload, error) {
	url, ok := curatedVideos[meta.ChapterName]
	if !ok {
		url = defaultVideoURL
	}

	script, ok := curatedScripts[meta.ChapterName]
	if !ok {
		script = fmt.Sprintf(`Welcome to our lesson on %[1]s!

Today we'll learn about %[1]s in %[2]s. This is an important topic for grade %[3]d students.

Key concepts we'll cover:
- Basic definitions and terms
- Important principles and laws
- Real-world examples and applications
- How this relates to your daily life

%[1]s is fundamental to understanding %[2]s. By the end of this lesson, you'll have a clear understanding of these concepts.

Let's start exploring %[1]s together!`, meta.ChapterName, meta.SubjectName, meta.ClassNumber)
	}

	return &VideoPayload{
		Script:   script,
		VideoURL: url,
		Duration: VideoDuration,
	}, nil
}

// formatPrompt substitutes the subject name into curated prompts that carry
// a %s placeholder.
func formatPrompt(prompt, subject string) string {
	if strings.Contains(prompt, "%s") {
		return fmt.Sprintf(prompt, subject)
	}
	return prompt
}

// distinctOptions replaces any duplicate of answer among the fixed decoys so
// the option set stays free of duplicates (e.g. a chapter whose subject is
// literally "Mathematics").
func distinctOptions(options []string, answer string) []string {
	out := make([]string, 0, len(options))
	replacements := []string{"General Science", "Social Studies", "Environmental Studies"}
	ri := 0
	seenAnswer := false
	for _, opt := range options {
		if opt == answer {
			if seenAnswer {
				out = append(out, replacements[ri])
				ri++
				continue
			}
			seenAnswer = true
		}
		out = append(out, opt)
	}
	return out
}
