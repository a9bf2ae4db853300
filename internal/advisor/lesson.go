package advisor

import (
	"context"

	"github.com/Imran-Rifat/Solo-leveling-backend/internal/llm"
	"github.com/Imran-Rifat/Solo-leveling-backend/internal/prompts"
)

const lessonPersona = "You are an expert programming instructor. Create engaging, educational content."

// GenerateLesson produces lesson content for a topic. The lesson layout is
// model-defined, so only "is it a JSON object" is enforced. On any
// recoverable failure it returns the deterministic fallback.
func (a *Advisor) GenerateLesson(ctx context.Context, topic, difficulty, language string) Lesson {
	prompt := prompts.Format(prompts.MustGet("generate_lesson"), map[string]string{
		"Topic":      topic,
		"Difficulty": difficulty,
		"Language":   language,
	})

	var lesson Lesson
	err := a.generateJSON(ctx, llm.Request{
		System:      lessonPersona,
		Prompt:      prompt,
		Temperature: 0.3,
		MaxTokens:   2500,
	}, "lesson", &lesson)
	if err != nil {
		logRecoverable("lesson", err)
		return a.fallbackLesson(topic, language)
	}

	return lesson
}
