package advisor

import (
	"context"
	"encoding/json"

	"github.com/Imran-Rifat/Solo-leveling-backend/internal/llm"
	"github.com/Imran-Rifat/Solo-leveling-backend/internal/prompts"
)

const insightsPersona = "You are an encouraging learning coach. Provide personalized, actionable insights."

// UserProfile is the caller-supplied profile block for dashboard insights.
type UserProfile struct {
	Career     string `json:"career"`
	Experience string `json:"experience"`
}

// GenerateInsights produces personalized progress insights. On any
// recoverable failure it returns the deterministic fallback.
func (a *Advisor) GenerateInsights(ctx context.Context, profile UserProfile, progress map[string]any) *Insights {
	careerProfile := a.catalog.Lookup(profile.Career)

	experience := profile.Experience
	if experience == "" {
		experience = "beginner"
	}

	progressJSON, err := json.Marshal(progress)
	if err != nil {
		progressJSON = []byte("{}")
	}

	prompt := prompts.Format(prompts.MustGet("generate_insights"), map[string]string{
		"CareerTitle": careerProfile.Title,
		"Experience":  experience,
		"Progress":    string(progressJSON),
	})

	var insights Insights
	err = a.generateJSON(ctx, llm.Request{
		System:      insightsPersona,
		Prompt:      prompt,
		Temperature: 0.7,
		MaxTokens:   1500,
	}, "insights", &insights)
	if err != nil {
		logRecoverable("insights", err)
		return a.fallbackInsights()
	}

	return &insights
}
