package advisor

import (
	"context"

	"github.com/Imran-Rifat/Solo-leveling-backend/internal/llm"
	"github.com/Imran-Rifat/Solo-leveling-backend/internal/prompts"
)

const jobsPersona = "You are a technical recruiter. Generate realistic job matches based on skills and experience."

// MatchJobs produces realistic job matches for the given skills and career.
// On any recoverable failure it returns the deterministic fallback matches.
func (a *Advisor) MatchJobs(ctx context.Context, skills []SkillRef, career, experience string) []JobMatch {
	profile := a.catalog.Lookup(career)

	prompt := prompts.Format(prompts.MustGet("match_jobs"), map[string]string{
		"Experience":  experience,
		"CareerTitle": profile.Title,
		"SkillsText":  skillNames(skills, "Basic programming skills"),
	})

	var result struct {
		MatchedJobs []JobMatch `json:"matched_jobs"`
	}
	err := a.generateJSON(ctx, llm.Request{
		System:      jobsPersona,
		Prompt:      prompt,
		Temperature: 0.7,
		MaxTokens:   2000,
	}, "jobs", &result)
	if err != nil {
		logRecoverable("job matching", err)
		return a.fallbackJobs(career, experience)
	}

	return result.MatchedJobs
}
