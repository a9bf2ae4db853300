package advisor

import (
	"context"
	"strconv"

	"github.com/Imran-Rifat/Solo-leveling-backend/internal/llm"
	"github.com/Imran-Rifat/Solo-leveling-backend/internal/prompts"
)

const roadmapPersona = "You are an expert career advisor and learning path designer. Create practical, actionable learning roadmaps for tech careers."

// RoadmapParams are the generate-roadmap inputs after defaulting.
type RoadmapParams struct {
	Career          string
	ExperienceLevel string
	UserName        string
	UserSkills      []SkillRef
	TimeframeWeeks  int
}

// GenerateRoadmap produces a phased learning plan for the target career. The
// career id is echoed back on the result. On any recoverable failure it
// returns the deterministic fallback.
func (a *Advisor) GenerateRoadmap(ctx context.Context, params RoadmapParams) *Roadmap {
	profile := a.catalog.Lookup(params.Career)

	prompt := prompts.Format(prompts.MustGet("generate_roadmap"), map[string]string{
		"UserName":        params.UserName,
		"ExperienceLevel": params.ExperienceLevel,
		"CareerTitle":     profile.Title,
		"SkillsText":      skillNames(params.UserSkills, "No specific skills identified"),
		"TimeframeWeeks":  strconv.Itoa(params.TimeframeWeeks),
		"Skills":          joinComma(profile.Skills),
		"Languages":       joinComma(profile.Languages),
	})

	var roadmap Roadmap
	err := a.generateJSON(ctx, llm.Request{
		System:      roadmapPersona,
		Prompt:      prompt,
		Temperature: 0.7,
		MaxTokens:   3000,
	}, "roadmap", &roadmap)
	if err != nil {
		logRecoverable("roadmap", err)
		return a.fallbackRoadmap(params.Career, params.ExperienceLevel, params.UserName)
	}

	roadmap.Career = params.Career
	return &roadmap
}
