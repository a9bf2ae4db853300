package advisor

// The response shapes below are shared by the model path and the fallback
// path: a caller cannot tell from the structure which one produced a result.

// SkillAssessment is one skill the candidate already shows evidence of.
type SkillAssessment struct {
	Skill      string `json:"skill"`
	Level      string `json:"level"` // beginner | intermediate | advanced
	Confidence int    `json:"confidence"`
	Evidence   string `json:"evidence"`
}

// SkillGap is one skill the target career requires but the candidate lacks.
type SkillGap struct {
	Skill             string `json:"skill"`
	Importance        string `json:"importance"` // critical | high | medium | low
	Reason            string `json:"reason"`
	LearningTimeWeeks int    `json:"learning_time_weeks"`
}

// SkillsAnalysis summarizes current skills against the target career.
type SkillsAnalysis struct {
	CurrentSkills   []SkillAssessment `json:"current_skills"`
	MissingSkills   []SkillGap        `json:"missing_skills"`
	SkillGapScore   int               `json:"skill_gap_score"`
	CareerReadiness int               `json:"career_readiness"`
}

// RoadmapSummary is the condensed roadmap block inside an analysis result.
type RoadmapSummary struct {
	Overview              string `json:"overview"`
	TotalDurationWeeks    int    `json:"total_duration_weeks"`
	ReadinessScore        int    `json:"readiness_score"`
	WeeklyCommitmentHours int    `json:"weekly_commitment_hours"`
}

// CareerGuidance carries market analysis and preparation advice.
type CareerGuidance struct {
	JobMarketAnalysis    string   `json:"job_market_analysis"`
	SalaryExpectations   string   `json:"salary_expectations"`
	PortfolioProjects    []string `json:"portfolio_projects"`
	InterviewPreparation []string `json:"interview_preparation"`
}

// AnalysisResult is the full CV analysis returned by /api/skills/analyze.
type AnalysisResult struct {
	SkillsAnalysis  SkillsAnalysis `json:"skills_analysis"`
	LearningRoadmap RoadmapSummary `json:"learning_roadmap"`
	CareerGuidance  CareerGuidance `json:"career_guidance"`
}

// LearningResource is one external study resource inside a module.
type LearningResource struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Type        string `json:"type"` // tutorial | course | documentation | project
	Free        bool   `json:"free"`
	Description string `json:"description"`
}

// LearningModule is one project-based unit inside a phase.
type LearningModule struct {
	ModuleID         string             `json:"module_id"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	DurationWeeks    int                `json:"duration_weeks"`
	TechnicalSkills  []string           `json:"technical_skills"`
	LearningOutcomes []string           `json:"learning_outcomes"`
	Resources        []LearningResource `json:"resources"`
}

// LearningPhase is one stage of the roadmap, ordered fundamentals-first.
type LearningPhase struct {
	PhaseID            string           `json:"phase_id"`
	Title              string           `json:"title"`
	Description        string           `json:"description"`
	DurationWeeks      int              `json:"duration_weeks"`
	FocusAreas         []string         `json:"focus_areas"`
	LearningObjectives []string         `json:"learning_objectives"`
	Modules            []LearningModule `json:"modules"`
}

// Roadmap is the phased learning plan returned by /api/ai/generate-roadmap.
type Roadmap struct {
	Overview              string          `json:"overview"`
	TotalDurationWeeks    int             `json:"total_duration_weeks"`
	WeeklyCommitmentHours int             `json:"weekly_commitment_hours"`
	ReadinessScore        int             `json:"readiness_score"`
	Career                string          `json:"career"`
	Phases                []LearningPhase `json:"phases"`
	CareerGuidance        CareerGuidance  `json:"career_guidance"`
}

// Insights is the personalized dashboard content.
type Insights struct {
	ProgressAnalysis string   `json:"progress_analysis"`
	Recommendations  []string `json:"recommendations"`
	Motivation       string   `json:"motivation"`
	SkillFocus       []string `json:"skill_focus"`
	NextSteps        []string `json:"next_steps"`
}

// JobMatch is one suggested position.
type JobMatch struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	MatchPercentage int      `json:"match_percentage"`
	MatchingSkills  []string `json:"matching_skills"`
	MissingSkills   []string `json:"missing_skills"`
	SalaryRange     string   `json:"salary_range"`
	JobDescription  string   `json:"job_description"`
	ApplicationURL  string   `json:"application_url"`
	Tags            []string `json:"tags"`
}

// Lesson is free-form lesson content. The model is not bound to a fixed
// lesson layout, so it stays a map rather than a struct.
type Lesson map[string]any

// SkillRef is how callers reference a named skill in request bodies.
type SkillRef struct {
	Skill string `json:"skill"`
}

// skillNames joins skill references for prompt interpolation, substituting
// defaultText when the list is empty.
func skillNames(skills []SkillRef, defaultText string) string {
	if len(skills) == 0 {
		return defaultText
	}
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Skill)
	}
	return joinComma(names)
}
