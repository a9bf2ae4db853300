package advisor

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/Imran-Rifat/Solo-leveling-backend/internal/ingestion"
	"github.com/Imran-Rifat/Solo-leveling-backend/internal/llm"
	"github.com/Imran-Rifat/Solo-leveling-backend/internal/prompts"
)

// minCVTextLength is the minimum extracted text length for a CV to be worth
// analyzing. Unparseable documents never trip it since extraction substitutes
// a placeholder; only genuinely empty uploads do.
const minCVTextLength = 50

const analysisPersona = "You are an expert career advisor and technical recruiter. Provide accurate, realistic career transition analysis."

// AnalyzeUpload extracts text from an uploaded CV and runs the analysis
// pipeline. It returns a *ValidationError when the document yields too little
// text; generation failures are absorbed into the fallback and never returned.
func (a *Advisor) AnalyzeUpload(ctx context.Context, filename string, data []byte, targetCareer string) (*AnalysisResult, error) {
	cvText := ingestion.Extract(filename, data)
	if len(strings.TrimSpace(cvText)) < minCVTextLength {
		return nil, &ValidationError{Field: "cv", Message: "Could not extract meaningful text from CV"}
	}
	return a.AnalyzeCV(ctx, cvText, targetCareer), nil
}

// AnalyzeCV generates a skills-gap analysis of cvText against the target
// career. On any recoverable failure it returns the deterministic fallback.
func (a *Advisor) AnalyzeCV(ctx context.Context, cvText, targetCareer string) *AnalysisResult {
	profile := a.catalog.Lookup(targetCareer)

	prompt := prompts.Format(prompts.MustGet("analyze_cv"), map[string]string{
		"CVText":      truncate(cvText, maxCVChars),
		"CareerTitle": profile.Title,
		"Skills":      joinComma(profile.Skills),
		"Languages":   joinComma(profile.Languages),
	})

	var result AnalysisResult
	err := a.generateJSON(ctx, llm.Request{
		System:      analysisPersona,
		Prompt:      prompt,
		Temperature: 0.3,
		MaxTokens:   2000,
	}, "analysis", &result)
	if err != nil {
		logRecoverable("CV analysis", err)
		return a.fallbackAnalysis(targetCareer)
	}

	return &result
}

// logRecoverable records a generation failure that is being absorbed by a
// fallback. Recoverable error types are expected here; anything else would
// indicate a pipeline bug.
func logRecoverable(useCase string, err error) {
	var ce *CompletionError
	var pe *ParseError
	var se *SchemaError
	if errors.As(err, &ce) || errors.As(err, &pe) || errors.As(err, &se) {
		log.Printf("%s generation failed, using fallback: %v", useCase, err)
		return
	}
	log.Printf("%s generation failed with unexpected error, using fallback: %v", useCase, err)
}
