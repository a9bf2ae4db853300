package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Imran-Rifat/Solo-leveling-backend/internal/advisor"
)

// maxUploadBytes bounds the in-memory portion of a CV upload.
const maxUploadBytes = 10 << 20

// RoadmapRequest is the body for /api/ai/generate-roadmap.
type RoadmapRequest struct {
	Career          string             `json:"career"`
	ExperienceLevel string             `json:"experience_level"`
	UserName        string             `json:"user_name"`
	UserSkills      []advisor.SkillRef `json:"user_skills"`
	TimeframeWeeks  int                `json:"timeframe_weeks" validate:"gte=0"`
}

// InsightsRequest is the body for /api/dashboard/insights.
type InsightsRequest struct {
	UserID      string              `json:"user_id"`
	UserProfile advisor.UserProfile `json:"user_profile"`
	Progress    map[string]any      `json:"progress"`
}

// JobMatchRequest is the body for /api/jobs/match.
type JobMatchRequest struct {
	Skills     []advisor.SkillRef `json:"skills"`
	Career     string             `json:"career"`
	Experience string             `json:"experience"`
}

// LessonRequest is the body for /api/learning/generate-lesson.
type LessonRequest struct {
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
	Language   string `json:"language"`
}

// analyzeForm carries the validated multipart fields of /api/skills/analyze.
type analyzeForm struct {
	TargetCareer string `validate:"required"`
}

// handleHealth returns service health.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// handleCareerList returns the static career catalog.
func (s *Server) handleCareerList(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"careers": s.catalog.List(),
	})
}

// handleAnalyzeSkills accepts a CV upload and target career and returns the
// AI analysis. Validation failures are the only errors the caller sees;
// generation failures are absorbed into a fallback analysis upstream.
func (s *Server) handleAnalyzeSkills(w http.ResponseWriter, r *http.Request) {
	log.Println("Starting AI CV analysis...")

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No file uploaded")
		return
	}

	file, header, err := r.FormFile("cv")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer func() { _ = file.Close() }()

	if header.Filename == "" {
		s.errorResponse(w, http.StatusBadRequest, "No file selected")
		return
	}

	form := analyzeForm{TargetCareer: r.FormValue("target_career")}
	if err := s.validate.Struct(form); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No target career selected")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Analysis failed: "+err.Error())
		return
	}

	log.Printf("Processing CV for career: %s", form.TargetCareer)

	analysis, err := s.advisor.AnalyzeUpload(r.Context(), header.Filename, data, form.TargetCareer)
	if err != nil {
		var ve *advisor.ValidationError
		if errors.As(err, &ve) {
			s.errorResponse(w, http.StatusBadRequest, ve.Message)
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Analysis failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"user_id":       "user_" + uuid.NewString(),
		"target_career": form.TargetCareer,
		"analysis":      analysis,
		"success":       true,
	})
}

// roadmapResponse spreads the roadmap fields at the top level next to the
// success flag.
type roadmapResponse struct {
	Success bool `json:"success"`
	*advisor.Roadmap
}

// handleGenerateRoadmap returns an AI learning roadmap.
func (s *Server) handleGenerateRoadmap(w http.ResponseWriter, r *http.Request) {
	var req RoadmapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.successErrorResponse(w, http.StatusInternalServerError, "Failed to generate roadmap: "+err.Error())
		return
	}

	if err := s.validate.Struct(req); err != nil {
		s.successErrorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	// Defaults mirror the API contract: every field is optional.
	if req.Career == "" {
		req.Career = "fullstack"
	}
	if req.ExperienceLevel == "" {
		req.ExperienceLevel = "beginner"
	}
	if req.UserName == "" {
		req.UserName = "Student"
	}
	if req.TimeframeWeeks == 0 {
		req.TimeframeWeeks = 24
	}

	roadmap := s.advisor.GenerateRoadmap(r.Context(), advisor.RoadmapParams{
		Career:          req.Career,
		ExperienceLevel: req.ExperienceLevel,
		UserName:        req.UserName,
		UserSkills:      req.UserSkills,
		TimeframeWeeks:  req.TimeframeWeeks,
	})

	log.Printf("Roadmap generated successfully for %s", req.Career)
	s.jsonResponse(w, http.StatusOK, roadmapResponse{Success: true, Roadmap: roadmap})
}

// handleDashboardInsights returns personalized dashboard insights.
func (s *Server) handleDashboardInsights(w http.ResponseWriter, r *http.Request) {
	var req InsightsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.successErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	insights := s.advisor.GenerateInsights(r.Context(), req.UserProfile, req.Progress)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":  true,
		"insights": insights,
	})
}

// handleMatchJobs returns AI job matches. Failures of any kind degrade to an
// empty match list rather than an error.
func (s *Server) handleMatchJobs(w http.ResponseWriter, r *http.Request) {
	var req JobMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Job matching failed: %v", err)
		s.jsonResponse(w, http.StatusOK, map[string]any{"matched_jobs": []advisor.JobMatch{}})
		return
	}

	if req.Experience == "" {
		req.Experience = "beginner"
	}

	jobs := s.advisor.MatchJobs(r.Context(), req.Skills, req.Career, req.Experience)
	if jobs == nil {
		jobs = []advisor.JobMatch{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"matched_jobs": jobs})
}

// handleGenerateLesson returns AI lesson content.
func (s *Server) handleGenerateLesson(w http.ResponseWriter, r *http.Request) {
	var req LessonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if req.Topic == "" {
		req.Topic = "Programming Basics"
	}
	if req.Difficulty == "" {
		req.Difficulty = "beginner"
	}
	if req.Language == "" {
		req.Language = "JavaScript"
	}

	lesson := s.advisor.GenerateLesson(r.Context(), req.Topic, req.Difficulty, req.Language)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"lesson":  lesson,
	})
}

// successErrorResponse writes the {"success": false, "error": ...} envelope
// used by the roadmap and insights endpoints.
func (s *Server) successErrorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]any{
		"success": false,
		"error":   message,
	})
}
