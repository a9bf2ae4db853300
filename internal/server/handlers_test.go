package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/Imran-Rifat/Solo-leveling-backend/internal/advisor"
	"github.com/Imran-Rifat/Solo-leveling-backend/internal/catalog"
	"github.com/Imran-Rifat/Solo-leveling-backend/internal/llm"
)

// stubLLM implements llm.Client for handler tests.
type stubLLM struct {
	response string
	err      error
}

func (s *stubLLM) Complete(_ context.Context, _ llm.Request) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubLLM) Close() error { return nil }

// newTestServer builds a server around a stubbed completion client.
func newTestServer(stub llm.Client) *Server {
	cat := catalog.New()
	return &Server{
		advisor:   advisor.New(stub, cat),
		catalog:   cat,
		llmClient: stub,
		validate:  validator.New(),
	}
}

func failingServer() *Server {
	return newTestServer(&stubLLM{err: errors.New("provider unavailable")})
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response %q: %v", w.Body.String(), err)
	}
	return resp
}

func multipartCV(t *testing.T, filename string, content []byte, targetCareer string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if filename != "" {
		fw, err := mw.CreateFormFile("cv", filename)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write(content); err != nil {
			t.Fatal(err)
		}
	}
	if targetCareer != "" {
		if err := mw.WriteField("target_career", targetCareer); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, mw.FormDataContentType()
}

func TestHealth(t *testing.T) {
	w := doJSON(t, failingServer(), http.MethodGet, "/api/health", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	resp := decodeBody(t, w)
	if resp["status"] != "healthy" {
		t.Errorf("status field = %v", resp["status"])
	}
	if resp["timestamp"] == "" {
		t.Error("timestamp missing")
	}
}

func TestCareerList_StaticAndOrdered(t *testing.T) {
	// A failing provider must not affect the static catalog endpoint.
	w := doJSON(t, failingServer(), http.MethodGet, "/api/careers/list", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	resp := decodeBody(t, w)
	careers, ok := resp["careers"].([]any)
	if !ok {
		t.Fatalf("careers field = %T", resp["careers"])
	}

	want := []string{"fullstack", "frontend", "backend", "datascience", "machinelearning", "mobile", "devops"}
	if len(careers) != len(want) {
		t.Fatalf("got %d careers, want %d", len(careers), len(want))
	}
	for i, c := range careers {
		entry := c.(map[string]any)
		if entry["id"] != want[i] {
			t.Errorf("careers[%d].id = %v, want %q", i, entry["id"], want[i])
		}
		if entry["name"] == "" || entry["average_salary_range"] == "" {
			t.Errorf("careers[%d] incomplete: %v", i, entry)
		}
	}
}

const validAnalysisJSON = `{
	"skills_analysis": {
		"current_skills": [{"skill": "Go", "level": "advanced", "confidence": 90, "evidence": "built services"}],
		"missing_skills": [],
		"skill_gap_score": 40,
		"career_readiness": 72
	},
	"learning_roadmap": {"overview": "keep going", "total_duration_weeks": 12, "readiness_score": 72, "weekly_commitment_hours": 10},
	"career_guidance": {"job_market_analysis": "good", "salary_expectations": "$90k", "portfolio_projects": [], "interview_preparation": []}
}`

func TestAnalyzeSkills_EndToEnd(t *testing.T) {
	s := newTestServer(&stubLLM{response: validAnalysisJSON})

	cv := []byte(strings.Repeat("Experienced backend engineer. ", 7)) // ~200 chars
	body, contentType := multipartCV(t, "resume.txt", cv, "backend")

	req := httptest.NewRequest(http.MethodPost, "/api/skills/analyze", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	resp := decodeBody(t, w)
	if resp["success"] != true {
		t.Error("success flag not set")
	}
	if resp["target_career"] != "backend" {
		t.Errorf("target_career = %v", resp["target_career"])
	}
	userID, _ := resp["user_id"].(string)
	if !strings.HasPrefix(userID, "user_") {
		t.Errorf("user_id = %q", userID)
	}

	analysis := resp["analysis"].(map[string]any)
	skillsAnalysis := analysis["skills_analysis"].(map[string]any)
	readiness, ok := skillsAnalysis["career_readiness"].(float64)
	if !ok {
		t.Fatalf("career_readiness = %T", skillsAnalysis["career_readiness"])
	}
	if readiness != float64(int(readiness)) || readiness < 0 || readiness > 100 {
		t.Errorf("career_readiness = %v, want integer in [0,100]", readiness)
	}
}

func TestAnalyzeSkills_UniqueUserIDs(t *testing.T) {
	s := newTestServer(&stubLLM{response: validAnalysisJSON})

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		cv := []byte(strings.Repeat("Engineer with plenty of experience. ", 5))
		body, contentType := multipartCV(t, "resume.txt", cv, "backend")
		req := httptest.NewRequest(http.MethodPost, "/api/skills/analyze", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		s.routes().ServeHTTP(w, req)

		userID := decodeBody(t, w)["user_id"].(string)
		if seen[userID] {
			t.Fatalf("duplicate user_id %q", userID)
		}
		seen[userID] = true
	}
}

func TestAnalyzeSkills_EmptyFileRejected(t *testing.T) {
	s := newTestServer(&stubLLM{response: validAnalysisJSON})

	body, contentType := multipartCV(t, "empty.txt", nil, "backend")
	req := httptest.NewRequest(http.MethodPost, "/api/skills/analyze", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if decodeBody(t, w)["error"] == "" {
		t.Error("error field missing")
	}
}

func TestAnalyzeSkills_MissingInputs(t *testing.T) {
	s := newTestServer(&stubLLM{response: validAnalysisJSON})

	tests := []struct {
		name         string
		filename     string
		content      []byte
		targetCareer string
	}{
		{"no file", "", nil, "backend"},
		{"no career", "resume.txt", []byte(strings.Repeat("text ", 30)), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, contentType := multipartCV(t, tt.filename, tt.content, tt.targetCareer)
			req := httptest.NewRequest(http.MethodPost, "/api/skills/analyze", body)
			req.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()
			s.routes().ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestAnalyzeSkills_ProviderFailureStillSucceeds(t *testing.T) {
	s := failingServer()

	cv := []byte(strings.Repeat("Long enough résumé content. ", 10))
	body, contentType := multipartCV(t, "resume.txt", cv, "frontend")
	req := httptest.NewRequest(http.MethodPost, "/api/skills/analyze", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 despite provider failure", w.Code)
	}
	resp := decodeBody(t, w)
	if resp["success"] != true {
		t.Error("success flag not set on fallback path")
	}
	analysis := resp["analysis"].(map[string]any)
	if _, ok := analysis["skills_analysis"].(map[string]any); !ok {
		t.Error("fallback analysis missing skills_analysis block")
	}
}

func TestGenerateRoadmap_ProviderFailureStillSucceeds(t *testing.T) {
	w := doJSON(t, failingServer(), http.MethodPost, "/api/ai/generate-roadmap", map[string]any{
		"career": "devops",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	resp := decodeBody(t, w)
	if resp["success"] != true {
		t.Error("success flag not set")
	}
	if resp["career"] != "devops" {
		t.Errorf("career = %v", resp["career"])
	}
	phases, ok := resp["phases"].([]any)
	if !ok || len(phases) == 0 {
		t.Fatalf("phases = %v, want non-empty array", resp["phases"])
	}
}

func TestGenerateRoadmap_FieldsSpreadAtTopLevel(t *testing.T) {
	stub := &stubLLM{response: `{
		"overview": "the plan",
		"total_duration_weeks": 24,
		"weekly_commitment_hours": 15,
		"readiness_score": 61,
		"phases": [{"phase_id": "phase_1", "title": "Basics", "modules": []}],
		"career_guidance": {"job_market_analysis": "ok", "salary_expectations": "$x", "portfolio_projects": [], "interview_preparation": []}
	}`}
	w := doJSON(t, newTestServer(stub), http.MethodPost, "/api/ai/generate-roadmap", map[string]any{
		"career":           "backend",
		"experience_level": "intermediate",
		"user_name":        "Alex",
		"timeframe_weeks":  24,
	})

	resp := decodeBody(t, w)
	if resp["overview"] != "the plan" {
		t.Errorf("overview not spread at top level: %v", resp["overview"])
	}
	if resp["success"] != true {
		t.Error("success flag missing")
	}
	if _, nested := resp["roadmap"]; nested {
		t.Error("roadmap should not be nested under its own key")
	}
}

func TestGenerateRoadmap_NegativeTimeframeRejected(t *testing.T) {
	w := doJSON(t, failingServer(), http.MethodPost, "/api/ai/generate-roadmap", map[string]any{
		"career":          "backend",
		"timeframe_weeks": -3,
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	resp := decodeBody(t, w)
	if resp["success"] != false {
		t.Error("success should be false")
	}
}

func TestDashboardInsights_ProviderFailureStillSucceeds(t *testing.T) {
	w := doJSON(t, failingServer(), http.MethodPost, "/api/dashboard/insights", map[string]any{
		"user_id":      "user_abc",
		"user_profile": map[string]any{"career": "datascience", "experience": "beginner"},
		"progress":     map[string]any{"completed_modules": 2},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	resp := decodeBody(t, w)
	if resp["success"] != true {
		t.Error("success flag not set")
	}
	insights, ok := resp["insights"].(map[string]any)
	if !ok {
		t.Fatalf("insights = %T", resp["insights"])
	}
	if insights["progress_analysis"] == "" || insights["motivation"] == "" {
		t.Error("insights incomplete")
	}
}

func TestMatchJobs_ProviderFailureFallsBackToMatches(t *testing.T) {
	w := doJSON(t, failingServer(), http.MethodPost, "/api/jobs/match", map[string]any{
		"skills":     []map[string]string{{"skill": "Python"}},
		"career":     "datascience",
		"experience": "beginner",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	resp := decodeBody(t, w)
	jobs, ok := resp["matched_jobs"].([]any)
	if !ok {
		t.Fatalf("matched_jobs = %T", resp["matched_jobs"])
	}
	if len(jobs) == 0 {
		t.Fatal("fallback should still produce matches")
	}
	job := jobs[0].(map[string]any)
	if job["title"] == "" || job["company"] == "" {
		t.Errorf("job incomplete: %v", job)
	}
}

func TestMatchJobs_BadBodyYieldsEmptyList(t *testing.T) {
	s := failingServer()
	req := httptest.NewRequest(http.MethodPost, "/api/jobs/match", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	resp := decodeBody(t, w)
	jobs, ok := resp["matched_jobs"].([]any)
	if !ok || len(jobs) != 0 {
		t.Errorf("matched_jobs = %v, want empty array", resp["matched_jobs"])
	}
}

func TestGenerateLesson_ProviderFailureStillSucceeds(t *testing.T) {
	w := doJSON(t, failingServer(), http.MethodPost, "/api/learning/generate-lesson", map[string]any{
		"topic":      "Pointers",
		"difficulty": "beginner",
		"language":   "Go",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	resp := decodeBody(t, w)
	if resp["success"] != true {
		t.Error("success flag not set")
	}
	lesson, ok := resp["lesson"].(map[string]any)
	if !ok {
		t.Fatalf("lesson = %T", resp["lesson"])
	}
	if lesson["title"] != "Pointers in Go" {
		t.Errorf("fallback lesson title = %v", lesson["title"])
	}
}

func TestGenerateLesson_DefaultsApplied(t *testing.T) {
	w := doJSON(t, failingServer(), http.MethodPost, "/api/learning/generate-lesson", map[string]any{})

	resp := decodeBody(t, w)
	lesson := resp["lesson"].(map[string]any)
	if lesson["title"] != "Programming Basics in JavaScript" {
		t.Errorf("defaults not applied: %v", lesson["title"])
	}
}

func TestCORSHeaders(t *testing.T) {
	s := failingServer()
	handler := s.withCORS(s.routes())

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}

	// Preflight short-circuits before routing.
	req = httptest.NewRequest(http.MethodOptions, "/api/jobs/match", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("OPTIONS status = %d", w.Code)
	}
}
