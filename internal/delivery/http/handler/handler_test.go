package handler

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http/httptest"
	"testing"
	"time"

	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/domain/catalog"
	"career-compass/internal/pkg/token"
	"career-compass/internal/repository"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func testStore(t *testing.T) *catalog.Store {
	t.Helper()
	careers := []catalog.Career{
		{
			Name:        "Backend Developer",
			Description: "Builds APIs and services with Go, SQL and Docker.",
			Requirements: []catalog.Requirement{
				{Skill: "Go", Importance: 9, Category: catalog.CategoryCore, Weight: 1.0, IsRequired: true, Difficulty: catalog.DifficultyIntermediate},
				{Skill: "SQL", Importance: 8, Category: catalog.CategoryCore, Weight: 1.0, IsRequired: true, Difficulty: catalog.DifficultyIntermediate},
				{Skill: "Docker", Importance: 6, Category: catalog.CategoryIntermediate, Weight: 0.7, IsRequired: true, Difficulty: catalog.DifficultyBeginner},
			},
			Market: catalog.Market{BaseSalary: 90000, MinExperience: 2, MaxExperience: 10},
		},
		{
			Name:        "Data Analyst",
			Description: "Analyzes data with SQL and dashboards.",
			Requirements: []catalog.Requirement{
				{Skill: "SQL", Importance: 9, Category: catalog.CategoryCore, Weight: 1.0, IsRequired: true, Difficulty: catalog.DifficultyIntermediate},
				{Skill: "Excel", Importance: 7, Category: catalog.CategoryCore, Weight: 1.0, IsRequired: true, Difficulty: catalog.DifficultyBeginner},
			},
			Market: catalog.Market{BaseSalary: 70000, MinExperience: 1, MaxExperience: 8},
		},
	}
	synonyms := map[string][]string{"Go": {"golang"}}
	courses := []catalog.Course{
		{Skill: "Go", Name: "Go Fundamentals", Level: catalog.DifficultyBeginner, Platform: "Coursera", DurationHours: 20, Rating: 4.6},
	}
	store, err := catalog.NewStore(careers, synonyms, courses)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func newTestApp(t *testing.T, tokens token.Service) *fiber.App {
	t.Helper()

	src := repository.NewStaticProvider(testStore(t))

	app := fiber.New(fiber.Config{})
	errMw := middleware.NewErrorMiddleware()
	app.Use(errMw.Middleware())

	api := app.Group("/api").Group("/v1")

	NewMatchHandler(usecase.NewMatchUsecase(src, nil, nil)).RegisterRoutes(api)
	NewCareerHandler(usecase.NewCareerUsecase(src)).RegisterRoutes(api)
	NewGapHandler(usecase.NewGapUsecase(src, nil)).RegisterRoutes(api)
	NewLearningHandler(usecase.NewLearningUsecase(src, nil)).RegisterRoutes(api)
	seeded := func() *rand.Rand { return rand.New(rand.NewSource(1)) }
	NewBenchmarkHandler(usecase.NewBenchmarkUsecase(src, seeded, 6)).RegisterRoutes(api)
	NewResumeHandler(usecase.NewResumeUsecase(src, nil)).RegisterRoutes(api)

	if tokens != nil {
		authMw := middleware.NewAuthMiddleware(tokens)
		admin := api.Group("/admin", authMw.Middleware())
		admin.Post("/courses/refresh", func(c fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})
	}

	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) semanticResponse {
	t.Helper()

	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return sr
}

func TestMatchEndpoint(t *testing.T) {
	app := newTestApp(t, nil)

	sr := postJSON(t, app, "/api/v1/match", map[string]any{"skills": []string{"SQL", "Excel"}})
	if sr.Status != 200 || sr.Message != "ok" {
		t.Fatalf("status=%d message=%s", sr.Status, sr.Message)
	}

	var data struct {
		Matches []struct {
			Career string  `json:"career"`
			Score  float64 `json:"score"`
		} `json:"matches"`
	}
	if err := json.Unmarshal(sr.Data, &data); err != nil {
		t.Fatalf("data unmarshal: %v", err)
	}
	if len(data.Matches) != 2 {
		t.Fatalf("matches = %d, want 2", len(data.Matches))
	}
	if data.Matches[0].Career != "Data Analyst" {
		t.Errorf("top match = %s", data.Matches[0].Career)
	}
}

func TestMatchEndpointEmptySkills(t *testing.T) {
	app := newTestApp(t, nil)

	sr := postJSON(t, app, "/api/v1/match", map[string]any{})
	if sr.Status != 400 {
		t.Fatalf("status = %d, want 400", sr.Status)
	}
}

func TestCareerEndpoints(t *testing.T) {
	app := newTestApp(t, nil)

	req := httptest.NewRequest("GET", "/api/v1/careers", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("careers request: %v", err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sr.Status != 200 {
		t.Fatalf("status = %d", sr.Status)
	}

	var data struct {
		Careers []struct {
			Name string `json:"name"`
		} `json:"careers"`
	}
	if err := json.Unmarshal(sr.Data, &data); err != nil {
		t.Fatalf("data unmarshal: %v", err)
	}
	if len(data.Careers) != 2 {
		t.Errorf("careers = %d, want 2", len(data.Careers))
	}
}

func TestGapEndpointEscapedCareer(t *testing.T) {
	app := newTestApp(t, nil)

	sr := postJSON(t, app, "/api/v1/careers/Backend%20Developer/gap", map[string]any{"skills": []string{"golang"}})
	if sr.Status != 200 {
		t.Fatalf("status=%d message=%s", sr.Status, sr.Message)
	}

	var data struct {
		Career          string `json:"career"`
		SkillsCovered   int    `json:"skills_covered"`
		RequiredMissing []struct {
			Skill string `json:"skill"`
		} `json:"required_missing"`
	}
	if err := json.Unmarshal(sr.Data, &data); err != nil {
		t.Fatalf("data unmarshal: %v", err)
	}
	if data.Career != "Backend Developer" || data.SkillsCovered != 1 {
		t.Errorf("career=%s covered=%d", data.Career, data.SkillsCovered)
	}
	if len(data.RequiredMissing) != 2 {
		t.Errorf("required missing = %d, want 2", len(data.RequiredMissing))
	}
}

func TestGapEndpointUnknownCareer(t *testing.T) {
	app := newTestApp(t, nil)

	sr := postJSON(t, app, "/api/v1/careers/Quantum%20Plumber/gap", map[string]any{"skills": []string{"Go"}})
	if sr.Status != 404 {
		t.Fatalf("status = %d, want 404", sr.Status)
	}
}

func TestLearningPathEndpoint(t *testing.T) {
	app := newTestApp(t, nil)

	sr := postJSON(t, app, "/api/v1/careers/Backend%20Developer/learning-path", map[string]any{"skills": []string{"SQL", "Docker"}})
	if sr.Status != 200 {
		t.Fatalf("status=%d message=%s", sr.Status, sr.Message)
	}

	var data struct {
		Phases []struct {
			Skills []struct {
				Skill   string `json:"skill"`
				Courses []struct {
					Name string `json:"name"`
				} `json:"courses"`
			} `json:"skills"`
		} `json:"phases"`
		Timeline struct {
			StudyHours int `json:"study_hours"`
		} `json:"timeline"`
	}
	if err := json.Unmarshal(sr.Data, &data); err != nil {
		t.Fatalf("data unmarshal: %v", err)
	}
	if len(data.Phases) == 0 {
		t.Fatal("no phases in plan")
	}
	if data.Timeline.StudyHours <= 0 {
		t.Errorf("StudyHours = %d", data.Timeline.StudyHours)
	}
}

func TestBenchmarkEndpoint(t *testing.T) {
	app := newTestApp(t, nil)

	sr := postJSON(t, app, "/api/v1/careers/Backend%20Developer/benchmark", map[string]any{"skills": []string{"Go", "SQL"}})
	if sr.Status != 200 {
		t.Fatalf("status=%d message=%s", sr.Status, sr.Message)
	}

	var data struct {
		SampleSize int `json:"sample_size"`
		Peers      []struct {
			Salary int `json:"salary"`
		} `json:"peers"`
	}
	if err := json.Unmarshal(sr.Data, &data); err != nil {
		t.Fatalf("data unmarshal: %v", err)
	}
	if data.SampleSize != 6 || len(data.Peers) != 6 {
		t.Errorf("sample=%d peers=%d, want 6", data.SampleSize, len(data.Peers))
	}
}

func TestResumeEndpoint(t *testing.T) {
	app := newTestApp(t, nil)

	sr := postJSON(t, app, "/api/v1/resume/analyze", map[string]any{"text": "Shipped golang services backed by SQL."})
	if sr.Status != 200 {
		t.Fatalf("status=%d message=%s", sr.Status, sr.Message)
	}

	var data struct {
		ExtractedSkills []string `json:"extracted_skills"`
	}
	if err := json.Unmarshal(sr.Data, &data); err != nil {
		t.Fatalf("data unmarshal: %v", err)
	}
	if len(data.ExtractedSkills) != 2 {
		t.Errorf("extracted = %v, want Go and SQL", data.ExtractedSkills)
	}
}

func TestAdminRouteAuth(t *testing.T) {
	tokens := token.NewHMACService("test-secret", time.Hour)
	app := newTestApp(t, tokens)

	req := httptest.NewRequest("POST", "/api/v1/admin/courses/refresh", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != 401 {
		t.Fatalf("no token status = %d, want 401", resp.StatusCode)
	}

	jwt, err := tokens.GenerateAdminToken("ops")
	if err != nil {
		t.Fatalf("GenerateAdminToken: %v", err)
	}

	req = httptest.NewRequest("POST", "/api/v1/admin/courses/refresh", nil)
	req.Header.Set("Authorization", "Bearer "+jwt)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("request with token: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("with token status = %d, want 200", resp.StatusCode)
	}
}
