package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"

	"github.com/Annapoorna04/HiperAI/internal/api"
	"github.com/Annapoorna04/HiperAI/internal/api/middleware"
	"github.com/Annapoorna04/HiperAI/internal/config"
	"github.com/Annapoorna04/HiperAI/internal/guardrails"
	"github.com/Annapoorna04/HiperAI/internal/models"
	"github.com/Annapoorna04/HiperAI/internal/pipeline"
)

const generatedJD = `Job Title: Senior Backend Engineer

Job Summary: We are looking for an experienced backend engineer to join our
platform team in India and own critical services end to end.

Responsibilities:
- Design and build scalable backend services with Python and Django
- Review code and mentor junior engineers
- Own production reliability on AWS

Skills:
- Python, Django, AWS
- 5+ years of backend experience`

// stubGenerator replaces the model client; the response and error are set
// per test.
type stubGenerator struct {
	response string
	err      error
}

func (s *stubGenerator) Generate(ctx context.Context, roleDetails string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func setupTestAPI(t *testing.T, gen pipeline.Generator, rateLimit int) *restful.Container {
	t.Helper()

	logger := zerolog.Nop()

	filter, err := guardrails.NewContentFilter(config.DefaultPolicy().ContentFilter)
	if err != nil {
		t.Fatalf("NewContentFilter failed: %v", err)
	}

	stages := []guardrails.Stage{
		guardrails.NewRateLimiter(rateLimit, 60*time.Second),
		guardrails.NewInputValidator(10, 2000),
		filter,
		guardrails.NewSanitizer("<>{}"),
	}
	scorer := guardrails.NewOutputValidator(100, 5000, config.DefaultPolicy().Output)

	pipe := pipeline.New(stages, gen, scorer, true, &logger)

	handler := api.NewHandler(pipe, &logger)
	container := restful.NewContainer()
	container.Filter(middleware.Logger)
	container.Filter(middleware.RecoverPanic)
	api.RegisterRoutes(container, handler)

	return container
}

func postGenerate(t *testing.T, container *restful.Container, roleDetails string) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(models.GenerateRequest{RoleDetails: roleDetails})
	if err != nil {
		t.Fatalf("Failed to marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "10.0.0.1:52000"

	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)
	return recorder
}

func decodeDetail(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	var response middleware.ErrorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse error response: %v. Body: %s", err, recorder.Body.String())
	}
	return response.Detail
}

func TestAPI_Health(t *testing.T) {
	container := setupTestAPI(t, &stubGenerator{response: generatedJD}, 10)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	recorder := httptest.NewRecorder()

	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", recorder.Code)
	}

	var response api.HealthResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if response.Status != "ok" {
		t.Errorf("Expected status 'ok', got '%s'", response.Status)
	}
}

func TestAPI_Generate_Success(t *testing.T) {
	container := setupTestAPI(t, &stubGenerator{response: generatedJD}, 10)

	recorder := postGenerate(t, container, "Senior Backend Engineer, 5+ years, Python, Django, AWS, India")

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", recorder.Code, recorder.Body.String())
	}

	var response models.GenerateResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if response.JobDescription != generatedJD {
		t.Error("job_description does not match generated text")
	}
	if response.QualityMetrics.QualityScore <= 0 {
		t.Errorf("quality_score: %f, want > 0", response.QualityMetrics.QualityScore)
	}
	if len(response.QualityMetrics.SectionsFound) != 4 {
		t.Errorf("sections_found: %v, want all four labels", response.QualityMetrics.SectionsFound)
	}
	if !response.QualityMetrics.HasBulletPoints {
		t.Error("has_bullet_points: expected true")
	}
	if response.Message == "" {
		t.Error("message: expected non-empty")
	}
}

func TestAPI_Generate_ShortInput(t *testing.T) {
	container := setupTestAPI(t, &stubGenerator{response: generatedJD}, 10)

	recorder := postGenerate(t, container, "Dev")

	if recorder.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected status 422, got %d. Body: %s", recorder.Code, recorder.Body.String())
	}

	if detail := decodeDetail(t, recorder); detail != "Role details too short. Minimum 10 characters required" {
		t.Errorf("detail: %q", detail)
	}
}

func TestAPI_Generate_MaliciousInput(t *testing.T) {
	container := setupTestAPI(t, &stubGenerator{response: generatedJD}, 10)

	recorder := postGenerate(t, container, "DROP TABLE users; Senior Developer")

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d. Body: %s", recorder.Code, recorder.Body.String())
	}

	if detail := decodeDetail(t, recorder); detail != "Input contains potentially malicious content" {
		t.Errorf("detail: %q", detail)
	}
}

func TestAPI_Generate_RateLimited(t *testing.T) {
	container := setupTestAPI(t, &stubGenerator{response: generatedJD}, 10)

	input := "Senior Backend Engineer, 5+ years, Python, Django, AWS, India"
	for i := 0; i < 10; i++ {
		recorder := postGenerate(t, container, input)
		if recorder.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, recorder.Code)
		}
	}

	recorder := postGenerate(t, container, input)
	if recorder.Code != http.StatusTooManyRequests {
		t.Fatalf("11th request: expected 429, got %d", recorder.Code)
	}

	if detail := decodeDetail(t, recorder); detail != "Rate limit exceeded. Max 10 requests per 60 seconds." {
		t.Errorf("detail: %q", detail)
	}
}

func TestAPI_Generate_ClientIdentityFromForwardedHeader(t *testing.T) {
	container := setupTestAPI(t, &stubGenerator{response: generatedJD}, 1)

	body, _ := json.Marshal(models.GenerateRequest{
		RoleDetails: "Senior Backend Engineer, 5+ years, Python, Django, AWS, India",
	})

	send := func(forwarded string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", forwarded)
		req.RemoteAddr = "10.0.0.1:52000"

		recorder := httptest.NewRecorder()
		container.ServeHTTP(recorder, req)
		return recorder.Code
	}

	// Same first entry, different proxy chains: one client.
	if code := send("203.0.113.7"); code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", code)
	}
	if code := send("203.0.113.7, 10.0.0.2"); code != http.StatusTooManyRequests {
		t.Errorf("same forwarded client: expected 429, got %d", code)
	}

	// Different first entry: fresh window.
	if code := send("198.51.100.9, 10.0.0.2"); code != http.StatusOK {
		t.Errorf("different forwarded client: expected 200, got %d", code)
	}
}

func TestAPI_Generate_GenerationTimeout(t *testing.T) {
	gen := &stubGenerator{err: fmt.Errorf("model invocation failed: %w", context.DeadlineExceeded)}
	container := setupTestAPI(t, gen, 10)

	recorder := postGenerate(t, container, "Senior Backend Engineer, 5+ years, Python, Django, AWS, India")

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", recorder.Code)
	}

	detail := decodeDetail(t, recorder)
	if detail != "Job description generation timed out" {
		t.Errorf("detail: %q", detail)
	}
	// No partial output in the payload.
	if bytes.Contains(recorder.Body.Bytes(), []byte("job_description")) {
		t.Error("timeout response must not leak output fields")
	}
}

func TestAPI_Generate_OutputRejected(t *testing.T) {
	container := setupTestAPI(t, &stubGenerator{response: "way too short"}, 10)

	recorder := postGenerate(t, container, "Senior Backend Engineer, 5+ years, Python, Django, AWS, India")

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", recorder.Code)
	}

	if detail := decodeDetail(t, recorder); detail != "Generated content validation failed: Generated output is too short" {
		t.Errorf("detail: %q", detail)
	}
}

func TestAPI_Generate_MalformedBody(t *testing.T) {
	container := setupTestAPI(t, &stubGenerator{response: generatedJD}, 10)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", bytes.NewReader([]byte(`{"role_details": `)))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "10.0.0.1:52000"

	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", recorder.Code)
	}
}
