package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testServer(cfg *Config) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return New(cfg, nil)
}

func postAnalyze(t *testing.T, s *Server, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func validRequest() AnalysisRequest {
	return AnalysisRequest{
		Description:    "A blog platform with user comments and an email newsletter",
		EstimatedUsers: 500,
		Budget:         "low",
	}
}

func TestRootAndHealth(t *testing.T) {
	s := testServer(nil)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /: expected 200, got %d", rec.Code)
	}
	var root map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &root); err != nil {
		t.Fatal(err)
	}
	if root["service"] != "counsel" || root["status"] != "healthy" {
		t.Errorf("unexpected root payload: %v", root)
	}

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("GET /health: expected 200, got %d", rec.Code)
	}
}

func TestAnalyzePipeline(t *testing.T) {
	s := testServer(nil)
	rec := postAnalyze(t, s, "/api/analyze", validRequest(), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp AnalyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Analysis.ProjectType == "" {
		t.Error("missing project type")
	}
	if len(resp.Services) == 0 {
		t.Error("no services recommended")
	}
	if resp.Guide.Format != "dynamic_personalized" {
		t.Errorf("unexpected guide format: %s", resp.Guide.Format)
	}
	if resp.ProjectID == "" || resp.Metadata.Timestamp == "" {
		t.Error("missing project id or metadata")
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("missing request id header")
	}
}

func TestAnalyzeValidation(t *testing.T) {
	s := testServer(nil)
	tests := []struct {
		name string
		req  AnalysisRequest
	}{
		{"short description", AnalysisRequest{Description: "too short", EstimatedUsers: 100, Budget: "low"}},
		{"zero users", AnalysisRequest{Description: "a perfectly fine description", EstimatedUsers: 0, Budget: "low"}},
		{"too many users", AnalysisRequest{Description: "a perfectly fine description", EstimatedUsers: 200_000_000, Budget: "low"}},
		{"bad budget", AnalysisRequest{Description: "a perfectly fine description", EstimatedUsers: 100, Budget: "infinite"}},
	}
	for _, tt := range tests {
		rec := postAnalyze(t, s, "/api/analyze", tt.req, nil)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("%s: expected 422, got %d", tt.name, rec.Code)
		}
	}
}

func TestAnalyzeRejectsGet(t *testing.T) {
	s := testServer(nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/analyze", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}

func TestAPIKeyAuth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.APIKeys = []string{"secret-key"}
	cfg.AllowAnonymous = false
	s := testServer(cfg)

	rec := postAnalyze(t, s, "/api/analyze", validRequest(), nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("missing key: expected 401, got %d", rec.Code)
	}

	rec = postAnalyze(t, s, "/api/analyze", validRequest(), map[string]string{"X-API-Key": "wrong"})
	if rec.Code != http.StatusForbidden {
		t.Errorf("wrong key: expected 403, got %d", rec.Code)
	}

	rec = postAnalyze(t, s, "/api/analyze", validRequest(), map[string]string{"X-API-Key": "secret-key"})
	if rec.Code != http.StatusOK {
		t.Errorf("valid key: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAnonymousAllowedByDefault(t *testing.T) {
	s := testServer(nil)
	rec := postAnalyze(t, s, "/api/analyze", validRequest(), nil)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for anonymous request, got %d", rec.Code)
	}
}

func TestRateLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.APIKeys = []string{"limited"}
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Hour
	s := testServer(cfg)

	headers := map[string]string{"X-API-Key": "limited"}
	for i := 0; i < 2; i++ {
		if rec := postAnalyze(t, s, "/api/analyze", validRequest(), headers); rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, rec.Code)
		}
	}
	if rec := postAnalyze(t, s, "/api/analyze", validRequest(), headers); rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429 after the limit, got %d", rec.Code)
	}
}

func TestRateLimitWindowSlides(t *testing.T) {
	rl := newRateLimiter(2, time.Minute)
	now := time.Now()
	rl.now = func() time.Time { return now }

	if !rl.allow("k") || !rl.allow("k") {
		t.Fatal("first two requests should pass")
	}
	if rl.allow("k") {
		t.Fatal("third request inside the window should be denied")
	}

	now = now.Add(2 * time.Minute)
	if !rl.allow("k") {
		t.Error("request after the window expired should pass")
	}
}

func TestIaCEndpoint(t *testing.T) {
	s := testServer(nil)
	req := validRequest()
	req.Description = "An online store with checkout, payments and a product catalog"
	rec := postAnalyze(t, s, "/api/iac", req, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp IaCResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Terraform.Format != "terraform" {
		t.Errorf("unexpected bundle format: %s", resp.Terraform.Format)
	}
	if resp.Terraform.Files["main.tf"] == "" {
		t.Error("missing main.tf in bundle")
	}
	if resp.Analysis.ServicesCount == 0 {
		t.Error("missing services count")
	}
}

func TestNarrativeEndpoint(t *testing.T) {
	s := testServer(nil)
	rec := postAnalyze(t, s, "/api/narrative", validRequest(), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp NarrativeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains([]byte(resp.Narrative), []byte("# Executive Summary")) {
		t.Error("narrative missing the executive summary heading")
	}
}

func TestCORSPreflight(t *testing.T) {
	s := testServer(nil)
	req := httptest.NewRequest(http.MethodOptions, "/api/analyze", nil)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "https://example.com" {
		t.Errorf("unexpected allow-origin header: %s", rec.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestValidateSanitizesDescription(t *testing.T) {
	req := AnalysisRequest{
		Description:    "  a <b>blog</b>   with    extra   whitespace  ",
		EstimatedUsers: 100,
		Budget:         "medium",
	}
	if err := req.Validate(); err != nil {
		t.Fatal(err)
	}
	if req.Description != "a &lt;b&gt;blog&lt;/b&gt; with extra whitespace" {
		t.Errorf("unexpected sanitized description: %q", req.Description)
	}
	if req.Region != "us-east-1" {
		t.Errorf("expected default region, got %s", req.Region)
	}
}
