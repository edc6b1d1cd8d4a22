// Package server exposes the analysis pipeline over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"counsel/internal/classify"
	"counsel/internal/cost"
	"counsel/internal/guide"
	"counsel/internal/iac"
	"counsel/internal/recommend"
	"counsel/internal/render"
)

const serviceVersion = "0.3.0"

// Config holds server configuration
type Config struct {
	Port              int
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	MaxRequestSize    int64
	CORSOrigins       []string
	APIKeys           []string
	AllowAnonymous    bool
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// DefaultConfig returns default server configuration
func DefaultConfig() *Config {
	return &Config{
		Port:              8080,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		MaxRequestSize:    1 * 1024 * 1024, // 1MB
		CORSOrigins:       []string{"*"},
		AllowAnonymous:    true,
		RateLimitRequests: 100,
		RateLimitWindow:   time.Hour,
	}
}

// Server is the HTTP API server
type Server struct {
	httpServer *http.Server
	config     *Config
	log        *zap.Logger
	auth       *authenticator
	limiter    *rateLimiter
}

// New creates a new API server
func New(config *Config, log *zap.Logger) *Server {
	if config == nil {
		config = DefaultConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		config:  config,
		log:     log,
		auth:    newAuthenticator(config.APIKeys, config.AllowAnonymous),
		limiter: newRateLimiter(config.RateLimitRequests, config.RateLimitWindow),
	}
}

// Handler builds the route table with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/iac", s.handleIaC)
	mux.HandleFunc("/api/narrative", s.handleNarrative)

	return s.corsMiddleware(s.requestIDMiddleware(s.loggingMiddleware(mux)))
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	s.log.Info("server starting", zap.Int("port", s.config.Port))
	return s.httpServer.ListenAndServe()
}

// StartWithGracefulShutdown starts the server and shuts it down cleanly on
// SIGINT/SIGTERM.
func (s *Server) StartWithGracefulShutdown() error {
	errChan := make(chan error, 1)
	go func() {
		if err := s.Start(); !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case <-quit:
		s.log.Info("shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(ctx)
	}
}

// =============================================================================
// MIDDLEWARE
// =============================================================================

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.String("request_id", w.Header().Get("X-Request-Id")),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		allowed := false
		for _, o := range s.config.CORSOrigins {
			if o == "*" || o == origin {
				allowed = true
				break
			}
		}

		if allowed {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key")
			w.Header().Set("Access-Control-Max-Age", "86400")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// =============================================================================
// HEALTH ENDPOINTS
// =============================================================================

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.jsonError(w, http.StatusNotFound, "not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"service": "counsel",
		"version": serviceVersion,
		"status":  "healthy",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// =============================================================================
// ANALYSIS ENDPOINTS
// =============================================================================

// AnalyzeResponse is the combined result of the full pipeline.
type AnalyzeResponse struct {
	ProjectID string              `json:"project_id"`
	Analysis  AnalysisInfo        `json:"analysis"`
	Services  []recommend.Service `json:"services"`
	Costs     cost.Analysis       `json:"cost_analysis"`
	Guide     guide.Document      `json:"implementation_guide"`
	Metadata  ResponseMetadata    `json:"metadata"`
}

// AnalysisInfo summarizes the classification outcome.
type AnalysisInfo struct {
	ProjectType      string   `json:"project_type"`
	Confidence       float64  `json:"confidence"`
	DetectedFeatures []string `json:"detected_features,omitempty"`
	ServicesCount    int      `json:"services_count,omitempty"`
}

// ResponseMetadata carries per-request timing.
type ResponseMetadata struct {
	ProcessingTimeMS int64  `json:"processing_time_ms"`
	Timestamp        string `json:"timestamp"`
}

// IaCResponse wraps a generated Terraform bundle.
type IaCResponse struct {
	ProjectID string           `json:"project_id"`
	Analysis  AnalysisInfo     `json:"analysis"`
	Terraform iac.Bundle       `json:"terraform"`
	Metadata  ResponseMetadata `json:"metadata"`
}

// NarrativeResponse carries the markdown narrative.
type NarrativeResponse struct {
	ProjectID string           `json:"project_id"`
	Narrative string           `json:"narrative_markdown"`
	Metadata  ResponseMetadata `json:"metadata"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, ok := s.acceptRequest(w, r)
	if !ok {
		return
	}
	start := time.Now()

	classification := classify.Classify(req.Description)
	services := recommend.Recommend(classification, req.EstimatedUsers)
	analysis := cost.Calculate(serviceIDs(services), req.EstimatedUsers)
	doc := guide.Generate(serviceNames(services), classification, req.EstimatedUsers)

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		ProjectID: fmt.Sprintf("proj_%d", time.Now().Unix()),
		Analysis: AnalysisInfo{
			ProjectType:      classification.Primary,
			Confidence:       classification.Confidence,
			DetectedFeatures: classification.Features,
		},
		Services: services,
		Costs:    analysis,
		Guide:    doc,
		Metadata: metadataSince(start),
	})
}

func (s *Server) handleIaC(w http.ResponseWriter, r *http.Request) {
	req, ok := s.acceptRequest(w, r)
	if !ok {
		return
	}
	start := time.Now()

	classification := classify.Classify(req.Description)
	services := recommend.Recommend(classification, req.EstimatedUsers)
	bundle := iac.Generate(services, classification, req.EstimatedUsers)

	s.jsonResponse(w, http.StatusOK, IaCResponse{
		ProjectID: fmt.Sprintf("iac_%d", time.Now().Unix()),
		Analysis: AnalysisInfo{
			ProjectType:   classification.Primary,
			Confidence:    classification.Confidence,
			ServicesCount: len(services),
		},
		Terraform: bundle,
		Metadata:  metadataSince(start),
	})
}

func (s *Server) handleNarrative(w http.ResponseWriter, r *http.Request) {
	req, ok := s.acceptRequest(w, r)
	if !ok {
		return
	}
	start := time.Now()

	classification := classify.Classify(req.Description)
	services := recommend.Recommend(classification, req.EstimatedUsers)
	analysis := cost.Calculate(serviceIDs(services), req.EstimatedUsers)
	doc := guide.Generate(serviceNames(services), classification, req.EstimatedUsers)
	narrative := render.Markdown(doc, classification, services, analysis, req.EstimatedUsers)

	s.jsonResponse(w, http.StatusOK, NarrativeResponse{
		ProjectID: fmt.Sprintf("narrative_%d", time.Now().Unix()),
		Narrative: narrative,
		Metadata:  metadataSince(start),
	})
}

// acceptRequest runs the shared POST plumbing: method check, auth, rate
// limit, body decode, validation. A false return means the response has
// already been written.
func (s *Server) acceptRequest(w http.ResponseWriter, r *http.Request) (*AnalysisRequest, bool) {
	if r.Method != http.MethodPost {
		s.jsonError(w, http.StatusMethodNotAllowed, "method not allowed")
		return nil, false
	}

	key, err := s.auth.verify(r)
	if err != nil {
		status := http.StatusForbidden
		if errors.Is(err, errKeyRequired) {
			status = http.StatusUnauthorized
		}
		s.jsonError(w, status, err.Error())
		return nil, false
	}

	if key != anonymousKey && !s.limiter.allow(key) {
		s.jsonError(w, http.StatusTooManyRequests, errRateLimitExceeded.Error())
		return nil, false
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxRequestSize)

	var req AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.jsonError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return nil, false
	}
	if err := req.Validate(); err != nil {
		s.jsonError(w, http.StatusUnprocessableEntity, err.Error())
		return nil, false
	}

	return &req, true
}

func serviceIDs(services []recommend.Service) []string {
	out := make([]string, len(services))
	for i, svc := range services {
		out[i] = svc.ID
	}
	return out
}

func serviceNames(services []recommend.Service) []string {
	out := make([]string, len(services))
	for i, svc := range services {
		out[i] = svc.Name
	}
	return out
}

func metadataSince(start time.Time) ResponseMetadata {
	return ResponseMetadata{
		ProcessingTimeMS: time.Since(start).Milliseconds(),
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
	}
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func (s *Server) jsonResponse(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) jsonError(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
