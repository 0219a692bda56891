package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"jobsprint/internal/observability"
	"jobsprint/internal/parser"
	"jobsprint/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// createParseHandler wraps the parse handler with observability
func (s *Server) createParseHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("jobsprint.api")
		ctx, span := tracer.Start(ctx, "api.parse")
		defer span.End()

		// Parse request
		var req types.ParseRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		// Validation
		if strings.TrimSpace(req.Text) == "" {
			err := fmt.Errorf("missing resume text")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume text", "text field is required", http.StatusBadRequest)
			return
		}

		// Size validation
		if limit := s.AppConfig.Analysis.MaxTextBytes; limit > 0 && int64(len(req.Text)) > limit {
			err := fmt.Errorf("resume text too large: %d bytes", len(req.Text))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Resume text too large", fmt.Sprintf("text exceeds size limit of %d bytes", limit), http.StatusBadRequest)
			return
		}

		// Add request attributes to span
		span.SetAttributes(
			attribute.Int("request.text_length", len(req.Text)),
			attribute.String("operation", "parse"),
		)

		// Track the extraction with observability
		metrics := om.GetMetrics()
		var result *types.ResumeFields
		err := metrics.TrackAnalysis(ctx, "parse", func(ctx context.Context) *observability.AnalysisResult {
			fields, parseErr := parser.ParseResumeText(req.Text)
			result = fields
			return &observability.AnalysisResult{
				Error:     parseErr,
				TextBytes: int64(len(req.Text)),
			}
		}, om)

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "parse_processing"))
			metrics.RecordBusinessMetric(ctx, "resume_parsed", false, om,
				attribute.String("error", err.Error()))
			writeErrorResponse(w, "Failed to parse resume", err.Error(), http.StatusUnprocessableEntity)
			return
		}

		// Record success metrics
		metrics.RecordBusinessMetric(ctx, "resume_parsed", true, om,
			attribute.Bool("found.email", result.Email != nil),
			attribute.Bool("found.phone", result.Phone != nil),
			attribute.Bool("found.name", result.Name != nil))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Bool("response.email_found", result.Email != nil),
			attribute.Bool("response.name_found", result.Name != nil),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createScoreHandler wraps the score handler with observability
func (s *Server) createScoreHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("jobsprint.api")
		ctx, span := tracer.Start(ctx, "api.score")
		defer span.End()

		var req types.ScoreRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		// Validation (similar to parse)
		if strings.TrimSpace(req.Text) == "" {
			err := fmt.Errorf("missing resume text")
			span.RecordError(err)
			writeErrorResponse(w, "Missing resume text", "text field is required", http.StatusBadRequest)
			return
		}
		if limit := s.AppConfig.Analysis.MaxTextBytes; limit > 0 && int64(len(req.Text)) > limit {
			err := fmt.Errorf("resume text too large: %d bytes", len(req.Text))
			span.RecordError(err)
			writeErrorResponse(w, "Resume text too large", fmt.Sprintf("text exceeds size limit of %d bytes", limit), http.StatusBadRequest)
			return
		}

		role := req.Role
		if role == "" {
			role = req.TargetRole
		}

		span.SetAttributes(
			attribute.Int("request.text_length", len(req.Text)),
			attribute.String("request.role", role),
			attribute.String("operation", "score"),
		)

		metrics := om.GetMetrics()
		var result types.AtsResult
		err := metrics.TrackAnalysis(ctx, "score", func(ctx context.Context) *observability.AnalysisResult {
			result = s.Analyzer.AnalyzeResume(req)
			return &observability.AnalysisResult{
				Score:     &result.Score,
				TextBytes: int64(len(req.Text)),
			}
		}, om)

		if err != nil {
			span.RecordError(err)
			metrics.RecordBusinessMetric(ctx, "resume_scored", false, om)
			writeErrorResponse(w, "Failed to score resume", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordBusinessMetric(ctx, "resume_scored", true, om,
			attribute.Int("ats.score", result.Score),
			attribute.String("ats.level", result.Level))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("ats.score", result.Score),
			attribute.String("ats.level", result.Level),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Check if this request was rate limited by examining the response
			// We'll wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
