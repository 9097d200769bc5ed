package api

import (
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/Annapoorna04/HiperAI/internal/api/middleware"
	"github.com/Annapoorna04/HiperAI/internal/models"
	"github.com/Annapoorna04/HiperAI/internal/pipeline"
	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type Handler struct {
	pipeline *pipeline.Pipeline
	logger   *zerolog.Logger
}

func NewHandler(pipeline *pipeline.Pipeline, logger *zerolog.Logger) *Handler {
	return &Handler{
		pipeline: pipeline,
		logger:   logger,
	}
}

// POST /api/v1/generate
// Body: GenerateRequest
// Returns: GenerateResponse
func (h *Handler) Generate(req *restful.Request, resp *restful.Response) {
	var generateRequest models.GenerateRequest
	if err := req.ReadEntity(&generateRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	clientID := clientIdentity(req.Request)

	h.logger.Info().
		Str("client_id", clientID).
		Int("input_length", len(generateRequest.RoleDetails)).
		Msg("Start job description generation")

	ctx := req.Request.Context()
	result, err := h.pipeline.Execute(ctx, clientID, generateRequest.RoleDetails)
	if err != nil {
		status, detail := mapError(err)
		middleware.WriteError(resp, detail, status)
		return
	}

	h.logger.Info().
		Str("client_id", clientID).
		Float64("quality_score", result.Metrics.QualityScore).
		Msg("Job description generated")

	resp.WriteHeaderAndEntity(http.StatusOK, models.GenerateResponse{
		JobDescription: result.JobDescription,
		QualityMetrics: result.Metrics,
		Message:        "Job description generated successfully",
	})
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}

// mapError converts a pipeline failure into the status/body pair for its
// class. Generation causes stay server-side; the caller only sees a
// summary.
func mapError(err error) (int, string) {
	var pipeErr *pipeline.Error
	if !errors.As(err, &pipeErr) {
		return http.StatusInternalServerError, "Internal server error"
	}

	switch pipeErr.Class {
	case models.ClassRateLimited:
		return http.StatusTooManyRequests, pipeErr.Reason
	case models.ClassInvalidInput:
		return http.StatusUnprocessableEntity, pipeErr.Reason
	case models.ClassContentRejected:
		return http.StatusBadRequest, pipeErr.Reason
	case models.ClassOutputRejected:
		return http.StatusInternalServerError, "Generated content validation failed: " + pipeErr.Reason
	case models.ClassGenerationTimeout:
		return http.StatusInternalServerError, "Job description generation timed out"
	case models.ClassGenerationError:
		return http.StatusInternalServerError, pipeErr.Reason
	default:
		return http.StatusInternalServerError, pipeErr.Reason
	}
}

// clientIdentity derives the rate-limiter key: first X-Forwarded-For entry,
// then X-Real-IP, then the host part of the connection address.
func clientIdentity(req *http.Request) string {
	if forwarded := req.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}

	if realIP := req.Header.Get("X-Real-IP"); realIP != "" {
		return strings.TrimSpace(realIP)
	}

	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil || host == "" {
		if req.RemoteAddr != "" {
			return req.RemoteAddr
		}
		return "unknown"
	}
	return host
}
