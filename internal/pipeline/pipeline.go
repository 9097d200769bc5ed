package pipeline

import (
	"context"
	"errors"

	"github.com/Annapoorna04/HiperAI/internal/guardrails"
	"github.com/Annapoorna04/HiperAI/internal/models"
	"github.com/rs/zerolog"
)

// Generator produces a job description from sanitized role details. It owns
// the model timeout and token cap.
type Generator interface {
	Generate(ctx context.Context, roleDetails string) (string, error)
}

// OutputScorer validates generated text and derives quality metrics.
type OutputScorer interface {
	Score(text string) (models.QualityMetrics, models.StageResult)
}

// Pipeline walks an ordered list of pre-generation guardrail stages, invokes
// the generator, then scores the output. The first rejecting stage
// short-circuits the walk; rejected requests never reach the generator. The
// pipeline holds no cross-request state of its own — only the rate limiter
// stage persists anything between requests.
type Pipeline struct {
	stages        []guardrails.Stage
	generator     Generator
	scorer        OutputScorer
	enforceOutput bool
	logger        *zerolog.Logger
}

func New(
	stages []guardrails.Stage,
	generator Generator,
	scorer OutputScorer,
	enforceOutput bool,
	logger *zerolog.Logger,
) *Pipeline {
	return &Pipeline{
		stages:        stages,
		generator:     generator,
		scorer:        scorer,
		enforceOutput: enforceOutput,
		logger:        logger,
	}
}

func (p *Pipeline) Execute(ctx context.Context, clientID, roleDetails string) (*models.GenerationResult, error) {
	req := &guardrails.Request{
		ClientID: clientID,
		Text:     roleDetails,
	}

	for _, stage := range p.stages {
		result := stage.Check(req)
		if !result.Allowed {
			p.logger.Info().
				Str("client_id", clientID).
				Str("stage", result.Stage).
				Str("reason", result.Reason).
				Msg("request rejected")
			return nil, stageError(result)
		}
	}

	text, err := p.generator.Generate(ctx, req.Text)
	if err != nil {
		class := models.ClassGenerationError
		if errors.Is(err, context.DeadlineExceeded) {
			class = models.ClassGenerationTimeout
		}

		p.logger.Error().
			Err(err).
			Str("client_id", clientID).
			Str("stage", "generate").
			Msg("generation failed")

		return nil, &Error{
			Class:  class,
			Stage:  "generate",
			Reason: "Failed to generate job description",
			Cause:  err,
		}
	}

	metrics, result := p.scorer.Score(text)
	if !result.Allowed && p.enforceOutput {
		p.logger.Warn().
			Str("client_id", clientID).
			Str("reason", result.Reason).
			Int("length", metrics.Length).
			Msg("generated output rejected")
		return nil, stageError(result)
	}

	p.logger.Info().
		Str("client_id", clientID).
		Float64("quality_score", metrics.QualityScore).
		Int("sections", len(metrics.SectionsFound)).
		Msg("generation complete")

	return &models.GenerationResult{
		JobDescription: text,
		Metrics:        metrics,
	}, nil
}
