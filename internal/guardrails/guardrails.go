// Package guardrails contains the validation, filtering, and rate-limiting
// components wrapped around model invocation. Each component produces a
// uniform StageResult so the pipeline can walk an ordered stage list and stop
// at the first rejection.
package guardrails

import (
	"github.com/Annapoorna04/HiperAI/internal/models"
)

// Request is the per-request state threaded through the pre-generation
// stages. The sanitize stage rewrites Text in place; every other stage only
// reads it.
type Request struct {
	ClientID string
	Text     string
}

// Stage is one guardrail applied before the model call.
type Stage interface {
	Name() string
	Check(req *Request) models.StageResult
}

func accepted(stage string) models.StageResult {
	return models.StageResult{Stage: stage, Allowed: true}
}

func rejected(stage string, class models.Class, category, reason string) models.StageResult {
	return models.StageResult{
		Stage:    stage,
		Allowed:  false,
		Class:    class,
		Category: category,
		Reason:   reason,
	}
}
