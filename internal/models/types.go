package models

// Class identifies why the pipeline rejected or failed a request. The
// transport maps each class to exactly one HTTP status and payload.
type Class string

const (
	ClassRateLimited       Class = "rate_limited"
	ClassInvalidInput      Class = "invalid_input"
	ClassContentRejected   Class = "content_rejected"
	ClassGenerationTimeout Class = "generation_timeout"
	ClassGenerationError   Class = "generation_error"
	ClassOutputRejected    Class = "output_rejected"
)

// Content filter categories.
const (
	CategoryMalicious     = "malicious"
	CategoryInappropriate = "inappropriate"
)

// Input message
type GenerateRequest struct {
	RoleDetails string `json:"role_details"`
}

// Normalized internal request. RoleDetails holds the sanitized text once the
// sanitize stage has run; the struct is not mutated after that point.
type GenerationRequest struct {
	ClientID    string
	RoleDetails string
}

// QualityMetrics describes the structural conformance of generated text.
type QualityMetrics struct {
	Length          int      `json:"length"`
	WordCount       int      `json:"word_count"`
	SectionsFound   []string `json:"sections_found"`
	HasBulletPoints bool     `json:"has_bullet_points"`
	QualityScore    float64  `json:"quality_score"`
}

// GenerationResult is produced once per successful generation and never
// mutated after scoring.
type GenerationResult struct {
	JobDescription string         `json:"job_description"`
	Metrics        QualityMetrics `json:"quality_metrics"`
}

// One guardrail stage's outcome. Allowed results carry no class or reason.
type StageResult struct {
	Stage    string `json:"stage"`
	Allowed  bool   `json:"allowed"`
	Class    Class  `json:"class,omitempty"`
	Category string `json:"category,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// Final output emitted to the caller
type GenerateResponse struct {
	JobDescription string         `json:"job_description"`
	QualityMetrics QualityMetrics `json:"quality_metrics"`
	Message        string         `json:"message"`
}
