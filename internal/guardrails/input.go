package guardrails

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Annapoorna04/HiperAI/internal/models"
)

var alphanumeric = regexp.MustCompile(`[a-zA-Z0-9]`)

// InputValidator applies structural checks to the raw request text, in
// order, stopping at the first failure. Lengths are measured on the
// unmodified input so the reasons match what the caller actually sent.
type InputValidator struct {
	MinLength int
	MaxLength int
}

func NewInputValidator(minLength, maxLength int) *InputValidator {
	return &InputValidator{
		MinLength: minLength,
		MaxLength: maxLength,
	}
}

func (v *InputValidator) Name() string {
	return "input-validation"
}

func (v *InputValidator) Check(req *Request) models.StageResult {
	text := req.Text

	if strings.TrimSpace(text) == "" {
		return v.reject("Role details cannot be empty")
	}

	if len(text) < v.MinLength {
		return v.reject(fmt.Sprintf("Role details too short. Minimum %d characters required", v.MinLength))
	}

	if len(text) > v.MaxLength {
		return v.reject(fmt.Sprintf("Role details too long. Maximum %d characters allowed", v.MaxLength))
	}

	if !alphanumeric.MatchString(text) {
		return v.reject("Role details must contain valid text")
	}

	return accepted(v.Name())
}

func (v *InputValidator) reject(reason string) models.StageResult {
	return rejected(v.Name(), models.ClassInvalidInput, "", reason)
}
