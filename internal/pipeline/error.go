package pipeline

import (
	"fmt"

	"github.com/Annapoorna04/HiperAI/internal/models"
)

// Error is the typed failure returned by Execute. Every rejection or
// generation failure carries a class the transport maps to exactly one
// status/body pair. Cause is only set for generation failures and is kept
// out of user-facing payloads.
type Error struct {
	Class    models.Class
	Stage    string
	Category string
	Reason   string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s at %s: %s: %v", e.Class, e.Stage, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s at %s: %s", e.Class, e.Stage, e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func stageError(result models.StageResult) *Error {
	return &Error{
		Class:    result.Class,
		Stage:    result.Stage,
		Category: result.Category,
		Reason:   result.Reason,
	}
}
