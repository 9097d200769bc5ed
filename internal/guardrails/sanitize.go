package guardrails

import (
	"regexp"
	"strings"

	"github.com/Annapoorna04/HiperAI/internal/models"
)

var (
	markupTags = regexp.MustCompile(`<[^>]+>`)
	whitespace = regexp.MustCompile(`\s+`)
)

// Sanitizer normalizes text before it reaches the model. It never rejects.
// Unsafe characters are removed before whitespace collapsing so applying the
// sanitizer twice yields the same result as applying it once.
type Sanitizer struct {
	unsafe string
}

func NewSanitizer(unsafeCharacters string) *Sanitizer {
	return &Sanitizer{unsafe: unsafeCharacters}
}

func (s *Sanitizer) Sanitize(text string) string {
	text = markupTags.ReplaceAllString(text, "")

	if s.unsafe != "" {
		text = strings.Map(func(r rune) rune {
			if strings.ContainsRune(s.unsafe, r) {
				return -1
			}
			return r
		}, text)
	}

	text = whitespace.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

func (s *Sanitizer) Name() string {
	return "sanitize"
}

// Check rewrites the request text in place; sanitization is total, so the
// stage always accepts.
func (s *Sanitizer) Check(req *Request) models.StageResult {
	req.Text = s.Sanitize(req.Text)
	return accepted(s.Name())
}
