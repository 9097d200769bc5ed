package guardrails

import (
	"fmt"
	"regexp"

	"github.com/Annapoorna04/HiperAI/internal/config"
	"github.com/Annapoorna04/HiperAI/internal/models"
)

// ContentFilter screens the raw pre-sanitized text against two ordered
// pattern sets. Malicious patterns are compiled ahead of inappropriate ones,
// so when both would match, malicious wins. Substring matching produces
// false positives ("script" inside "javascript developer" style inputs);
// that is an accepted limitation of the approach, tuned via the pattern
// lists rather than the engine.
type ContentFilter struct {
	matchers []matcher
}

type matcher struct {
	pattern  *regexp.Regexp
	category string
	reason   string
}

func NewContentFilter(policy config.ContentFilterPolicy) (*ContentFilter, error) {
	var matchers []matcher

	for _, p := range policy.MaliciousPatterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, fmt.Errorf("failed to compile malicious pattern %q: %w", p, err)
		}
		matchers = append(matchers, matcher{
			pattern:  re,
			category: models.CategoryMalicious,
			reason:   "Input contains potentially malicious content",
		})
	}

	for _, p := range policy.InappropriatePatterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, fmt.Errorf("failed to compile inappropriate pattern %q: %w", p, err)
		}
		matchers = append(matchers, matcher{
			pattern:  re,
			category: models.CategoryInappropriate,
			reason:   "Input contains inappropriate content",
		})
	}

	return &ContentFilter{matchers: matchers}, nil
}

func (f *ContentFilter) Name() string {
	return "content-filter"
}

func (f *ContentFilter) Check(req *Request) models.StageResult {
	for _, m := range f.matchers {
		if m.pattern.MatchString(req.Text) {
			return rejected(f.Name(), models.ClassContentRejected, m.category, m.reason)
		}
	}
	return accepted(f.Name())
}
