package guardrails

import (
	"regexp"
	"strings"

	"github.com/Annapoorna04/HiperAI/internal/config"
	"github.com/Annapoorna04/HiperAI/internal/models"
)

// A line whose first non-space characters are "- ", "* ", or "<digits>. "
// counts as a bullet point.
var bulletLine = regexp.MustCompile(`(?m)^\s*(?:[-*]|\d+\.)\s`)

// OutputValidator inspects generated text for structural conformance and
// computes quality metrics. Section detection is a case-insensitive
// substring check per configured synonym; SectionsFound records canonical
// labels in policy order.
//
// The quality score is section_points per detected section, plus
// bullet_bonus when any bullet line exists, plus a length-adequacy term of
// word_count/words_per_length_point capped at length_points, the whole
// capped at max_score. With the default weights the score is monotonic in
// sections and bullet presence.
type OutputValidator struct {
	MinLength int
	MaxLength int
	sections  []sectionMatcher
	scoring   config.ScoringPolicy
}

type sectionMatcher struct {
	label    string
	synonyms []string
}

func NewOutputValidator(minLength, maxLength int, policy config.OutputPolicy) *OutputValidator {
	var sections []sectionMatcher
	for _, s := range policy.Sections {
		synonyms := make([]string, 0, len(s.Synonyms))
		for _, syn := range s.Synonyms {
			synonyms = append(synonyms, strings.ToLower(syn))
		}
		if len(synonyms) == 0 {
			synonyms = []string{strings.ToLower(s.Label)}
		}
		sections = append(sections, sectionMatcher{label: s.Label, synonyms: synonyms})
	}

	return &OutputValidator{
		MinLength: minLength,
		MaxLength: maxLength,
		sections:  sections,
		scoring:   policy.Scoring,
	}
}

// Score computes metrics for the generated text and validates it. Metrics
// are returned even when the text is rejected, so callers can log what the
// model actually produced.
func (v *OutputValidator) Score(text string) (models.QualityMetrics, models.StageResult) {
	metrics := v.Metrics(text)

	if len(text) < v.MinLength {
		return metrics, v.reject("Generated output is too short")
	}

	if len(text) > v.MaxLength {
		return metrics, v.reject("Generated output is too long")
	}

	if len(metrics.SectionsFound) == 0 {
		return metrics, v.reject("Generated output doesn't match expected format")
	}

	return metrics, accepted("output-validation")
}

// Metrics derives quality metrics without enforcing any threshold.
func (v *OutputValidator) Metrics(text string) models.QualityMetrics {
	lower := strings.ToLower(text)

	sectionsFound := []string{}
	for _, section := range v.sections {
		for _, synonym := range section.synonyms {
			if strings.Contains(lower, synonym) {
				sectionsFound = append(sectionsFound, section.label)
				break
			}
		}
	}

	wordCount := len(strings.Fields(text))
	hasBullets := bulletLine.MatchString(text)

	score := v.scoring.SectionPoints * float64(len(sectionsFound))
	if hasBullets {
		score += v.scoring.BulletBonus
	}

	lengthTerm := float64(wordCount) / v.scoring.WordsPerLengthPoint
	if lengthTerm > v.scoring.LengthPoints {
		lengthTerm = v.scoring.LengthPoints
	}
	score += lengthTerm

	if score > v.scoring.MaxScore {
		score = v.scoring.MaxScore
	}

	return models.QualityMetrics{
		Length:          len(text),
		WordCount:       wordCount,
		SectionsFound:   sectionsFound,
		HasBulletPoints: hasBullets,
		QualityScore:    score,
	}
}

func (v *OutputValidator) reject(reason string) models.StageResult {
	return rejected("output-validation", models.ClassOutputRejected, "", reason)
}
