package guardrails

import (
	"strings"
	"testing"

	"github.com/Annapoorna04/HiperAI/internal/config"
)

const wellFormedJD = `Job Title: Senior Backend Engineer

Job Summary: We are looking for an experienced backend engineer to join our
platform team and own critical services end to end.

Responsibilities:
- Design and build scalable backend services
- Review code and mentor junior engineers
- Own production reliability for your services

Skills:
- Python, Django, AWS
- 5+ years of backend experience`

func newOutputValidator() *OutputValidator {
	return NewOutputValidator(100, 5000, config.DefaultPolicy().Output)
}

func TestOutputValidator_Accepts(t *testing.T) {
	validator := newOutputValidator()

	metrics, result := validator.Score(wellFormedJD)
	if !result.Allowed {
		t.Fatalf("expected accepted, got rejected: %s", result.Reason)
	}

	wantSections := []string{"Job Title", "Job Summary", "Responsibilities", "Skills"}
	if len(metrics.SectionsFound) != len(wantSections) {
		t.Fatalf("SectionsFound: %v, want %v", metrics.SectionsFound, wantSections)
	}
	for i, label := range wantSections {
		if metrics.SectionsFound[i] != label {
			t.Errorf("SectionsFound[%d]: %q, want %q", i, metrics.SectionsFound[i], label)
		}
	}

	if !metrics.HasBulletPoints {
		t.Error("expected HasBulletPoints=true")
	}
	if metrics.QualityScore <= 0 {
		t.Errorf("QualityScore: %f, want > 0", metrics.QualityScore)
	}
	if metrics.Length != len(wellFormedJD) {
		t.Errorf("Length: %d, want %d", metrics.Length, len(wellFormedJD))
	}
	if metrics.WordCount != len(strings.Fields(wellFormedJD)) {
		t.Errorf("WordCount: %d, want %d", metrics.WordCount, len(strings.Fields(wellFormedJD)))
	}
}

func TestOutputValidator_Rejects(t *testing.T) {
	validator := newOutputValidator()

	tests := []struct {
		name       string
		text       string
		wantReason string
	}{
		{
			name:       "too short",
			text:       "Job Title: Dev",
			wantReason: "Generated output is too short",
		},
		{
			name:       "too long",
			text:       "Job Title: Dev\n" + strings.Repeat("filler text ", 500),
			wantReason: "Generated output is too long",
		},
		{
			name:       "no recognized sections",
			text:       strings.Repeat("unstructured model rambling without any headings at all. ", 4),
			wantReason: "Generated output doesn't match expected format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, result := validator.Score(tt.text)
			if result.Allowed {
				t.Fatal("expected rejection")
			}
			if result.Reason != tt.wantReason {
				t.Errorf("Reason: %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestOutputValidator_BulletDetection(t *testing.T) {
	validator := newOutputValidator()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "dash bullet", text: "Responsibilities:\n- build things", want: true},
		{name: "star bullet", text: "Responsibilities:\n* build things", want: true},
		{name: "numbered bullet", text: "Responsibilities:\n1. build things", want: true},
		{name: "indented bullet", text: "Responsibilities:\n   - build things", want: true},
		{name: "no bullets", text: "Responsibilities: build things, review code", want: false},
		{name: "mid-line dash is not a bullet", text: "well-known responsibilities and duties", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := validator.Metrics(tt.text)
			if metrics.HasBulletPoints != tt.want {
				t.Errorf("HasBulletPoints: %v, want %v", metrics.HasBulletPoints, tt.want)
			}
		})
	}
}

// The score never decreases when a fixed text gains one more recognized
// section or a bullet line.
func TestOutputValidator_ScoreMonotonic(t *testing.T) {
	validator := newOutputValidator()

	base := "An engineering position at a growing company with many interesting problems to solve."

	withOneSection := base + "\nJob Title: Engineer"
	withTwoSections := withOneSection + "\nResponsibilities: many"
	withBullets := withTwoSections + "\n- first duty"

	scoreBase := validator.Metrics(base).QualityScore
	scoreOne := validator.Metrics(withOneSection).QualityScore
	scoreTwo := validator.Metrics(withTwoSections).QualityScore
	scoreBullets := validator.Metrics(withBullets).QualityScore

	if scoreOne < scoreBase {
		t.Errorf("adding a section decreased score: %f -> %f", scoreBase, scoreOne)
	}
	if scoreTwo < scoreOne {
		t.Errorf("adding a section decreased score: %f -> %f", scoreOne, scoreTwo)
	}
	if scoreBullets < scoreTwo {
		t.Errorf("adding bullets decreased score: %f -> %f", scoreTwo, scoreBullets)
	}
}

func TestOutputValidator_ScoreCapped(t *testing.T) {
	validator := newOutputValidator()

	metrics := validator.Metrics(wellFormedJD + strings.Repeat(" extra words to inflate the length term", 100))
	if metrics.QualityScore > 100 {
		t.Errorf("QualityScore: %f, want <= 100", metrics.QualityScore)
	}
}

func TestOutputValidator_SectionSynonyms(t *testing.T) {
	validator := newOutputValidator()

	// "Summary" alone counts for the Job Summary label.
	text := "Summary: a short role overview for candidates evaluating this opening at our company today."
	metrics := validator.Metrics(text)

	found := false
	for _, label := range metrics.SectionsFound {
		if label == "Job Summary" {
			found = true
		}
	}
	if !found {
		t.Errorf("SectionsFound: %v, want Job Summary via synonym", metrics.SectionsFound)
	}
}
