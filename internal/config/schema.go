package config

// Policy is the externally editable guardrail configuration. Pattern lists,
// section labels, and scoring weights live here so they can be extended
// without touching the matching engine.
type Policy struct {
	ContentFilter ContentFilterPolicy `yaml:"content_filter"`
	Sanitizer     SanitizerPolicy     `yaml:"sanitizer"`
	Output        OutputPolicy        `yaml:"output"`
}

// ContentFilterPolicy holds the two ordered pattern sets. Malicious patterns
// are always checked before inappropriate ones.
type ContentFilterPolicy struct {
	MaliciousPatterns     []string `yaml:"malicious_patterns"`
	InappropriatePatterns []string `yaml:"inappropriate_patterns"`
}

// SanitizerPolicy lists the characters stripped from input before it reaches
// the model.
type SanitizerPolicy struct {
	UnsafeCharacters string `yaml:"unsafe_characters"`
}

// OutputPolicy configures section detection and quality scoring.
type OutputPolicy struct {
	Sections []SectionPolicy `yaml:"sections"`
	Scoring  ScoringPolicy   `yaml:"scoring"`
}

// SectionPolicy maps a canonical section label to the synonyms that count as
// a match. Matching is a case-insensitive substring check.
type SectionPolicy struct {
	Label    string   `yaml:"label"`
	Synonyms []string `yaml:"synonyms"`
}

// ScoringPolicy contains the quality-score weights. The composite is
// section_points per detected section, plus bullet_bonus when any bullet
// line exists, plus up to length_points awarded linearly per
// words_per_length_point words, capped at max_score.
type ScoringPolicy struct {
	SectionPoints       float64 `yaml:"section_points"`
	BulletBonus         float64 `yaml:"bullet_bonus"`
	LengthPoints        float64 `yaml:"length_points"`
	WordsPerLengthPoint float64 `yaml:"words_per_length_point"`
	MaxScore            float64 `yaml:"max_score"`
}

// DefaultPolicy returns the compiled-in guardrail policy, matching the
// behavior the service ships with when no policy file is present.
func DefaultPolicy() Policy {
	return Policy{
		ContentFilter: ContentFilterPolicy{
			MaliciousPatterns: []string{
				`\b(hack|exploit|inject|sql|script|xss|malware)\b`,
				`<script.*?>.*?</script>`,
				`(javascript:|data:text/html)`,
				`(\bDROP\b|\bDELETE\b|\bINSERT\b)\s+(TABLE|FROM|INTO)`,
			},
			InappropriatePatterns: []string{
				`\b(porn|xxx|sex|nude|nsfw)\b`,
				`\b(violence|kill|murder|terrorist)\b`,
			},
		},
		Sanitizer: SanitizerPolicy{
			UnsafeCharacters: "<>{}",
		},
		Output: OutputPolicy{
			Sections: []SectionPolicy{
				{Label: "Job Title", Synonyms: []string{"job title"}},
				{Label: "Job Summary", Synonyms: []string{"job summary", "summary"}},
				{Label: "Responsibilities", Synonyms: []string{"responsibilities"}},
				{Label: "Skills", Synonyms: []string{"skills"}},
			},
			Scoring: ScoringPolicy{
				SectionPoints:       20,
				BulletBonus:         10,
				LengthPoints:        10,
				WordsPerLengthPoint: 50,
				MaxScore:            100,
			},
		},
	}
}
