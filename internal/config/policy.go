package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// LoadPolicy reads the guardrail policy file. The path comes from
// GUARDRAILS_CONFIG_PATH and defaults to configs/guardrails.yaml. A missing
// file at the default path is not an error: the compiled-in defaults apply,
// so the service runs without any config directory at all.
func LoadPolicy() (*Policy, error) {
	path := os.Getenv("GUARDRAILS_CONFIG_PATH")
	explicit := path != ""
	if path == "" {
		path = "configs/guardrails.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			policy := DefaultPolicy()
			return &policy, nil
		}
		return nil, err
	}

	var policy Policy
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return nil, err
	}

	applyDefaults(&policy)

	if err := policy.Validate(); err != nil {
		return nil, err
	}

	return &policy, nil
}

func applyDefaults(policy *Policy) {
	defaults := DefaultPolicy()

	if len(policy.ContentFilter.MaliciousPatterns) == 0 {
		policy.ContentFilter.MaliciousPatterns = defaults.ContentFilter.MaliciousPatterns
	}
	if len(policy.ContentFilter.InappropriatePatterns) == 0 {
		policy.ContentFilter.InappropriatePatterns = defaults.ContentFilter.InappropriatePatterns
	}
	if policy.Sanitizer.UnsafeCharacters == "" {
		policy.Sanitizer.UnsafeCharacters = defaults.Sanitizer.UnsafeCharacters
	}
	if len(policy.Output.Sections) == 0 {
		policy.Output.Sections = defaults.Output.Sections
	}
	if policy.Output.Scoring.SectionPoints == 0 {
		policy.Output.Scoring.SectionPoints = defaults.Output.Scoring.SectionPoints
	}
	if policy.Output.Scoring.BulletBonus == 0 {
		policy.Output.Scoring.BulletBonus = defaults.Output.Scoring.BulletBonus
	}
	if policy.Output.Scoring.LengthPoints == 0 {
		policy.Output.Scoring.LengthPoints = defaults.Output.Scoring.LengthPoints
	}
	if policy.Output.Scoring.WordsPerLengthPoint == 0 {
		policy.Output.Scoring.WordsPerLengthPoint = defaults.Output.Scoring.WordsPerLengthPoint
	}
	if policy.Output.Scoring.MaxScore == 0 {
		policy.Output.Scoring.MaxScore = defaults.Output.Scoring.MaxScore
	}
}

func (p *Policy) Validate() error {
	for _, pattern := range p.ContentFilter.MaliciousPatterns {
		if _, err := regexp.Compile(pattern); err != nil {
			return fmt.Errorf("invalid malicious pattern %q: %w", pattern, err)
		}
	}
	for _, pattern := range p.ContentFilter.InappropriatePatterns {
		if _, err := regexp.Compile(pattern); err != nil {
			return fmt.Errorf("invalid inappropriate pattern %q: %w", pattern, err)
		}
	}
	for _, section := range p.Output.Sections {
		if section.Label == "" {
			return fmt.Errorf("output section with empty label")
		}
	}
	return nil
}
