package config

// MaskingPattern is one regex rule applied to tool output before it is
// journaled, streamed, or fed back to the model.
type MaskingPattern struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
	Description string `yaml:"description,omitempty"`
}

// MaskingYAMLConfig is the masking section of investigator.yaml.
type MaskingYAMLConfig struct {
	// Enabled defaults to true; masking is opt-out, not opt-in. Tool
	// output routinely contains Secret manifests and kubeconfig excerpts.
	Enabled *bool `yaml:"enabled"`

	// PatternGroups are names from BuiltinPatternGroups (e.g. "kubernetes",
	// "security", "all").
	PatternGroups []string `yaml:"pattern_groups,omitempty"`

	// Patterns are individual built-in pattern names, added on top of the
	// expanded groups.
	Patterns []string `yaml:"patterns,omitempty"`

	// CustomPatterns are operator-supplied regex rules, applied after the
	// built-ins.
	CustomPatterns []MaskingPattern `yaml:"custom_patterns,omitempty"`
}

// MaskingConfig is the resolved masking configuration handed to
// masking.NewService.
type MaskingConfig struct {
	Enabled        bool
	PatternGroups  []string
	Patterns       []string
	CustomPatterns []MaskingPattern
}

// resolveMaskingConfig applies defaults over the YAML section. With no
// section at all, masking runs with the kubernetes group.
func resolveMaskingConfig(y *MaskingYAMLConfig) *MaskingConfig {
	cfg := &MaskingConfig{
		Enabled:       true,
		PatternGroups: []string{"kubernetes"},
	}
	if y == nil {
		return cfg
	}
	if y.Enabled != nil {
		cfg.Enabled = *y.Enabled
	}
	if len(y.PatternGroups) > 0 {
		cfg.PatternGroups = y.PatternGroups
	}
	cfg.Patterns = y.Patterns
	cfg.CustomPatterns = y.CustomPatterns
	return cfg
}

// initBuiltinMaskingPatterns returns the built-in regex rules, keyed by the
// names pattern groups and YAML reference.
func initBuiltinMaskingPatterns() map[string]MaskingPattern {
	return map[string]MaskingPattern{
		"api_key": {
			Pattern:     `(?i)(?:api[_-]?key|apikey)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-]{20,})["']?`,
			Replacement: `"api_key": "__MASKED_API_KEY__"`,
			Description: "API keys",
		},
		"password": {
			Pattern:     `(?i)(?:password|pwd|pass)["']?\s*[:=]\s*["']?([^"'\s\n]{6,})["']?`,
			Replacement: `"password": "__MASKED_PASSWORD__"`,
			Description: "Passwords",
		},
		"token": {
			Pattern:     `(?i)(?:token|bearer|jwt)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
			Replacement: `"token": "__MASKED_TOKEN__"`,
			Description: "Access tokens",
		},
		"certificate": {
			Pattern:     `(?s)-----BEGIN [A-Z ]+-----.*?-----END [A-Z ]+-----`,
			Replacement: `__MASKED_CERTIFICATE__`,
			Description: "PEM blocks",
		},
		"certificate_authority_data": {
			Pattern:     `(?i)certificate-authority-data:\s*([A-Za-z0-9+/]{20,}={0,2})`,
			Replacement: `certificate-authority-data: __MASKED_CA_CERTIFICATE__`,
			Description: "Kubeconfig CA data",
		},
		"ssh_key": {
			Pattern:     `ssh-(?:rsa|dss|ed25519|ecdsa)\s+[A-Za-z0-9+/=]+`,
			Replacement: `__MASKED_SSH_KEY__`,
			Description: "SSH public keys",
		},
		"email": {
			Pattern:     `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9]+(?:[.-][A-Za-z0-9]+)*\.[A-Za-z]{2,63}\b`,
			Replacement: `__MASKED_EMAIL__`,
			Description: "Email addresses",
		},
		"aws_access_key": {
			Pattern:     `\bAKIA[A-Z0-9]{16}\b`,
			Replacement: `__MASKED_AWS_KEY__`,
			Description: "AWS access key IDs",
		},
		"github_token": {
			Pattern:     `\bgh[ps]_[A-Za-z0-9_]{36,255}\b`,
			Replacement: `__MASKED_GITHUB_TOKEN__`,
			Description: "GitHub tokens",
		},
	}
}

// initBuiltinPatternGroups maps group names to pattern or code-masker names.
// "kubernetes_secret" is the structural masker in pkg/masking; the rest are
// regex rules from initBuiltinMaskingPatterns.
func initBuiltinPatternGroups() map[string][]string {
	return map[string][]string{
		"basic":      {"api_key", "password"},
		"secrets":    {"api_key", "password", "token"},
		"security":   {"api_key", "password", "token", "certificate", "certificate_authority_data", "ssh_key", "email"},
		"kubernetes": {"kubernetes_secret", "api_key", "password", "token", "certificate", "certificate_authority_data"},
		"all":        {"kubernetes_secret", "api_key", "password", "token", "certificate", "certificate_authority_data", "ssh_key", "email", "aws_access_key", "github_token"},
	}
}

// initBuiltinCodeMaskers lists the structural maskers implemented in
// pkg/masking. Names here may appear in pattern groups alongside regex
// pattern names.
func initBuiltinCodeMaskers() []string {
	return []string{"kubernetes_secret"}
}
