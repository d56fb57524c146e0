package masking

import (
	"log/slog"

	"github.com/agentkube/investigator/pkg/config"
)

// RedactionNotice replaces the whole output when masking itself fails.
// Fail-closed: an output we could not scrub is an output we do not show.
const RedactionNotice = "[REDACTED: data masking failure, tool output could not be safely processed]"

// Service applies the configured masking policy to tool output. Built once
// at startup with eagerly compiled patterns; stateless and safe for
// concurrent use by every investigation.
type Service struct {
	enabled  bool
	resolved *resolvedPatterns
	maskers  map[string]Masker
}

// NewService compiles the masking policy. Structural maskers run before the
// regex sweep so they see unmangled YAML/JSON.
func NewService(cfg *config.MaskingConfig) *Service {
	s := &Service{
		enabled: cfg.Enabled,
		maskers: map[string]Masker{},
	}
	if !cfg.Enabled {
		slog.Info("Tool output masking disabled")
		return s
	}

	s.registerMasker(&KubernetesSecretMasker{})

	compiled := compilePatterns(cfg.CustomPatterns)
	s.resolved = resolve(cfg, compiled)

	slog.Info("Masking service initialized",
		"code_maskers", len(s.resolved.maskerNames),
		"regex_patterns", len(s.resolved.regexPatterns))
	return s
}

// MaskToolOutput scrubs one tool output. Returns the output unchanged when
// masking is disabled or nothing matches, and RedactionNotice when masking
// panics mid-way.
func (s *Service) MaskToolOutput(output string) (masked string) {
	if !s.enabled || output == "" {
		return output
	}
	if len(s.resolved.maskerNames) == 0 && len(s.resolved.regexPatterns) == 0 {
		return output
	}

	// A masker or pattern that blows up must not leak the raw output.
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Masking failed, redacting tool output", "panic", r)
			masked = RedactionNotice
		}
	}()

	masked = output
	for _, name := range s.resolved.maskerNames {
		m, ok := s.maskers[name]
		if !ok {
			continue
		}
		if m.AppliesTo(masked) {
			masked = m.Mask(masked)
		}
	}
	for _, p := range s.resolved.regexPatterns {
		masked = p.Regex.ReplaceAllString(masked, p.Replacement)
	}
	return masked
}

func (s *Service) registerMasker(m Masker) {
	s.maskers[m.Name()] = m
}
