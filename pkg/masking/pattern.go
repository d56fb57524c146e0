package masking

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"

	"github.com/agentkube/investigator/pkg/config"
)

// CompiledPattern is one ready-to-apply regex rule.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// compilePatterns compiles the built-in rules plus the operator's custom
// rules. Invalid patterns are logged and skipped; the validator catches
// custom-pattern errors at boot, so a skip here means a bad built-in.
func compilePatterns(custom []config.MaskingPattern) map[string]*CompiledPattern {
	compiled := make(map[string]*CompiledPattern)

	for name, p := range config.GetBuiltinConfig().MaskingPatterns {
		re, err := regexp.Compile(p.Pattern)
		if err != nil {
			slog.Error("Failed to compile built-in masking pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		compiled[name] = &CompiledPattern{Name: name, Regex: re, Replacement: p.Replacement}
	}

	for i, p := range custom {
		name := fmt.Sprintf("custom:%d", i)
		re, err := regexp.Compile(p.Pattern)
		if err != nil {
			slog.Error("Failed to compile custom masking pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		compiled[name] = &CompiledPattern{Name: name, Regex: re, Replacement: p.Replacement}
	}

	return compiled
}

// resolvedPatterns is the deduplicated set of maskers and regex rules the
// service applies to every tool output.
type resolvedPatterns struct {
	maskerNames   []string
	regexPatterns []*CompiledPattern
}

// resolve expands the configured groups and individual names into the
// concrete rule set, keeping first-mention order. Custom patterns always
// run, after the built-ins.
func resolve(cfg *config.MaskingConfig, compiled map[string]*CompiledPattern) *resolvedPatterns {
	builtin := config.GetBuiltinConfig()
	seen := make(map[string]bool)
	out := &resolvedPatterns{}

	add := func(name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		if slices.Contains(builtin.CodeMaskers, name) {
			out.maskerNames = append(out.maskerNames, name)
			return
		}
		if cp, ok := compiled[name]; ok {
			out.regexPatterns = append(out.regexPatterns, cp)
		}
	}

	for _, group := range cfg.PatternGroups {
		for _, name := range builtin.PatternGroups[group] {
			add(name)
		}
	}
	for _, name := range cfg.Patterns {
		add(name)
	}
	for i := range cfg.CustomPatterns {
		add(fmt.Sprintf("custom:%d", i))
	}

	return out
}
