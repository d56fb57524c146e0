package config

import (
	"fmt"
	"os"
	"regexp"
	"slices"
)

// knownToolNames are the built-in tool names an agent may reference, beyond
// the specialist agent names (which the supervisor reaches as delegation
// tools). Kept here so a typo in YAML fails at boot, not mid-investigation.
var knownToolNames = map[string]bool{
	"write_todos":                true,
	"read_todos":                 true,
	"get_resource_yaml":          true,
	"get_resource_dependency":    true,
	"list_resources":             true,
	"pod_logs":                   true,
	"search_logs":                true,
	"query_metrics":              true,
	"set_kubecontext":            true,
	"run_shell":                  true,
	"lookup_past_investigations": true,
}

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	// Providers first: agents cross-reference them
	if err := v.validateLLMProviders(); err != nil {
		return fmt.Errorf("LLM provider validation failed: %w", err)
	}

	if err := v.validateAgents(); err != nil {
		return fmt.Errorf("agent validation failed: %w", err)
	}

	if err := v.validateDefaults(); err != nil {
		return fmt.Errorf("defaults validation failed: %w", err)
	}

	if err := v.validateMasking(); err != nil {
		return fmt.Errorf("masking validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateMasking() error {
	m := v.cfg.Masking
	if m == nil || !m.Enabled {
		return nil
	}

	builtin := GetBuiltinConfig()
	for _, group := range m.PatternGroups {
		if _, ok := builtin.PatternGroups[group]; !ok {
			return NewValidationError("masking", "masking", "pattern_groups", fmt.Errorf("pattern group '%s' not found", group))
		}
	}
	for _, name := range m.Patterns {
		if _, ok := builtin.MaskingPatterns[name]; !ok && !slices.Contains(builtin.CodeMaskers, name) {
			return NewValidationError("masking", "masking", "patterns", fmt.Errorf("pattern '%s' not found", name))
		}
	}
	for i, p := range m.CustomPatterns {
		if p.Pattern == "" {
			return NewValidationError("masking", "masking", fmt.Sprintf("custom_patterns[%d].pattern", i), fmt.Errorf("pattern required"))
		}
		if _, err := regexp.Compile(p.Pattern); err != nil {
			return NewValidationError("masking", "masking", fmt.Sprintf("custom_patterns[%d].pattern", i), fmt.Errorf("invalid regex: %v", err))
		}
		if p.Replacement == "" {
			return NewValidationError("masking", "masking", fmt.Sprintf("custom_patterns[%d].replacement", i), fmt.Errorf("replacement required"))
		}
	}
	return nil
}

func (v *ConfigValidator) validateAgents() error {
	if !v.cfg.AgentRegistry.Has(AgentSupervisor) {
		return NewValidationError("agent", AgentSupervisor, "", fmt.Errorf("supervisor agent definition missing"))
	}

	for name, agent := range v.cfg.AgentRegistry.GetAll() {
		if len(agent.Tools) == 0 {
			return NewValidationError("agent", name, "tools", fmt.Errorf("at least one tool required"))
		}

		for _, tool := range agent.Tools {
			if knownToolNames[tool] {
				continue
			}
			// Specialist names are valid delegation tools for the supervisor
			if name == AgentSupervisor && v.cfg.AgentRegistry.Has(tool) {
				continue
			}
			return NewValidationError("agent", name, "tools", fmt.Errorf("unknown tool '%s'", tool))
		}

		if agent.MaxTurns != nil && *agent.MaxTurns < 1 {
			return NewValidationError("agent", name, "max_turns", fmt.Errorf("must be at least 1"))
		}

		if agent.LLMProvider != "" && !v.cfg.LLMProviderRegistry.Has(agent.LLMProvider) {
			return NewValidationError("agent", name, "llm_provider", fmt.Errorf("LLM provider '%s' not found", agent.LLMProvider))
		}
	}

	return nil
}

func (v *ConfigValidator) validateLLMProviders() error {
	for name, provider := range v.cfg.LLMProviderRegistry.GetAll() {
		if !provider.Type.IsValid() {
			return NewValidationError("llm_provider", name, "type", fmt.Errorf("invalid provider type: %s", provider.Type))
		}

		if provider.Model == "" {
			return NewValidationError("llm_provider", name, "model", fmt.Errorf("model required"))
		}

		// Only the provider the defaults point at must have its key set;
		// unused built-ins must not block boot.
		if provider.APIKeyEnv != "" && name == v.cfg.Defaults.LLMProvider {
			if value := os.Getenv(provider.APIKeyEnv); value == "" {
				return NewValidationError("llm_provider", name, "api_key_env", fmt.Errorf("environment variable %s is not set", provider.APIKeyEnv))
			}
		}

		if provider.MaxToolResultTokens < 1000 {
			return NewValidationError("llm_provider", name, "max_tool_result_tokens", fmt.Errorf("must be at least 1000"))
		}
	}

	return nil
}

func (v *ConfigValidator) validateDefaults() error {
	d := v.cfg.Defaults
	if d.LLMProvider == "" {
		return NewValidationError("defaults", "defaults", "llm_provider", fmt.Errorf("default LLM provider required"))
	}
	if !v.cfg.LLMProviderRegistry.Has(d.LLMProvider) {
		return NewValidationError("defaults", "defaults", "llm_provider", fmt.Errorf("LLM provider '%s' not found", d.LLMProvider))
	}
	if d.MaxTurns != nil && *d.MaxTurns < 1 {
		return NewValidationError("defaults", "defaults", "max_turns", fmt.Errorf("must be at least 1"))
	}
	return nil
}
