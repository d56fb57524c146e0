package config

// Defaults contains system-wide default configurations.
// These values apply when an agent does not pin its own.
type Defaults struct {
	// LLM provider default for all agents
	LLMProvider string `yaml:"llm_provider,omitempty"`

	// Max turns default (forces conclusion when reached)
	MaxTurns *int `yaml:"max_turns,omitempty"`
}

// builtinDefaults are merged under user-provided defaults with mergo.
func builtinDefaults() *Defaults {
	maxTurns := DefaultMaxTurns
	return &Defaults{
		LLMProvider: "anthropic-default",
		MaxTurns:    &maxTurns,
	}
}
