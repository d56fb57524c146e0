package config

// Config is the umbrella configuration object that encapsulates
// all registries, defaults, and configuration state.
// This is the primary object returned by Initialize() and used throughout the daemon.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// System-wide defaults
	Defaults *Defaults

	// Resolved system settings (listen address, todo snapshot dir)
	System *SystemConfig

	// Tool output masking policy
	Masking *MaskingConfig

	// Background retention policy for finished tasks
	Retention *RetentionConfig

	// Component registries
	AgentRegistry       *AgentRegistry
	LLMProviderRegistry *LLMProviderRegistry
}

// Initialize is defined in loader.go

// Stats contains statistics about loaded configuration
type Stats struct {
	Agents       int
	LLMProviders int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.AgentRegistry != nil {
		s.Agents = c.AgentRegistry.Len()
	}
	if c.LLMProviderRegistry != nil {
		s.LLMProviders = c.LLMProviderRegistry.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetAgent retrieves an agent configuration by name.
// This is a convenience method that wraps AgentRegistry.Get().
func (c *Config) GetAgent(name string) (*AgentConfig, error) {
	return c.AgentRegistry.Get(name)
}

// GetLLMProvider retrieves an LLM provider configuration by name.
// This is a convenience method that wraps LLMProviderRegistry.Get().
func (c *Config) GetLLMProvider(name string) (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(name)
}

// ProviderFor resolves the LLM provider for an agent, falling back to the
// system default when the agent does not pin one.
func (c *Config) ProviderFor(agent *AgentConfig) (*LLMProviderConfig, error) {
	name := agent.LLMProvider
	if name == "" {
		name = c.Defaults.LLMProvider
	}
	return c.LLMProviderRegistry.Get(name)
}

// MaxTurnsFor resolves the turn cap for an agent, falling back to the
// system default.
func (c *Config) MaxTurnsFor(agent *AgentConfig) int {
	if agent.MaxTurns != nil {
		return *agent.MaxTurns
	}
	if c.Defaults.MaxTurns != nil {
		return *c.Defaults.MaxTurns
	}
	return DefaultMaxTurns
}
