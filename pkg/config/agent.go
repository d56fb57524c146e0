// Package config provides configuration management for the investigator
// daemon: agent definitions, LLM providers, and system settings.
package config

import (
	"fmt"
	"sync"
)

// DefaultMaxTurns is the turn cap applied when neither the agent nor the
// defaults section pins one.
const DefaultMaxTurns = 30

// AgentConfig defines one agent: the supervisor or a specialist. Agents are
// metadata only; the runtime in pkg/agent interprets them.
type AgentConfig struct {
	// Human-readable description, surfaced to the supervisor when the
	// agent is exposed as a delegation tool.
	Description string `yaml:"description,omitempty"`

	// System instructions for this agent. User YAML overrides the
	// built-in text wholesale.
	Instructions string `yaml:"instructions,omitempty"`

	// Tool names in scope for this agent. For the supervisor this list
	// includes the specialist agent names, which the orchestrator routes
	// as delegation tools.
	Tools []string `yaml:"tools,omitempty"`

	// Max turns before the runtime forces a conclusion without tools.
	MaxTurns *int `yaml:"max_turns,omitempty"`

	// LLM provider name; empty falls back to defaults.llm_provider.
	LLMProvider string `yaml:"llm_provider,omitempty"`
}

// AgentRegistry stores agent configurations in memory with thread-safe access
type AgentRegistry struct {
	agents map[string]*AgentConfig
	mu     sync.RWMutex
}

// NewAgentRegistry creates a new agent registry
func NewAgentRegistry(agents map[string]*AgentConfig) *AgentRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*AgentConfig, len(agents))
	for k, v := range agents {
		copied[k] = v
	}
	return &AgentRegistry{
		agents: copied,
	}
}

// Get retrieves an agent configuration by name (thread-safe)
func (r *AgentRegistry) Get(name string) (*AgentConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	agent, exists := r.agents[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrAgentNotFound, name)
	}
	return agent, nil
}

// GetAll returns all agent configurations (thread-safe, returns copy)
func (r *AgentRegistry) GetAll() map[string]*AgentConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*AgentConfig, len(r.agents))
	for k, v := range r.agents {
		result[k] = v
	}
	return result
}

// Has checks if an agent exists in the registry (thread-safe)
func (r *AgentRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.agents[name]
	return exists
}

// Len returns the number of agents in the registry (thread-safe)
func (r *AgentRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.agents)
}
