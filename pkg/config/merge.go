package config

// mergeAgents merges built-in and user-defined agent configurations.
// User-defined agents override built-in agents with the same name.
func mergeAgents(builtinAgents map[string]AgentConfig, userAgents map[string]AgentConfig) map[string]*AgentConfig {
	result := make(map[string]*AgentConfig)

	// First, add built-in agents
	for name, agent := range builtinAgents {
		agentCopy := agent
		// Defensive copy of the tool list to prevent shared state
		toolsCopy := make([]string, len(agent.Tools))
		copy(toolsCopy, agent.Tools)
		agentCopy.Tools = toolsCopy
		result[name] = &agentCopy
	}

	// Then, override with user-defined agents (or add new ones)
	for name, userAgent := range userAgents {
		agentCopy := userAgent
		result[name] = &agentCopy
	}

	return result
}

// mergeLLMProviders merges built-in and user-defined LLM provider configurations.
// User-defined providers override built-in providers with the same name.
func mergeLLMProviders(builtinProviders map[string]LLMProviderConfig, userProviders map[string]LLMProviderConfig) map[string]*LLMProviderConfig {
	result := make(map[string]*LLMProviderConfig)

	// First, add built-in providers
	for name, provider := range builtinProviders {
		providerCopy := provider
		result[name] = &providerCopy
	}

	// Then, override with user-defined providers (or add new ones)
	for name, userProvider := range userProviders {
		providerCopy := userProvider
		result[name] = &providerCopy
	}

	return result
}
