package config

import (
	"sync"
)

// Canonical agent names. The supervisor drives the investigation; the
// specialists are exposed to it as delegation tools under these names.
const (
	AgentSupervisor        = "supervisor"
	AgentLogAnalysis       = "log_analysis"
	AgentResourceDiscovery = "resource_discovery"
	AgentMetricsAnalysis   = "metrics_analysis"
)

// SpecialistAgents lists the built-in specialist agent names in the order
// they are offered to the supervisor.
var SpecialistAgents = []string{
	AgentLogAnalysis,
	AgentResourceDiscovery,
	AgentMetricsAnalysis,
}

// BuiltinConfig holds all built-in configuration data.
// This provides default agents and LLM providers; user YAML overrides by name.
type BuiltinConfig struct {
	Agents          map[string]AgentConfig
	LLMProviders    map[string]LLMProviderConfig
	MaskingPatterns map[string]MaskingPattern
	PatternGroups   map[string][]string
	CodeMaskers     []string
}

var (
	builtinConfig     *BuiltinConfig
	builtinConfigOnce sync.Once
)

// GetBuiltinConfig returns the singleton built-in configuration (thread-safe, lazy-initialized)
func GetBuiltinConfig() *BuiltinConfig {
	builtinConfigOnce.Do(initBuiltinConfig)
	return builtinConfig
}

func initBuiltinConfig() {
	builtinConfig = &BuiltinConfig{
		Agents:          initBuiltinAgents(),
		LLMProviders:    initBuiltinLLMProviders(),
		MaskingPatterns: initBuiltinMaskingPatterns(),
		PatternGroups:   initBuiltinPatternGroups(),
		CodeMaskers:     initBuiltinCodeMaskers(),
	}
}

func initBuiltinAgents() map[string]AgentConfig {
	specialistTurns := 15
	return map[string]AgentConfig{
		AgentSupervisor: {
			Description:  "Coordinates the investigation: plans, delegates to specialists, runs gated operator commands, writes the final report",
			Instructions: supervisorInstructions,
			Tools: []string{
				"write_todos",
				"read_todos",
				"set_kubecontext",
				"lookup_past_investigations",
				"run_shell",
				AgentLogAnalysis,
				AgentResourceDiscovery,
				AgentMetricsAnalysis,
			},
		},
		AgentLogAnalysis: {
			Description:  "Digs through pod logs for errors, crashes and suspicious patterns",
			Instructions: logAnalysisInstructions,
			Tools:        []string{"pod_logs", "search_logs", "read_todos"},
			MaxTurns:     &specialistTurns,
		},
		AgentResourceDiscovery: {
			Description:  "Maps cluster resources, their specs, status and dependencies",
			Instructions: resourceDiscoveryInstructions,
			Tools:        []string{"get_resource_yaml", "get_resource_dependency", "list_resources", "read_todos"},
			MaxTurns:     &specialistTurns,
		},
		AgentMetricsAnalysis: {
			Description:  "Queries metrics for resource pressure, saturation and anomalies",
			Instructions: metricsAnalysisInstructions,
			Tools:        []string{"query_metrics", "list_resources", "read_todos"},
			MaxTurns:     &specialistTurns,
		},
	}
}

func initBuiltinLLMProviders() map[string]LLMProviderConfig {
	return map[string]LLMProviderConfig{
		"anthropic-default": {
			Type:                LLMProviderTypeAnthropic,
			Model:               "claude-sonnet-4-20250514",
			APIKeyEnv:           "ANTHROPIC_API_KEY",
			MaxToolResultTokens: 2500,
		},
		"openai-default": {
			Type:                LLMProviderTypeOpenAI,
			Model:               "gpt-5",
			APIKeyEnv:           "OPENAI_API_KEY",
			MaxToolResultTokens: 2500,
		},
		"xai-default": {
			Type:                LLMProviderTypeXAI,
			Model:               "grok-4",
			APIKeyEnv:           "XAI_API_KEY",
			BaseURL:             "https://api.x.ai/v1",
			MaxToolResultTokens: 2500,
		},
	}
}

const supervisorInstructions = `You are the supervising SRE for a Kubernetes investigation.

Workflow:
1. Keep a todo list with write_todos and update it as your understanding changes.
2. Delegate focused questions to the specialist tools (log_analysis,
   resource_discovery, metrics_analysis); give each a concrete goal.
3. Use lookup_past_investigations to check whether this problem was seen before.
4. Use run_shell only when a direct command is genuinely needed; the user must
   approve each call.
5. When the root cause is clear, stop investigating.

End your final message with exactly these two sections:

## Summary
What happened, the root cause, and the evidence.

## Remediation
Concrete, ordered steps to fix it. Write "No remediation required." if none.`

const logAnalysisInstructions = `You are a log analysis specialist. Answer the delegated question using pod
logs only. Report the exact error messages and timestamps you found, then a
short conclusion. Do not speculate beyond the log evidence.`

const resourceDiscoveryInstructions = `You are a resource discovery specialist. Map the resources relevant to the
delegated question: spec, status, owner references and dependencies. Report
what exists, what state it is in, and anything misconfigured.`

const metricsAnalysisInstructions = `You are a metrics analysis specialist. Answer the delegated question with
metric queries: saturation, error rates, restarts, resource pressure. Report
the numbers you observed and what they indicate.`
