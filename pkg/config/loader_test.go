package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfigDir lays out a config directory with the given file contents.
func writeConfigDir(t *testing.T, investigatorYAML, providersYAML string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "investigator.yaml"), []byte(investigatorYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "llm-providers.yaml"), []byte(providersYAML), 0o644))
	return dir
}

const minimalProvidersYAML = `
llm_providers:
  test-anthropic:
    type: anthropic
    model: claude-sonnet-4-20250514
    max_tool_result_tokens: 150000
`

func TestInitialize(t *testing.T) {
	ctx := context.Background()

	t.Run("builtins alone satisfy an empty agents section", func(t *testing.T) {
		dir := writeConfigDir(t, `
defaults:
  llm_provider: test-anthropic
`, minimalProvidersYAML)

		cfg, err := Initialize(ctx, dir)
		require.NoError(t, err)

		assert.True(t, cfg.AgentRegistry.Has(AgentSupervisor))
		for _, name := range SpecialistAgents {
			assert.True(t, cfg.AgentRegistry.Has(name), name)
		}
		assert.Equal(t, "test-anthropic", cfg.Defaults.LLMProvider)
		assert.Equal(t, DefaultMaxTurns, *cfg.Defaults.MaxTurns)
		assert.Equal(t, "127.0.0.1:8228", cfg.System.ListenAddr)
	})

	t.Run("user agent overrides builtin", func(t *testing.T) {
		dir := writeConfigDir(t, `
defaults:
  llm_provider: test-anthropic
agents:
  log_analysis:
    description: custom log digger
    tools: [pod_logs, read_todos]
    max_turns: 5
`, minimalProvidersYAML)

		cfg, err := Initialize(ctx, dir)
		require.NoError(t, err)

		agent, err := cfg.GetAgent(AgentLogAnalysis)
		require.NoError(t, err)
		assert.Equal(t, "custom log digger", agent.Description)
		assert.Equal(t, []string{"pod_logs", "read_todos"}, agent.Tools)
		assert.Equal(t, 5, cfg.MaxTurnsFor(agent))
	})

	t.Run("system section overrides defaults", func(t *testing.T) {
		dir := writeConfigDir(t, `
system:
  listen_addr: 127.0.0.1:9999
  todo_snapshot_dir: /tmp/todo-test
defaults:
  llm_provider: test-anthropic
`, minimalProvidersYAML)

		cfg, err := Initialize(ctx, dir)
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:9999", cfg.System.ListenAddr)
		assert.Equal(t, "/tmp/todo-test", cfg.System.TodoSnapshotDir)
	})

	t.Run("missing config file", func(t *testing.T) {
		dir := t.TempDir()
		_, err := Initialize(ctx, dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("unknown tool rejected", func(t *testing.T) {
		dir := writeConfigDir(t, `
defaults:
  llm_provider: test-anthropic
agents:
  log_analysis:
    tools: [pod_logs, frobnicate]
`, minimalProvidersYAML)

		_, err := Initialize(ctx, dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "frobnicate")
	})

	t.Run("agent referencing missing provider rejected", func(t *testing.T) {
		dir := writeConfigDir(t, `
defaults:
  llm_provider: test-anthropic
agents:
  log_analysis:
    tools: [pod_logs]
    llm_provider: nope
`, minimalProvidersYAML)

		_, err := Initialize(ctx, dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nope")
	})

	t.Run("default provider must exist", func(t *testing.T) {
		dir := writeConfigDir(t, `
defaults:
  llm_provider: ghost
`, minimalProvidersYAML)

		_, err := Initialize(ctx, dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ghost")
	})

	t.Run("default provider api key env enforced", func(t *testing.T) {
		dir := writeConfigDir(t, `
defaults:
  llm_provider: keyed
`, `
llm_providers:
  keyed:
    type: openai
    model: gpt-5
    api_key_env: TEST_LOADER_DEFINITELY_UNSET_KEY
    max_tool_result_tokens: 150000
`)

		_, err := Initialize(ctx, dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TEST_LOADER_DEFINITELY_UNSET_KEY")
	})

	t.Run("low token budget rejected", func(t *testing.T) {
		dir := writeConfigDir(t, `
defaults:
  llm_provider: tiny
`, `
llm_providers:
  tiny:
    type: anthropic
    model: claude-sonnet-4-20250514
    max_tool_result_tokens: 10
`)

		_, err := Initialize(ctx, dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_tool_result_tokens")
	})
}

func TestProviderFor(t *testing.T) {
	dir := writeConfigDir(t, `
defaults:
  llm_provider: test-anthropic
agents:
  metrics_analysis:
    tools: [query_metrics]
    llm_provider: test-openai
`, minimalProvidersYAML+`
  test-openai:
    type: openai
    model: gpt-5
    max_tool_result_tokens: 250000
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	pinned, err := cfg.GetAgent(AgentMetricsAnalysis)
	require.NoError(t, err)
	provider, err := cfg.ProviderFor(pinned)
	require.NoError(t, err)
	assert.Equal(t, LLMProviderTypeOpenAI, provider.Type)

	unpinned, err := cfg.GetAgent(AgentSupervisor)
	require.NoError(t, err)
	provider, err = cfg.ProviderFor(unpinned)
	require.NoError(t, err)
	assert.Equal(t, LLMProviderTypeAnthropic, provider.Type)
}
