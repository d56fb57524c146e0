package llm

import (
	"errors"
	"log/slog"
	"testing"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentkube/investigator/pkg/agent"
	"github.com/agentkube/investigator/pkg/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestEncodeAnthropicMessages(t *testing.T) {
	t.Run("system prompt extracted", func(t *testing.T) {
		system, msgs, err := encodeAnthropicMessages([]agent.ConversationMessage{
			{Role: agent.RoleSystem, Content: "you are a specialist"},
			{Role: agent.RoleUser, Content: "pods are crashing"},
		})
		require.NoError(t, err)
		assert.Equal(t, "you are a specialist", system)
		require.Len(t, msgs, 1)
		assert.Equal(t, sdk.MessageParamRoleUser, msgs[0].Role)
	})

	t.Run("assistant tool calls become tool_use blocks", func(t *testing.T) {
		_, msgs, err := encodeAnthropicMessages([]agent.ConversationMessage{
			{Role: agent.RoleUser, Content: "check the logs"},
			{
				Role:    agent.RoleAssistant,
				Content: "checking",
				ToolCalls: []agent.ToolCall{
					{ID: "call-1", Name: "pod_logs", Arguments: `{"pod":"api-0"}`},
				},
			},
		})
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, sdk.MessageParamRoleAssistant, msgs[1].Role)
		require.Len(t, msgs[1].Content, 2)
		require.NotNil(t, msgs[1].Content[0].OfText)
		require.NotNil(t, msgs[1].Content[1].OfToolUse)
		assert.Equal(t, "call-1", msgs[1].Content[1].OfToolUse.ID)
		assert.Equal(t, "pod_logs", msgs[1].Content[1].OfToolUse.Name)
	})

	t.Run("consecutive tool results coalesce into one user message", func(t *testing.T) {
		_, msgs, err := encodeAnthropicMessages([]agent.ConversationMessage{
			{Role: agent.RoleUser, Content: "investigate"},
			{
				Role: agent.RoleAssistant,
				ToolCalls: []agent.ToolCall{
					{ID: "call-1", Name: "pod_logs", Arguments: "{}"},
					{ID: "call-2", Name: "list_resources", Arguments: "{}"},
				},
			},
			{Role: agent.RoleTool, ToolCallID: "call-1", ToolName: "pod_logs", Content: "log lines"},
			{Role: agent.RoleTool, ToolCallID: "call-2", ToolName: "list_resources", Content: "3 pods"},
		})
		require.NoError(t, err)
		require.Len(t, msgs, 3)
		assert.Equal(t, sdk.MessageParamRoleUser, msgs[2].Role)
		require.Len(t, msgs[2].Content, 2)
		require.NotNil(t, msgs[2].Content[0].OfToolResult)
		assert.Equal(t, "call-1", msgs[2].Content[0].OfToolResult.ToolUseID)
		require.NotNil(t, msgs[2].Content[1].OfToolResult)
		assert.Equal(t, "call-2", msgs[2].Content[1].OfToolResult.ToolUseID)
	})

	t.Run("empty tool arguments default to empty object", func(t *testing.T) {
		_, msgs, err := encodeAnthropicMessages([]agent.ConversationMessage{
			{
				Role:      agent.RoleAssistant,
				ToolCalls: []agent.ToolCall{{ID: "call-1", Name: "read_todos", Arguments: ""}},
			},
		})
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		require.NotNil(t, msgs[0].Content[0].OfToolUse)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		_, _, err := encodeAnthropicMessages([]agent.ConversationMessage{{Role: "function"}})
		require.Error(t, err)
	})
}

func TestEncodeAnthropicTools(t *testing.T) {
	tools, err := encodeAnthropicTools([]agent.ToolDefinition{
		{
			Name:             "pod_logs",
			Description:      "fetch pod logs",
			ParametersSchema: `{"type":"object","properties":{"pod":{"type":"string"}},"required":["pod"]}`,
		},
	})
	require.NoError(t, err)
	require.Len(t, tools, 1)
	require.NotNil(t, tools[0].OfTool)
	assert.Equal(t, "pod_logs", tools[0].OfTool.Name)
	assert.Equal(t, "fetch pod logs", tools[0].OfTool.Description.Value)

	_, err = encodeAnthropicTools([]agent.ToolDefinition{
		{Name: "broken", ParametersSchema: "{not json"},
	})
	require.Error(t, err)
}

func TestEncodeOpenAIMessages(t *testing.T) {
	t.Run("roles map to message params", func(t *testing.T) {
		msgs, err := encodeOpenAIMessages([]agent.ConversationMessage{
			{Role: agent.RoleSystem, Content: "supervise"},
			{Role: agent.RoleUser, Content: "crashloop in payments"},
			{Role: agent.RoleAssistant, Content: "looking"},
			{Role: agent.RoleTool, ToolCallID: "call-1", Content: "result"},
		})
		require.NoError(t, err)
		require.Len(t, msgs, 4)
		assert.NotNil(t, msgs[0].OfSystem)
		assert.NotNil(t, msgs[1].OfUser)
		assert.NotNil(t, msgs[2].OfAssistant)
		require.NotNil(t, msgs[3].OfTool)
		assert.Equal(t, "call-1", msgs[3].OfTool.ToolCallID)
	})

	t.Run("assistant tool calls preserved", func(t *testing.T) {
		msgs, err := encodeOpenAIMessages([]agent.ConversationMessage{
			{
				Role: agent.RoleAssistant,
				ToolCalls: []agent.ToolCall{
					{ID: "call-9", Name: "query_metrics", Arguments: `{"query":"up"}`},
				},
			},
		})
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		require.NotNil(t, msgs[0].OfAssistant)
		require.Len(t, msgs[0].OfAssistant.ToolCalls, 1)
		fn := msgs[0].OfAssistant.ToolCalls[0].OfFunction
		require.NotNil(t, fn)
		assert.Equal(t, "call-9", fn.ID)
		assert.Equal(t, "query_metrics", fn.Function.Name)
		assert.Equal(t, `{"query":"up"}`, fn.Function.Arguments)
	})
}

func TestNewClient(t *testing.T) {
	t.Run("missing api key env", func(t *testing.T) {
		_, err := NewClient(&config.LLMProviderConfig{
			Type:      config.LLMProviderTypeAnthropic,
			Model:     "claude-sonnet-4-20250514",
			APIKeyEnv: "TEST_LLM_DEFINITELY_UNSET_KEY",
		}, testLogger())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TEST_LLM_DEFINITELY_UNSET_KEY")
	})

	t.Run("anthropic", func(t *testing.T) {
		t.Setenv("TEST_LLM_KEY", "sk-test")
		client, err := NewClient(&config.LLMProviderConfig{
			Type:      config.LLMProviderTypeAnthropic,
			Model:     "claude-sonnet-4-20250514",
			APIKeyEnv: "TEST_LLM_KEY",
		}, testLogger())
		require.NoError(t, err)
		assert.IsType(t, &AnthropicClient{}, client)
	})

	t.Run("xai routes through the openai client", func(t *testing.T) {
		t.Setenv("TEST_LLM_KEY", "xai-test")
		client, err := NewClient(&config.LLMProviderConfig{
			Type:      config.LLMProviderTypeXAI,
			Model:     "grok-4",
			APIKeyEnv: "TEST_LLM_KEY",
			BaseURL:   "https://api.x.ai/v1",
		}, testLogger())
		require.NoError(t, err)
		assert.IsType(t, &OpenAIClient{}, client)
	})
}

func TestFactoryReusesClients(t *testing.T) {
	t.Setenv("TEST_LLM_KEY", "sk-test")
	factory := NewFactory(testLogger())
	provider := &config.LLMProviderConfig{
		Type:      config.LLMProviderTypeAnthropic,
		Model:     "claude-sonnet-4-20250514",
		APIKeyEnv: "TEST_LLM_KEY",
	}
	first, err := factory.ClientFor(provider)
	require.NoError(t, err)
	second, err := factory.ClientFor(provider)
	require.NoError(t, err)
	assert.Same(t, first, second)
	require.NoError(t, factory.Close())
}

func TestClassifyError(t *testing.T) {
	chunk := classifyError(errors.New("connection reset by peer"))
	assert.True(t, chunk.Retryable)
	assert.Equal(t, "stream", chunk.Code)
}
