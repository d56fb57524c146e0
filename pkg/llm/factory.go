package llm

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/agentkube/investigator/pkg/agent"
	"github.com/agentkube/investigator/pkg/config"
)

// NewClient builds an LLM client for the given provider configuration.
// The API key is read from the environment variable the provider names.
func NewClient(provider *config.LLMProviderConfig, logger *slog.Logger) (agent.LLMClient, error) {
	apiKey := os.Getenv(provider.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("environment variable %s is not set", provider.APIKeyEnv)
	}
	switch provider.Type {
	case config.LLMProviderTypeAnthropic:
		return NewAnthropicClient(apiKey, provider.BaseURL, logger), nil
	case config.LLMProviderTypeOpenAI, config.LLMProviderTypeXAI:
		return NewOpenAIClient(apiKey, provider.BaseURL, logger), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider type %q", provider.Type)
	}
}

// Factory hands out LLM clients per provider configuration, reusing clients
// for identical provider settings.
type Factory struct {
	logger *slog.Logger

	mu      sync.Mutex
	clients map[string]agent.LLMClient
}

// NewFactory creates an empty client factory.
func NewFactory(logger *slog.Logger) *Factory {
	return &Factory{
		logger:  logger,
		clients: make(map[string]agent.LLMClient),
	}
}

// ClientFor returns a client for the provider, creating it on first use.
func (f *Factory) ClientFor(provider *config.LLMProviderConfig) (agent.LLMClient, error) {
	key := fmt.Sprintf("%s|%s|%s|%s", provider.Type, provider.Model, provider.BaseURL, provider.APIKeyEnv)
	f.mu.Lock()
	defer f.mu.Unlock()
	if client, ok := f.clients[key]; ok {
		return client, nil
	}
	client, err := NewClient(provider, f.logger)
	if err != nil {
		return nil, err
	}
	f.clients[key] = client
	return client, nil
}

// Close releases all cached clients.
func (f *Factory) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var errs []error
	for key, client := range f.clients {
		if err := client.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", key, err))
		}
	}
	f.clients = make(map[string]agent.LLMClient)
	return errors.Join(errs...)
}
