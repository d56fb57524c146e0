package config

// LLMProviderType defines supported LLM providers
type LLMProviderType string

const (
	// LLMProviderTypeAnthropic is Anthropic Claude API
	LLMProviderTypeAnthropic LLMProviderType = "anthropic"
	// LLMProviderTypeOpenAI is OpenAI API
	LLMProviderTypeOpenAI LLMProviderType = "openai"
	// LLMProviderTypeXAI is xAI Grok API (OpenAI-compatible endpoint)
	LLMProviderTypeXAI LLMProviderType = "xai"
)

// IsValid checks if the LLM provider type is valid
func (t LLMProviderType) IsValid() bool {
	switch t {
	case LLMProviderTypeAnthropic,
		LLMProviderTypeOpenAI,
		LLMProviderTypeXAI:
		return true
	default:
		return false
	}
}
