package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// InvestigatorYAMLConfig represents the complete investigator.yaml file structure
type InvestigatorYAMLConfig struct {
	System    *SystemYAMLConfig      `yaml:"system"`
	Agents    map[string]AgentConfig `yaml:"agents"`
	Defaults  *Defaults              `yaml:"defaults"`
	Masking   *MaskingYAMLConfig     `yaml:"masking"`
	Retention *RetentionYAMLConfig   `yaml:"retention"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	ListenAddr      string `yaml:"listen_addr"`
	TodoSnapshotDir string `yaml:"todo_snapshot_dir"`
}

// LLMProvidersYAMLConfig represents the complete llm-providers.yaml file structure
type LLMProvidersYAMLConfig struct {
	LLMProviders map[string]LLMProviderConfig `yaml:"llm_providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge built-in + user-defined configurations
//  5. Build in-memory registries
//  6. Apply default values
//  7. Validate all configuration
//  8. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"agents", stats.Agents,
		"llm_providers", stats.LLMProviders)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load investigator.yaml (contains system, agents, defaults)
	mainConfig, err := loader.loadInvestigatorYAML()
	if err != nil {
		return nil, NewLoadError("investigator.yaml", err)
	}

	// 2. Load llm-providers.yaml
	llmProviders, err := loader.loadLLMProvidersYAML()
	if err != nil {
		return nil, NewLoadError("llm-providers.yaml", err)
	}

	// 3. Get built-in configuration
	builtin := GetBuiltinConfig()

	// 4. Merge built-in + user-defined components (user overrides built-in)
	agents := mergeAgents(builtin.Agents, mainConfig.Agents)
	llmProvidersMerged := mergeLLMProviders(builtin.LLMProviders, llmProviders)

	// 5. Build registries
	agentRegistry := NewAgentRegistry(agents)
	llmProviderRegistry := NewLLMProviderRegistry(llmProvidersMerged)

	// 6. Resolve defaults (user YAML overrides built-in; unset fields fall through)
	defaults := mainConfig.Defaults
	if defaults == nil {
		defaults = &Defaults{}
	}
	if err := mergo.Merge(defaults, builtinDefaults()); err != nil {
		return nil, fmt.Errorf("failed to merge defaults: %w", err)
	}

	// 7. Resolve system, masking and retention config
	systemCfg := resolveSystemConfig(mainConfig.System)
	maskingCfg := resolveMaskingConfig(mainConfig.Masking)
	retentionCfg := resolveRetentionConfig(mainConfig.Retention)

	return &Config{
		configDir:           configDir,
		Defaults:            defaults,
		System:              systemCfg,
		Masking:             maskingCfg,
		Retention:           retentionCfg,
		AgentRegistry:       agentRegistry,
		LLMProviderRegistry: llmProviderRegistry,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand ${VAR} / ${VAR:-default} references before parsing
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadInvestigatorYAML() (*InvestigatorYAMLConfig, error) {
	var config InvestigatorYAMLConfig

	// Initialize maps to avoid nil maps
	config.Agents = make(map[string]AgentConfig)

	if err := l.loadYAML("investigator.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (l *configLoader) loadLLMProvidersYAML() (map[string]LLMProviderConfig, error) {
	var config LLMProvidersYAMLConfig

	// Initialize map to avoid nil map
	config.LLMProviders = make(map[string]LLMProviderConfig)

	if err := l.loadYAML("llm-providers.yaml", &config); err != nil {
		return nil, err
	}

	return config.LLMProviders, nil
}
