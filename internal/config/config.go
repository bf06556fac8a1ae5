package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all menhera configuration. Threshold fields are read on each
// use by the components, not cached, so edits picked up by a reload take
// effect on the next evaluation.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Locale  string `yaml:"locale"`

	LLM        LLMConfig        `yaml:"llm"`
	Escalation EscalationConfig `yaml:"escalation"`
	Idle       IdleConfig       `yaml:"idle"`
	Session    SessionConfig    `yaml:"session"`
	Features   FeatureConfig    `yaml:"features"`
}

// FeatureConfig holds the enable/disable switches for optional side effects.
type FeatureConfig struct {
	Voice    bool `yaml:"voice"`    // audio cues on punishment
	Letters  bool `yaml:"letters"`  // punishment artifact files
	Terminal bool `yaml:"terminal"` // terminal banner cosmetics
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:       "menhera",
		Version:    "1.0.0",
		Locale:     "en",
		LLM:        DefaultLLMConfig(),
		Escalation: DefaultEscalationConfig(),
		Idle:       DefaultIdleConfig(),
		Session:    DefaultSessionConfig(),
		Features: FeatureConfig{
			Voice:    true,
			Letters:  true,
			Terminal: true,
		},
	}
}

// Load reads a config file, applies env overrides, and normalizes it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	cfg.Normalize()
	return cfg, nil
}

// LoadOrDefault returns Load(path), or defaults (with env overrides) when the
// file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		cfg = DefaultConfig()
		cfg.applyEnvOverrides()
		cfg.Normalize()
		return cfg, nil
	}
	return nil, err
}

// Save writes the config as YAML, creating parent directories as needed.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides lets environment variables win over file values.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("MENHERA_API_KEY"); key != "" {
		c.LLM.APIKey = key
	} else if key := os.Getenv("GEMINI_API_KEY"); key != "" && c.LLM.APIKey == "" {
		c.LLM.APIKey = key
	}
	if model := os.Getenv("MENHERA_MODEL"); model != "" {
		c.LLM.Model = model
	}
}

// Normalize clamps threshold relationships that the config file cannot be
// trusted to respect. Idle Stage-2 must never fire before Stage-1, and
// forgiveness must trigger below the anger threshold.
func (c *Config) Normalize() {
	c.Idle.clamp()
	c.Escalation.clamp()
	c.Session.clamp()
}

// Validate reports configuration problems that should stop the CLI early.
// A missing API key is deliberately NOT an error here: the engine surfaces it
// as an in-band prompt and short-circuits evaluation instead.
func (c *Config) Validate() error {
	if c.Escalation.AngerThreshold < 1 {
		return fmt.Errorf("escalation.anger_threshold must be >= 1, got %d", c.Escalation.AngerThreshold)
	}
	if c.Idle.WarnAfterMS <= 0 || c.Idle.SpamAfterMS <= 0 {
		return fmt.Errorf("idle thresholds must be positive")
	}
	if c.Session.SoftLimitMS <= 0 || c.Session.HardLimitMS <= 0 {
		return fmt.Errorf("session limits must be positive")
	}
	return nil
}
