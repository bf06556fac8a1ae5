package config

import "time"

// LLMConfig configures the remote text-generation service used for
// diagnostic annotations that miss the static table.
type LLMConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	Timeout string `yaml:"timeout"`
}

// DefaultLLMConfig returns sensible defaults. The API key is intentionally
// empty; its absence short-circuits evaluation with a prompt.
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		Model:   "gemini-2.0-flash",
		Timeout: "30s",
	}
}

// TimeoutDuration parses the timeout string, falling back to 30s.
func (c LLMConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}
