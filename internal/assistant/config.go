// Package assistant implements the AI API client demo: a thin wrapper
// around an OpenAI-compatible chat completion API with file plus
// environment configuration.
package assistant

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// defaultAPIBase is the public OpenAI endpoint, used when the config
// file does not override it.
const defaultAPIBase = "https://api.openai.com/v1"

// ErrMissingAPIKey is returned when the OPENAI_API_KEY environment
// variable is unset or empty. The key is deliberately never read from
// the config file.
var ErrMissingAPIKey = errors.New(`environment variable "OPENAI_API_KEY" is not set or empty`)

// validRoles are the chat roles the demo accepts for the prompt message.
var validRoles = map[string]struct{}{
	"user":      {},
	"system":    {},
	"assistant": {},
}

// Config holds the settings for talking to an OpenAI-compatible API.
//
// Model, APIBase, and Role come from a YAML file via [LoadConfig]; the
// API key comes strictly from the environment.
type Config struct {
	// APIBase is the API base URL. Defaults to the public OpenAI
	// endpoint; point it at a local gateway or a test server to avoid
	// real API calls.
	APIBase string `yaml:"api_base"`

	// Model is the model identifier to request. Required.
	Model string `yaml:"model"`

	// Role is the chat role the prompt is sent as. One of "user",
	// "system", or "assistant". Defaults to "user".
	Role string `yaml:"role"`

	// APIKey is read from the OPENAI_API_KEY environment variable,
	// never from the file.
	APIKey string `yaml:"-" env:"OPENAI_API_KEY"`
}

// LoadConfig reads the YAML config file, applies defaults, pulls the
// API key from the environment, and validates the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.APIBase == "" {
		cfg.APIBase = defaultAPIBase
	}
	if cfg.Role == "" {
		cfg.Role = "user"
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Model == "" {
		return errors.New("model is required")
	}
	if _, ok := validRoles[c.Role]; !ok {
		return fmt.Errorf("role must be one of user, system, assistant; got %q", c.Role)
	}
	if strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingAPIKey
	}
	return nil
}
