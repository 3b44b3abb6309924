package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"marketai/internal/models"
)

// Profile holds the fixed completion settings of one use case.
type Profile struct {
	SystemMessage string  `yaml:"system_message"`
	Temperature   float64 `yaml:"temperature"`
	MaxTokens     int     `yaml:"max_tokens"`
}

// DefaultProfiles returns the built-in completion settings.
func DefaultProfiles() map[models.UseCase]Profile {
	return map[models.UseCase]Profile{
		models.UseCaseCampaign: {
			SystemMessage: "You are an expert marketing strategist with 15+ years experience.",
			Temperature:   0.7,
			MaxTokens:     2500,
		},
		models.UseCasePitch: {
			SystemMessage: "You are an expert sales strategist with 10+ years experience.",
			Temperature:   0.7,
			MaxTokens:     2000,
		},
		models.UseCaseLeadScore: {
			SystemMessage: "You are an expert sales qualification specialist.",
			Temperature:   0.6,
			MaxTokens:     1800,
		},
	}
}

// YAMLConfig represents the structure of the config.yaml file.
// Prompt settings are multi-line text that's easier to manage in YAML than env vars.
type YAMLConfig struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	return LoadYAMLConfigFile(getEnv("CONFIG_FILE", "config.yaml"))
}

// LoadYAMLConfigFile loads the YAML configuration from path.
func LoadYAMLConfigFile(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for name := range cfg.Profiles {
		if !models.UseCase(name).Valid() {
			return nil, fmt.Errorf("unknown use case %q in %s", name, path)
		}
	}

	return &cfg, nil
}

// ApplyYAML overlays profile settings from the YAML file. Zero values keep the
// current setting.
func (c *Config) ApplyYAML(y *YAMLConfig) {
	if y == nil {
		return
	}
	if c.Profiles == nil {
		c.Profiles = DefaultProfiles()
	}
	for name, override := range y.Profiles {
		u := models.UseCase(name)
		p := c.Profiles[u]
		if override.SystemMessage != "" {
			p.SystemMessage = override.SystemMessage
		}
		if override.Temperature > 0 {
			p.Temperature = override.Temperature
		}
		if override.MaxTokens > 0 {
			p.MaxTokens = override.MaxTokens
		}
		c.Profiles[u] = p
	}
}
