// Package config holds the generator's path configuration. The
// capability tables themselves are compiled in and not configurable;
// only the directory layout can be adjusted.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

const (
	DefaultAgentsDir    = ".kiro/agents"
	DefaultSkillsDir    = ".kiro/skills"
	DefaultSteeringGlob = ".kiro/steering/**/*.md"
)

const configFileName = "skillgen.json"

type Config struct {
	AgentsDir    string `json:"agentsDir"`
	SkillsDir    string `json:"skillsDir"`
	SteeringGlob string `json:"steeringGlob"`
}

func DefaultConfig() *Config {
	return &Config{
		AgentsDir:    DefaultAgentsDir,
		SkillsDir:    DefaultSkillsDir,
		SteeringGlob: DefaultSteeringGlob,
	}
}

// ConfigPath is the optional per-project config file, resolved relative
// to the working directory.
func ConfigPath() string {
	return configFileName
}

// LoadConfig reads the config file at path (ConfigPath() when path is
// empty). A missing file is not an error; defaults apply. Environment
// variables override file values.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if dir := os.Getenv("SKILLGEN_AGENTS_DIR"); dir != "" {
		cfg.AgentsDir = dir
	}
	if dir := os.Getenv("SKILLGEN_SKILLS_DIR"); dir != "" {
		cfg.SkillsDir = dir
	}
	if glob := os.Getenv("SKILLGEN_STEERING_GLOB"); glob != "" {
		cfg.SteeringGlob = glob
	}

	if cfg.AgentsDir == "" {
		cfg.AgentsDir = DefaultAgentsDir
	}
	if cfg.SkillsDir == "" {
		cfg.SkillsDir = DefaultSkillsDir
	}
	if cfg.SteeringGlob == "" {
		cfg.SteeringGlob = DefaultSteeringGlob
	}

	return cfg, nil
}

// SaveConfig writes the config file at path (ConfigPath() when empty).
func SaveConfig(path string, cfg *Config) error {
	if path == "" {
		path = ConfigPath()
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}
