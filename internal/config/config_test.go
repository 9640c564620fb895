package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AgentsDir != DefaultAgentsDir {
		t.Errorf("agentsDir = %q, want %q", cfg.AgentsDir, DefaultAgentsDir)
	}
	if cfg.SkillsDir != DefaultSkillsDir {
		t.Errorf("skillsDir = %q, want %q", cfg.SkillsDir, DefaultSkillsDir)
	}
	if cfg.SteeringGlob != DefaultSteeringGlob {
		t.Errorf("steeringGlob = %q, want %q", cfg.SteeringGlob, DefaultSteeringGlob)
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skillgen.json")
	content := `{"agentsDir": "custom/agents", "skillsDir": "custom/skills"}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AgentsDir != "custom/agents" {
		t.Errorf("agentsDir = %q, want custom/agents", cfg.AgentsDir)
	}
	if cfg.SkillsDir != "custom/skills" {
		t.Errorf("skillsDir = %q, want custom/skills", cfg.SkillsDir)
	}
	// Omitted field falls back to the default
	if cfg.SteeringGlob != DefaultSteeringGlob {
		t.Errorf("steeringGlob = %q, want default", cfg.SteeringGlob)
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skillgen.json")
	if err := os.WriteFile(path, []byte("{"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for malformed config")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skillgen.json")
	if err := os.WriteFile(path, []byte(`{"agentsDir": "from-file"}`), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("SKILLGEN_AGENTS_DIR", "from-env")
	t.Setenv("SKILLGEN_STEERING_GLOB", "docs/**/*.md")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AgentsDir != "from-env" {
		t.Errorf("agentsDir = %q, want env override", cfg.AgentsDir)
	}
	if cfg.SteeringGlob != "docs/**/*.md" {
		t.Errorf("steeringGlob = %q, want env override", cfg.SteeringGlob)
	}
	if cfg.SkillsDir != DefaultSkillsDir {
		t.Errorf("skillsDir = %q, want default", cfg.SkillsDir)
	}
}

func TestLoadConfig_EmptyFieldsRedefaulted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skillgen.json")
	if err := os.WriteFile(path, []byte(`{"agentsDir": ""}`), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AgentsDir != DefaultAgentsDir {
		t.Errorf("agentsDir = %q, want default", cfg.AgentsDir)
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skillgen.json")
	want := &Config{AgentsDir: "a", SkillsDir: "s", SteeringGlob: "g/*.md"}

	if err := SaveConfig(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AgentsDir != "a" || cfg.SkillsDir != "s" || cfg.SteeringGlob != "g/*.md" {
		t.Fatalf("round trip = %+v, want %+v", cfg, want)
	}
}
