package main

import (
	"fmt"
	"io"
	"os"

	"github.com/quartzlabs/skillgen/internal/catalog"
	"github.com/quartzlabs/skillgen/internal/config"
	"github.com/quartzlabs/skillgen/internal/generate"
	"github.com/quartzlabs/skillgen/internal/registry"
	"github.com/quartzlabs/skillgen/internal/skills"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillgen",
	Short: "skillgen - generate skill docs and MCP configs from agent records",
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate SKILL.md files and rewrite agent records",
	RunE:  runGenerate,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List generated skill documents",
	RunE:  runList,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show effective paths and per-agent catalog coverage",
	RunE:  runStatus,
}

var (
	agentsDirFlag string
	skillsDirFlag string
)

func init() {
	generateCmd.Flags().StringVar(&agentsDirFlag, "agents-dir", "", "Agent records directory (overrides config)")
	generateCmd.Flags().StringVar(&skillsDirFlag, "skills-dir", "", "Skill docs directory (overrides config)")
	rootCmd.AddCommand(generateCmd, listCmd, statusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadEffectiveConfig applies flag overrides on top of the file/env config.
func loadEffectiveConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig("")
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if agentsDirFlag != "" {
		cfg.AgentsDir = agentsDirFlag
	}
	if skillsDirFlag != "" {
		cfg.SkillsDir = skillsDirFlag
	}
	return cfg, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadEffectiveConfig()
	if err != nil {
		return err
	}
	return runGenerateTo(os.Stdout, cfg)
}

// runGenerateTo runs the pipeline with injectable output for testing.
func runGenerateTo(out io.Writer, cfg *config.Config) error {
	fmt.Fprintln(out, "Generating SKILL.md files and updating agent records...")
	fmt.Fprintln(out)

	runner := &generate.Runner{Config: cfg, Out: out}
	sum, err := runner.Run()
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Done! Generated %d skills in %s\n", sum.Skills, cfg.SkillsDir)
	fmt.Fprintf(out, "Updated %d agents in %s\n", sum.Agents, cfg.AgentsDir)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadEffectiveConfig()
	if err != nil {
		return err
	}
	return runListTo(os.Stdout, cfg)
}

func runListTo(out io.Writer, cfg *config.Config) error {
	docs, err := skills.Load(cfg.SkillsDir)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		fmt.Fprintf(out, "No skill docs in %s (run 'skillgen generate')\n", cfg.SkillsDir)
		return nil
	}

	for _, doc := range docs {
		fmt.Fprintf(out, "%-26s %s\n", doc.ID, doc.Description)
	}
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadEffectiveConfig()
	if err != nil {
		return err
	}
	return runStatusTo(os.Stdout, cfg)
}

// runStatusTo reports catalog coverage per agent. Agents missing from
// the capability or brief tables still generate (baseline servers,
// truncated prompt); this makes those fallbacks visible.
func runStatusTo(out io.Writer, cfg *config.Config) error {
	fmt.Fprintf(out, "Config: %s\n", config.ConfigPath())
	fmt.Fprintf(out, "Agents: %s\n", cfg.AgentsDir)
	fmt.Fprintf(out, "Skills: %s\n", cfg.SkillsDir)
	fmt.Fprintf(out, "Steering: %s\n", cfg.SteeringGlob)

	agents, err := registry.Load(cfg.AgentsDir)
	if err != nil {
		fmt.Fprintf(out, "Records: not readable (%v)\n", err)
		return nil
	}
	fmt.Fprintf(out, "Records: %d\n\n", len(agents))

	for _, agent := range agents {
		extras, known := catalog.Extras(agent.ID)
		servers := "baseline only"
		if len(extras) > 0 {
			servers = fmt.Sprintf("baseline + %d extras", len(extras))
		}
		if !known {
			servers += " (no capability entry)"
		}
		brief := "curated brief"
		if !catalog.HasBrief(agent.ID) {
			brief = "truncated prompt (no curated brief)"
		}
		fmt.Fprintf(out, "  %-26s %s, %s\n", agent.ID, servers, brief)
	}
	return nil
}
