// Package generate runs the batch transform: for each agent record,
// emit the full-prompt skill document and rewrite the record with the
// brief prompt, the resolved MCP server mapping, and resource locators.
package generate

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/quartzlabs/skillgen/internal/catalog"
	"github.com/quartzlabs/skillgen/internal/config"
	"github.com/quartzlabs/skillgen/internal/registry"
	"github.com/quartzlabs/skillgen/internal/skills"
)

// Rewrite derives the new record and the skill document for one agent.
// Pure: file I/O stays in Run. The skill doc carries the record's full
// prompt; the returned record carries the brief prompt, the resolved
// server mapping, and the two resource locators.
func Rewrite(agentID string, rec registry.Record, skillsDir, steeringGlob string) (registry.Record, string) {
	doc := skills.Render(rec.Name, rec.Description, rec.Prompt)

	rewritten := registry.Record{
		Name:           rec.Name,
		Description:    rec.Description,
		Tools:          rec.Tools,
		AllowedTools:   rec.AllowedTools,
		Prompt:         catalog.BriefPrompt(agentID, rec.Prompt),
		IncludeMcpJSON: false,
		McpServers:     catalog.Resolve(agentID),
		Resources: []string{
			"file://" + steeringGlob,
			"skill://" + path.Join(filepath.ToSlash(skillsDir), agentID, skills.FileName),
		},
	}
	return rewritten, doc
}

// Summary reports what one run produced.
type Summary struct {
	Skills int
	Agents int
}

// Runner executes the pipeline over every record in the agents
// directory, sequentially and in sorted order. The first failure aborts
// the run; already written files stay as they are.
type Runner struct {
	Config *config.Config
	Out    io.Writer // progress output, defaults to stdout
}

func (r *Runner) Run() (Summary, error) {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}

	agents, err := registry.Load(r.Config.AgentsDir)
	if err != nil {
		return Summary{}, err
	}

	var sum Summary
	for _, agent := range agents {
		rewritten, doc := Rewrite(agent.ID, agent.Record, r.Config.SkillsDir, r.Config.SteeringGlob)

		if _, err := skills.Write(r.Config.SkillsDir, agent.ID, doc); err != nil {
			return sum, err
		}
		fmt.Fprintf(out, "  + skill: %s/%s\n", agent.ID, skills.FileName)
		sum.Skills++

		agent.Record = rewritten
		if err := agent.Save(); err != nil {
			return sum, err
		}
		fmt.Fprintf(out, "  * agent: %s.json -> MCPs: %s\n", agent.ID, strings.Join(catalog.ResolvedNames(agent.ID), ", "))
		sum.Agents++
	}

	return sum, nil
}
