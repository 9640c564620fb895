// Package skills renders, writes, and reads back per-agent SKILL.md
// documents: a YAML frontmatter header (name, description) followed by
// the agent's full prompt.
package skills

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the skill document name inside each per-agent directory.
const FileName = "SKILL.md"

// Render produces the skill document for one agent. The header is
// emitted verbatim; the prompt body is untouched.
func Render(name, description, prompt string) string {
	return fmt.Sprintf("---\nname: %s\ndescription: %s\n---\n\n%s\n", name, description, prompt)
}

// Write stores doc under skillsDir/<agentID>/SKILL.md, creating the
// directory if needed and overwriting any existing file. Returns the
// written path.
func Write(skillsDir, agentID, doc string) (string, error) {
	dir := filepath.Join(skillsDir, agentID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create skill dir %q: %w", dir, err)
	}

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return "", fmt.Errorf("write skill %q: %w", path, err)
	}
	return path, nil
}
