// Package registry reads and rewrites agent record files. Each record is
// one JSON file in the agents directory; the file stem is the agent ID.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quartzlabs/skillgen/internal/catalog"
)

// Record is the on-disk agent record. Field order matches the rewritten
// file layout. The same type round-trips both the raw input shape (no
// server mapping yet) and the rewritten shape, so a rewritten record can
// be fed back through the pipeline.
type Record struct {
	Name           string                          `json:"name"`
	Description    string                          `json:"description"`
	Tools          []string                        `json:"tools"`
	AllowedTools   []string                        `json:"allowedTools"`
	Prompt         string                          `json:"prompt"`
	IncludeMcpJSON bool                            `json:"includeMcpJson"`
	McpServers     map[string]catalog.ServerConfig `json:"mcpServers,omitempty"`
	Resources      []string                        `json:"resources,omitempty"`
}

// Agent is one loaded record plus its identity and source path.
type Agent struct {
	ID     string
	Path   string
	Record Record
}

// Load reads every .json record in dir, sorted by file name. A missing
// or unreadable directory is fatal; so is any malformed record.
func Load(dir string) ([]Agent, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read agents dir %q: %w", dir, err)
	}

	agents := make([]Agent, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}

		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read agent %q: %w", path, err)
		}

		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("parse agent %q: %w", path, err)
		}

		agents = append(agents, Agent{
			ID:     strings.TrimSuffix(name, ".json"),
			Path:   path,
			Record: rec,
		})
	}

	return agents, nil
}

// Save overwrites the record file at path with the indented JSON form
// plus a trailing newline.
func Save(path string, rec Record) error {
	data, err := json.MarshalIndent(rec, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal agent record: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write agent %q: %w", path, err)
	}
	return nil
}

// Save writes the agent's record back to its source path.
func (a Agent) Save() error {
	return Save(a.Path, a.Record)
}
