package skills

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var errInvalidSkillYAML = errors.New("invalid skill YAML frontmatter")

type skillFrontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Doc is one skill document read back from the skills directory.
type Doc struct {
	ID          string // per-agent directory name
	Name        string
	Description string
	Body        string
	Path        string
}

// Load reads every SKILL.md under skillsDir, sorted by directory name.
// Directories without a skill file are skipped, as are files with
// invalid YAML frontmatter (with a warning). Duplicate skill names are
// an error. A missing skills directory yields no docs.
func Load(skillsDir string) ([]Doc, error) {
	skillsDir = strings.TrimSpace(skillsDir)
	if skillsDir == "" {
		return nil, nil
	}

	info, err := os.Stat(skillsDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat skills dir %q: %w", skillsDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("skills path is not a directory: %s", skillsDir)
	}

	entries, err := os.ReadDir(skillsDir)
	if err != nil {
		return nil, fmt.Errorf("read skills dir %q: %w", skillsDir, err)
	}

	docs := make([]Doc, 0, len(entries))
	seen := make(map[string]string, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		path := filepath.Join(skillsDir, entry.Name(), FileName)
		doc, skip, parseErr := parseSkillFile(entry.Name(), path)
		if parseErr != nil {
			return nil, parseErr
		}
		if skip {
			continue
		}

		if prevPath, exists := seen[doc.Name]; exists {
			return nil, fmt.Errorf("duplicate skill name %q in %s (already in %s)", doc.Name, path, prevPath)
		}
		seen[doc.Name] = path
		docs = append(docs, doc)
	}

	return docs, nil
}

func parseSkillFile(id, path string) (Doc, bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Doc{}, true, nil
		}
		return Doc{}, false, fmt.Errorf("read skill %q: %w", path, err)
	}

	meta, body, err := parseFrontmatter(content)
	if err != nil {
		if errors.Is(err, errInvalidSkillYAML) {
			log.Printf("[skills] warning: skip invalid YAML skill %s: %v", path, err)
			return Doc{}, true, nil
		}
		return Doc{}, false, fmt.Errorf("parse skill %q: %w", path, err)
	}
	if strings.TrimSpace(meta.Name) == "" {
		return Doc{}, false, fmt.Errorf("parse skill %q: missing name", path)
	}

	return Doc{
		ID:          id,
		Name:        strings.TrimSpace(meta.Name),
		Description: strings.TrimSpace(meta.Description),
		Body:        strings.TrimSpace(body),
		Path:        path,
	}, false, nil
}

func parseFrontmatter(content []byte) (skillFrontmatter, string, error) {
	text := strings.TrimPrefix(string(content), "\uFEFF")
	lines := strings.Split(text, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return skillFrontmatter{}, "", errors.New("missing YAML frontmatter")
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			end = i
			break
		}
	}
	if end == -1 {
		return skillFrontmatter{}, "", errors.New("missing closing frontmatter separator")
	}

	frontmatter := strings.Join(lines[1:end], "\n")
	body := strings.Join(lines[end+1:], "\n")

	var meta skillFrontmatter
	if err := yaml.Unmarshal([]byte(frontmatter), &meta); err != nil {
		return skillFrontmatter{}, "", fmt.Errorf("%w: %v", errInvalidSkillYAML, err)
	}

	return meta, body, nil
}
