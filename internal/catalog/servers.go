package catalog

// ServerConfig describes how to launch one MCP server.
type ServerConfig struct {
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env,omitempty"`
}

// servers is the full set of MCP servers agents can be granted.
var servers = map[string]ServerConfig{
	"filesystem": {
		Command: "npx",
		Args:    []string{"-y", "@modelcontextprotocol/server-filesystem", "$HOME"},
	},
	"memory": {
		Command: "npx",
		Args:    []string{"-y", "@modelcontextprotocol/server-memory"},
	},
	"context7": {
		Command: "npx",
		Args:    []string{"-y", "@upstash/context7-mcp@latest"},
	},
	"sequential-thinking": {
		Command: "npx",
		Args:    []string{"-y", "@modelcontextprotocol/server-sequential-thinking"},
	},
	"puppeteer": {
		Command: "npx",
		Args:    []string{"-y", "@modelcontextprotocol/server-puppeteer"},
	},
	"playwright": {
		Command: "npx",
		Args:    []string{"-y", "@playwright/mcp"},
	},
	"dynamodb": {
		Command: "uvx",
		Args:    []string{"awslabs.dynamodb-mcp-server@latest"},
		Env: map[string]string{
			"AWS_REGION":       "ap-southeast-2",
			"AWS_PROFILE":      "default",
			"DDB-MCP-READONLY": "false",
		},
	},
	"aws-kb": {
		Command: "npx",
		Args:    []string{"-y", "@modelcontextprotocol/server-aws-kb-retrieval"},
		Env: map[string]string{
			"AWS_PROFILE": "default",
		},
	},
}

// baseline servers are granted to every agent unconditionally.
var baseline = []string{"filesystem", "memory"}

func cloneServer(sc ServerConfig) ServerConfig {
	out := ServerConfig{Command: sc.Command}
	if sc.Args != nil {
		out.Args = append([]string(nil), sc.Args...)
	}
	if sc.Env != nil {
		out.Env = make(map[string]string, len(sc.Env))
		for k, v := range sc.Env {
			out.Env[k] = v
		}
	}
	return out
}
