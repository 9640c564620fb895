// Package catalog holds the static MCP server catalog and the per-agent
// capability and brief-prompt tables. All tables are read-only after init;
// lookups never fail, unknown agent IDs fall back to the baseline grant
// and prompt truncation.
package catalog

// briefLimit bounds the fallback prompt when no curated brief exists.
const briefLimit = 200

// Resolve returns the MCP server mapping for an agent: the baseline
// servers plus any extras listed for the ID. Every entry is an
// independent copy, so callers may mutate their mapping freely.
func Resolve(agentID string) map[string]ServerConfig {
	extras := agentExtras[agentID]
	resolved := make(map[string]ServerConfig, len(baseline)+len(extras))
	for _, name := range baseline {
		resolved[name] = cloneServer(servers[name])
	}
	for _, name := range extras {
		resolved[name] = cloneServer(servers[name])
	}
	return resolved
}

// ResolvedNames returns the server names an agent is granted, baseline
// first, extras in table order.
func ResolvedNames(agentID string) []string {
	names := append([]string(nil), baseline...)
	return append(names, agentExtras[agentID]...)
}

// BriefPrompt returns the curated brief for an agent, or the first 200
// characters of the full prompt when no curated entry exists.
func BriefPrompt(agentID, prompt string) string {
	if brief, ok := briefPrompts[agentID]; ok {
		return brief
	}
	runes := []rune(prompt)
	if len(runes) > briefLimit {
		return string(runes[:briefLimit])
	}
	return prompt
}

// Extras returns a copy of the extra server list for an agent and
// whether the agent has an entry in the capability table at all. An
// agent can be listed with an empty extra set; that is distinct from
// being unknown.
func Extras(agentID string) ([]string, bool) {
	extras, ok := agentExtras[agentID]
	if !ok {
		return nil, false
	}
	out := make([]string, len(extras))
	copy(out, extras)
	return out, true
}

// HasBrief reports whether a curated brief prompt exists for an agent.
func HasBrief(agentID string) bool {
	_, ok := briefPrompts[agentID]
	return ok
}
