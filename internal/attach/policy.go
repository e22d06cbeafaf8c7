package attach

import (
	"fmt"
)

// defaultDisabled are the filetypes rejected when neither an explicit
// rule nor a wildcard covers them: ephemeral or generated buffers
// where completions are noise.
var defaultDisabled = map[string]bool{
	"gitcommit": true,
	"gitrebase": true,
	"help":      true,
	"hgcommit":  true,
	"svn":       true,
	"cvs":       true,
	".":         true,
}

// RulesPolicy is a FiletypePolicy driven by configured rules. An
// explicit entry wins, then the "*" wildcard, then the built-in
// default denylist, then allow.
type RulesPolicy struct {
	rules map[string]bool
}

// NewRulesPolicy creates a policy over the configured filetype rules.
// A nil map behaves like an empty one.
func NewRulesPolicy(rules map[string]bool) *RulesPolicy {
	return &RulesPolicy{rules: rules}
}

// Check reports whether the filetype may attach. An empty filetype is
// treated as ".", the conventional name for buffers with no filetype.
func (p *RulesPolicy) Check(filetype string) (bool, string) {
	if filetype == "" {
		filetype = "."
	}

	if enabled, ok := p.rules[filetype]; ok {
		if !enabled {
			return false, disabledReason(filetype)
		}
		return true, ""
	}

	if enabled, ok := p.rules["*"]; ok {
		if !enabled {
			return false, disabledReason(filetype)
		}
		return true, ""
	}

	if defaultDisabled[filetype] {
		return false, disabledReason(filetype)
	}

	return true, ""
}

func disabledReason(filetype string) string {
	return fmt.Sprintf("filetype %s is disabled", filetype)
}
