package rename

import (
	"regexp"
	"strings"
)

// ReplaceString substitutes every occurrence of a search string. Search may
// be a literal or, with UseRegex, a regular expression; either form honors
// CaseSensitive. An empty search or an invalid regex is the identity.
type ReplaceString struct {
	Search        string
	Replacement   string
	UseRegex      bool
	CaseSensitive bool
}

// NewReplaceString returns the operation with an empty (identity) search;
// matching defaults to case-sensitive.
func NewReplaceString() *ReplaceString { return &ReplaceString{CaseSensitive: true} }

// Rename implements [Operation]. The batch index is unused.
func (op *ReplaceString) Rename(name string, _ int) string {
	if op.Search == "" {
		return name
	}
	if !op.UseRegex && op.CaseSensitive {
		return strings.ReplaceAll(name, op.Search, op.Replacement)
	}

	pattern := op.Search
	if !op.UseRegex {
		pattern = regexp.QuoteMeta(pattern)
	}
	if !op.CaseSensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return name
	}
	if op.UseRegex {
		return re.ReplaceAllString(name, op.Replacement)
	}
	// Literal replacement: $ in the replacement must not expand.
	return re.ReplaceAllLiteralString(name, op.Replacement)
}

// Label implements [Operation].
func (op *ReplaceString) Label() string { return "Replace String" }

// Priority implements [Operation].
func (op *ReplaceString) Priority() int { return 0 }

// Clone implements [Operation].
func (op *ReplaceString) Clone() Operation {
	c := *op
	return &c
}
