package rename

import (
	"strings"
	"unicode"
)

// Casing selects the case transform applied by [ChangeCase].
type Casing string

const (
	CaseLower Casing = "lower"
	CaseUpper Casing = "upper"
	CaseTitle Casing = "title" // Capitalize the first letter of each word.
)

// ChangeCase rewrites the name in a fixed casing. An unknown casing is the
// identity.
type ChangeCase struct {
	Casing Casing
}

// NewChangeCase returns the operation configured for lowercasing.
func NewChangeCase() *ChangeCase { return &ChangeCase{Casing: CaseLower} }

// Rename implements [Operation]. The batch index is unused.
func (op *ChangeCase) Rename(name string, _ int) string {
	switch op.Casing {
	case CaseLower:
		return strings.ToLower(name)
	case CaseUpper:
		return strings.ToUpper(name)
	case CaseTitle:
		return titleCase(name)
	}
	return name
}

// Label implements [Operation].
func (op *ChangeCase) Label() string { return "Change Case" }

// Priority implements [Operation].
func (op *ChangeCase) Priority() int { return 3 }

// Clone implements [Operation].
func (op *ChangeCase) Clone() Operation {
	c := *op
	return &c
}

// titleCase capitalizes the first letter of each word. Word boundaries are
// spaces, hyphens, and underscores.
func titleCase(s string) string {
	prev := ' '
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) && (prev == ' ' || prev == '-' || prev == '_') {
			prev = r
			return unicode.ToUpper(r)
		}
		prev = r
		return r
	}, s)
}
