package config

import (
	"fmt"

	"github.com/backmassage/bulkrename/internal/rename"
)

// Operation kinds accepted in the chain's "op" field.
const (
	OpRemoveCharacters = "remove-characters"
	OpReplace          = "replace"
	OpAdd              = "add"
	OpEnumerate        = "enumerate"
	OpChangeCase       = "change-case"
	OpTrim             = "trim"
)

// OperationSpec is one entry of the declarative chain. Op selects the kind;
// the remaining fields apply per kind and are ignored otherwise.
type OperationSpec struct {
	Op string `yaml:"op"`

	// remove-characters: a standard preset name, or "custom" with a
	// character list. CaseSensitive is shared with replace.
	Preset        string `yaml:"preset,omitempty"`
	Characters    string `yaml:"characters,omitempty"`
	CaseSensitive bool   `yaml:"case-sensitive,omitempty"`

	// replace.
	Search      string `yaml:"search,omitempty"`
	Replacement string `yaml:"replace,omitempty"`
	Regex       bool   `yaml:"regex,omitempty"`

	// add.
	Prefix string `yaml:"prefix,omitempty"`
	Suffix string `yaml:"suffix,omitempty"`

	// enumerate.
	Format    string `yaml:"format,omitempty"`
	Start     *int   `yaml:"start,omitempty"`
	Increment *int   `yaml:"increment,omitempty"`
	Position  string `yaml:"position,omitempty"` // "suffix" (default) or "prefix".
	Separator string `yaml:"separator,omitempty"`

	// change-case.
	Casing string `yaml:"casing,omitempty"`

	// trim.
	FromFront int `yaml:"from-front,omitempty"`
	FromBack  int `yaml:"from-back,omitempty"`
}

func (s OperationSpec) build() (rename.Operation, error) {
	switch s.Op {
	case OpRemoveCharacters:
		return s.buildRemoveCharacters()
	case OpReplace:
		return &rename.ReplaceString{
			Search:        s.Search,
			Replacement:   s.Replacement,
			UseRegex:      s.Regex,
			CaseSensitive: s.CaseSensitive,
		}, nil
	case OpAdd:
		return &rename.AddString{Prefix: s.Prefix, Suffix: s.Suffix}, nil
	case OpEnumerate:
		return s.buildEnumerate()
	case OpChangeCase:
		return s.buildChangeCase()
	case OpTrim:
		return &rename.TrimCharacters{FromFront: s.FromFront, FromBack: s.FromBack}, nil
	case "":
		return nil, fmt.Errorf("missing 'op' field")
	}
	return nil, fmt.Errorf("unknown operation %q", s.Op)
}

func (s OperationSpec) buildRemoveCharacters() (rename.Operation, error) {
	op := rename.NewRemoveCharacters()
	switch s.Preset {
	case "", "symbols":
		// Default preset, nothing to do.
	case "custom":
		op.SetCustomPreset(s.Characters, s.CaseSensitive)
	default:
		p, ok := rename.PresetByName(s.Preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", s.Preset)
		}
		op.UsePreset(p)
	}
	return op, nil
}

func (s OperationSpec) buildEnumerate() (rename.Operation, error) {
	op := rename.NewEnumerate()
	if s.Format != "" {
		op.Format = s.Format
	}
	if s.Start != nil {
		op.Start = *s.Start
	}
	if s.Increment != nil {
		op.Increment = *s.Increment
	}
	op.Separator = s.Separator
	switch s.Position {
	case "", "suffix":
		op.Prefix = false
	case "prefix":
		op.Prefix = true
	default:
		return nil, fmt.Errorf("invalid position %q (use 'prefix' or 'suffix')", s.Position)
	}
	return op, nil
}

func (s OperationSpec) buildChangeCase() (rename.Operation, error) {
	op := rename.NewChangeCase()
	switch rename.Casing(s.Casing) {
	case rename.CaseLower, rename.CaseUpper, rename.CaseTitle:
		op.Casing = rename.Casing(s.Casing)
	case "":
		// Keep the lowercase default.
	default:
		return nil, fmt.Errorf("invalid casing %q (use 'lower', 'upper' or 'title')", s.Casing)
	}
	return op, nil
}
