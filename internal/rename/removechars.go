package rename

import "regexp"

// RemoveCharacters deletes every occurrence of a configured character set
// from the name. The active set comes from a standard preset (symbols by
// default) or from the operation's private custom preset.
type RemoveCharacters struct {
	preset CharacterPreset // active preset, held by value
	custom CharacterPreset // private custom slot

	// Matcher for the active preset, rebuilt whenever the preset changes.
	// Nil when the set is empty or does not compile. Compiling at
	// configuration time keeps Rename read-only, so independent names may
	// be previewed concurrently.
	re *regexp.Regexp
}

// NewRemoveCharacters returns the operation with the symbols preset active.
func NewRemoveCharacters() *RemoveCharacters {
	op := &RemoveCharacters{preset: PresetSymbols}
	op.compile()
	return op
}

// UsePreset makes p the active preset. p is copied; later edits to the
// caller's value have no effect on the operation.
func (op *RemoveCharacters) UsePreset(p CharacterPreset) {
	op.preset = p
	op.compile()
}

// SetCustomPreset populates the operation's custom slot and makes it the
// active preset.
func (op *RemoveCharacters) SetCustomPreset(characters string, caseSensitive bool) {
	op.custom = CharacterPreset{
		Name:          "custom",
		Characters:    characters,
		CaseSensitive: caseSensitive,
	}
	op.preset = op.custom
	op.compile()
}

// CurrentPreset returns a copy of the active preset.
func (op *RemoveCharacters) CurrentPreset() CharacterPreset { return op.preset }

// CustomPreset returns a copy of the custom slot.
func (op *RemoveCharacters) CustomPreset() CharacterPreset { return op.custom }

// Rename deletes every character of the active set from name. An empty set
// is the identity. A set that does not compile into a valid character
// class (QuoteMeta leaves '-' bare, so e.g. "z-a" produces an invalid
// range) also degrades to the identity; a malformed custom set is a
// no-op, never a batch failure. The batch index is unused.
func (op *RemoveCharacters) Rename(name string, _ int) string {
	if op.re == nil {
		return name
	}
	return op.re.ReplaceAllString(name, "")
}

// Label implements [Operation].
func (op *RemoveCharacters) Label() string { return "Remove Characters" }

// Priority implements [Operation].
func (op *RemoveCharacters) Priority() int { return 5 }

// Clone implements [Operation]. Presets are plain values, so a struct copy
// yields a fully independent custom slot and active preset. The compiled
// matcher pointer is shared until either copy reconfigures; regexps are
// safe for concurrent use, so that sharing is harmless.
func (op *RemoveCharacters) Clone() Operation {
	c := *op
	return &c
}

// compile rebuilds the matcher for the active preset. An empty set or a
// pattern that fails to compile leaves the matcher nil, which Rename treats
// as the identity.
func (op *RemoveCharacters) compile() {
	if op.preset.Characters == "" {
		op.re = nil
		return
	}
	re, err := regexp.Compile(classPattern(op.preset))
	if err != nil {
		op.re = nil
		return
	}
	op.re = re
}

// classPattern builds a character class matching any single character of
// the preset, case-insensitive unless the preset says otherwise.
func classPattern(p CharacterPreset) string {
	pattern := "[" + regexp.QuoteMeta(p.Characters) + "]"
	if !p.CaseSensitive {
		pattern = "(?i)" + pattern
	}
	return pattern
}
