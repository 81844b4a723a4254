package rename

// CharacterPreset is a reusable character-set bundle for character-oriented
// operations. Presets are plain values: assignment copies them, and
// operations store their active preset by value, so edits to one copy never
// leak into another.
type CharacterPreset struct {
	Name          string
	Characters    string
	CaseSensitive bool
}

// Standard presets. The '-' in Symbols is deliberately last so the
// character class it produces treats it as a literal (see classPattern).
var (
	PresetSymbols = CharacterPreset{
		Name:       "symbols",
		Characters: "`~!@#$%^&*()=+[]{}\\|;:'\",<.>/?_-",
	}
	PresetNumbers = CharacterPreset{
		Name:       "numbers",
		Characters: "0123456789",
	}
	PresetWhitespace = CharacterPreset{
		Name:       "whitespace",
		Characters: " \t\r\n",
	}
)

// PresetByName looks up a standard preset by its name. The bool is false
// for unknown names (including "custom", which is per-operation state, not
// a standard preset).
func PresetByName(name string) (CharacterPreset, bool) {
	switch name {
	case PresetSymbols.Name:
		return PresetSymbols, true
	case PresetNumbers.Name:
		return PresetNumbers, true
	case PresetWhitespace.Name:
		return PresetWhitespace, true
	}
	return CharacterPreset{}, false
}
