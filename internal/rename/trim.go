package rename

// TrimCharacters drops a fixed number of runes from each end of the name.
// Counts larger than the name produce the empty string; negative counts are
// treated as zero.
type TrimCharacters struct {
	FromFront int
	FromBack  int
}

// NewTrimCharacters returns the operation with zero (identity) counts.
func NewTrimCharacters() *TrimCharacters { return &TrimCharacters{} }

// Rename implements [Operation]. The batch index is unused.
func (op *TrimCharacters) Rename(name string, _ int) string {
	front, back := op.FromFront, op.FromBack
	if front < 0 {
		front = 0
	}
	if back < 0 {
		back = 0
	}
	if front == 0 && back == 0 {
		return name
	}
	runes := []rune(name)
	if front+back >= len(runes) {
		return ""
	}
	return string(runes[front : len(runes)-back])
}

// Label implements [Operation].
func (op *TrimCharacters) Label() string { return "Trim Characters" }

// Priority implements [Operation].
func (op *TrimCharacters) Priority() int { return 4 }

// Clone implements [Operation].
func (op *TrimCharacters) Clone() Operation {
	c := *op
	return &c
}
