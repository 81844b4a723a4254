package rename

// AddString attaches literal text around the name. Empty fields add
// nothing, so the zero value is the identity.
type AddString struct {
	Prefix string
	Suffix string
}

// NewAddString returns the operation with empty (identity) defaults.
func NewAddString() *AddString { return &AddString{} }

// Rename implements [Operation]. The batch index is unused.
func (op *AddString) Rename(name string, _ int) string {
	return op.Prefix + name + op.Suffix
}

// Label implements [Operation].
func (op *AddString) Label() string { return "Add Prefix/Suffix" }

// Priority implements [Operation].
func (op *AddString) Priority() int { return 1 }

// Clone implements [Operation].
func (op *AddString) Clone() Operation {
	c := *op
	return &c
}
