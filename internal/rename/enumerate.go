package rename

import "fmt"

// Enumerate numbers each name by its position in the batch. This is the
// operation the shared batch index exists for: the count is
// Start + index*Increment, so renumbering stays stable no matter where the
// operation sits in the chain or how many other operations run.
type Enumerate struct {
	// Format sets the zero-padding width by its length: with "000" the
	// count 27 renders as "027". An empty format means width 1.
	Format    string
	Start     int
	Increment int
	// Prefix attaches the count before the name instead of after it.
	Prefix    bool
	Separator string
}

// NewEnumerate returns the operation counting 1, 2, 3, … as an unpadded
// suffix with no separator.
func NewEnumerate() *Enumerate {
	return &Enumerate{Format: "0", Start: 1, Increment: 1}
}

// Rename implements [Operation].
func (op *Enumerate) Rename(name string, index int) string {
	width := len(op.Format)
	if width < 1 {
		width = 1
	}
	count := fmt.Sprintf("%0*d", width, op.Start+index*op.Increment)
	if op.Prefix {
		return count + op.Separator + name
	}
	return name + op.Separator + count
}

// Label implements [Operation].
func (op *Enumerate) Label() string { return "Enumerate" }

// Priority implements [Operation].
func (op *Enumerate) Priority() int { return 2 }

// Clone implements [Operation].
func (op *Enumerate) Clone() Operation {
	c := *op
	return &c
}
