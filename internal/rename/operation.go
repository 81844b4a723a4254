package rename

import "sort"

// Operation is a single named text transformation in a rename chain.
//
// Rename must be total: it never returns an error and never panics on any
// input. An operation whose configuration cannot be applied (for example a
// character set that does not compile into a matcher) returns name
// unchanged. index is the zero-based position of the name within the
// current batch; operations that do not enumerate ignore it.
type Operation interface {
	Rename(name string, index int) string

	// Label returns the human-readable operation name for menus and logs.
	Label() string

	// Priority orders operations in menu listings; lower sorts first.
	// The rename algorithm itself never consults it.
	Priority() int

	// Clone returns an independent deep copy. Mutating the clone's
	// configuration must not affect the source, and vice versa.
	Clone() Operation
}

// Registered returns one default-configured instance of every operation
// kind, sorted by menu priority. Hosts use it to populate an "add
// operation" menu; the returned instances are fresh and safe to mutate.
func Registered() []Operation {
	ops := []Operation{
		NewRemoveCharacters(),
		NewReplaceString(),
		NewAddString(),
		NewEnumerate(),
		NewChangeCase(),
		NewTrimCharacters(),
	}
	sort.SliceStable(ops, func(i, j int) bool {
		return ops[i].Priority() < ops[j].Priority()
	})
	return ops
}
