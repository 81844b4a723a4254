package rename

// Preview pairs an original name with the result of running it through an
// operation chain. It is a reporting value only and is never fed back into
// the pipeline.
type Preview struct {
	Original string
	Result   string
}

// Changed reports whether the chain altered the name.
func (p Preview) Changed() bool { return p.Original != p.Result }

// BulkRenamer applies an ordered chain of operations to batches of names.
// The chain is applied per name as a strict left fold: each operation sees
// the previous operation's output and the name's batch index. Names are
// processed independently; no state crosses from one name to the next.
//
// A BulkRenamer is owned by a single caller; configuration changes must not
// race with an in-flight RenamePreviews call.
type BulkRenamer struct {
	ops []Operation
}

// NewBulkRenamer returns a renamer with the given initial chain. With no
// arguments the chain is empty, which is valid and yields identity
// previews.
func NewBulkRenamer(ops ...Operation) *BulkRenamer {
	br := &BulkRenamer{}
	br.SetOperations(ops)
	return br
}

// SetOperation replaces the entire chain with the single operation op.
func (br *BulkRenamer) SetOperation(op Operation) {
	br.SetOperations([]Operation{op})
}

// SetOperations replaces the chain wholesale, preserving the given order.
// The slice is copied; the caller keeps ownership of ops. No validation is
// performed and an empty or nil slice is legal.
func (br *BulkRenamer) SetOperations(ops []Operation) {
	br.ops = append([]Operation(nil), ops...)
}

// Operations returns a copy of the current chain in application order.
func (br *BulkRenamer) Operations() []Operation {
	return append([]Operation(nil), br.ops...)
}

// RenamePreviews runs every name through the full chain and returns one
// preview per input, in input order. The index passed to each operation is
// the name's position within names. The call has no side effects and is
// repeatable: identical inputs and configuration produce identical output.
func (br *BulkRenamer) RenamePreviews(names []string) []Preview {
	previews := make([]Preview, len(names))
	for i, name := range names {
		current := name
		for _, op := range br.ops {
			current = op.Rename(current, i)
		}
		previews[i] = Preview{Original: name, Result: current}
	}
	return previews
}
