// Package rename implements the batch rename core: composable text
// transformation operations and the BulkRenamer that applies them.
//
// An [Operation] is a pure transformation of (name, batch index) to a new
// name. Operations never fail; invalid configuration degrades to the
// identity transform. A [BulkRenamer] holds an ordered operation chain and
// computes one [Preview] per input name by folding the chain left to right.
// The index passed to every operation is the name's position within the
// input batch, not a per-operation counter; enumeration schemes depend on
// that.
//
// The package computes name mappings only. Applying them to storage is the
// caller's job (see internal/pipeline).
package rename
