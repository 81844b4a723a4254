package pipeline

import (
	"path/filepath"
	"strings"

	"github.com/backmassage/bulkrename/internal/rename"
)

// Status classifies a plan entry.
type Status int

const (
	StatusRename    Status = iota // Name changes; safe to commit.
	StatusUnchanged               // Chain left the name as-is.
	StatusSkipped                 // Target unsafe (exists outside the batch); Note says why.
)

// Entry is one file in the rename plan.
type Entry struct {
	OldPath string
	NewPath string
	OldName string
	NewName string
	Status  Status
	Note    string
}

// BuildPlan computes the rename plan for paths. Names are previewed over
// the file stem unless renameExt is set, in which case the full basename
// goes through the chain. exists reports whether a path is occupied on
// disk; nil disables the check (tests, pure previews of hypothetical
// batches).
//
// Collision policy: a target occupied on disk by anything other than the
// entry itself is skipped, never overwritten; duplicate targets within the
// batch are numbered " (2)", " (3)", … in batch order.
func BuildPlan(paths []string, ops []rename.Operation, renameExt bool, exists func(string) bool) []Entry {
	names := make([]string, len(paths))
	exts := make([]string, len(paths))
	for i, path := range paths {
		base := filepath.Base(path)
		if renameExt {
			names[i] = base
		} else {
			ext := filepath.Ext(base)
			names[i] = strings.TrimSuffix(base, ext)
			exts[i] = ext
		}
	}

	br := rename.NewBulkRenamer(ops...)
	previews := br.RenamePreviews(names)

	resolver := NewCollisionResolver()
	entries := make([]Entry, len(paths))

	// Unchanged files keep their paths; claim those targets first so a
	// renamed file cannot silently take an unchanged file's name.
	for i, pv := range previews {
		if pv.Result+exts[i] == filepath.Base(paths[i]) {
			resolver.Resolve(paths[i], paths[i])
		}
	}

	for i, pv := range previews {
		oldPath := paths[i]
		oldName := filepath.Base(oldPath)
		newName := pv.Result + exts[i]

		if newName == oldName {
			entries[i] = Entry{
				OldPath: oldPath, NewPath: oldPath,
				OldName: oldName, NewName: oldName,
				Status: StatusUnchanged,
			}
			continue
		}

		requested := filepath.Join(filepath.Dir(oldPath), newName)
		if exists != nil && exists(requested) {
			entries[i] = Entry{
				OldPath: oldPath, NewPath: requested,
				OldName: oldName, NewName: newName,
				Status: StatusSkipped, Note: "target exists",
			}
			continue
		}

		final := resolver.Resolve(oldPath, requested)
		if final != requested && exists != nil && exists(final) {
			entries[i] = Entry{
				OldPath: oldPath, NewPath: final,
				OldName: oldName, NewName: filepath.Base(final),
				Status: StatusSkipped, Note: "target exists",
			}
			continue
		}
		e := Entry{
			OldPath: oldPath, NewPath: final,
			OldName: oldName, NewName: filepath.Base(final),
			Status: StatusRename,
		}
		if final != requested {
			e.Note = "duplicate target, numbered"
		}
		entries[i] = e
	}
	return entries
}
