package pipeline

import (
	"errors"
	"os"

	"github.com/backmassage/bulkrename/internal/journal"
	"github.com/backmassage/bulkrename/internal/logging"
)

// ErrNoHistory is returned by [Undo] when the journal has no batches left.
var ErrNoHistory = errors.New("no rename history to undo")

// Undo reverts the most recent applied batch by renaming each entry back
// (new → old) in reverse application order, then deletes the batch from the
// journal. Entries whose new path no longer exists, or whose old path has
// since been reoccupied, are skipped with a warning. Returns the number of
// files restored.
func Undo(log *logging.Logger, jnl *journal.Journal) (int, error) {
	batch, err := jnl.LastBatch()
	if err != nil {
		return 0, err
	}
	if batch == nil {
		return 0, ErrNoHistory
	}

	entries, err := jnl.Entries(batch.ID)
	if err != nil {
		return 0, err
	}

	restored := 0
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if _, err := os.Lstat(e.NewPath); err != nil {
			log.Warn("Skipped %s: no longer exists", e.NewPath)
			continue
		}
		if _, err := os.Lstat(e.OldPath); err == nil {
			log.Warn("Skipped %s: original path reoccupied", e.OldPath)
			continue
		}
		if err := os.Rename(e.NewPath, e.OldPath); err != nil {
			log.Error("Restore %s: %v", e.NewPath, err)
			continue
		}
		restored++
	}

	if err := jnl.DeleteBatch(batch.ID); err != nil {
		return restored, err
	}
	log.Success("Restored %d of %d files from batch %s", restored, len(entries), batch.ID)
	return restored, nil
}
