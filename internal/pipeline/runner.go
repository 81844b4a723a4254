package pipeline

import (
	"fmt"
	"os"

	"github.com/backmassage/bulkrename/internal/config"
	"github.com/backmassage/bulkrename/internal/display"
	"github.com/backmassage/bulkrename/internal/journal"
	"github.com/backmassage/bulkrename/internal/logging"
)

// Run executes a full pass over dir: discover, plan, print the preview,
// and, when apply is set, commit the renames and record them in jnl.
// jnl may be nil for preview-only passes. Per-file rename failures are
// counted and logged but do not abort the pass.
func Run(cfg *config.Config, log *logging.Logger, dir string, apply bool, jnl *journal.Journal) (RunStats, error) {
	var stats RunStats

	ops, err := cfg.BuildChain()
	if err != nil {
		return stats, err
	}

	paths, err := Discover(dir, cfg.Recursive, cfg.Extensions)
	if err != nil {
		return stats, fmt.Errorf("discover: %w", err)
	}
	stats.Total = len(paths)
	if len(paths) == 0 {
		log.Warn("No files found in %s", dir)
		return stats, nil
	}
	log.Debug("Discovered %d files under %s", len(paths), dir)

	exists := func(path string) bool {
		_, err := os.Lstat(path)
		return err == nil
	}
	entries := BuildPlan(paths, ops, cfg.RenameExtension, exists)

	fmt.Print(display.RenderRows(planRows(entries)))

	var applied []journal.Entry
	for _, e := range entries {
		switch e.Status {
		case StatusUnchanged:
			stats.Unchanged++
		case StatusSkipped:
			stats.Skipped++
			log.Warn("Skipped %s: %s", e.OldName, e.Note)
		case StatusRename:
			if !apply {
				stats.Renamed++
				continue
			}
			if err := os.Rename(e.OldPath, e.NewPath); err != nil {
				stats.Failed++
				log.Error("Rename %s: %v", e.OldName, err)
				continue
			}
			stats.Renamed++
			applied = append(applied, journal.Entry{OldPath: e.OldPath, NewPath: e.NewPath})
		}
	}

	if apply && jnl != nil && len(applied) > 0 {
		batchID, err := jnl.RecordBatch(dir, applied)
		if err != nil {
			// The renames happened; a journal failure only loses undo.
			log.Warn("History not recorded: %v", err)
		} else {
			log.Debug("Recorded batch %s (%d entries)", batchID, len(applied))
		}
	}

	mode := "Preview"
	if apply {
		mode = "Result"
	}
	log.Info("%s: %s", mode, display.Summary(stats.Renamed, stats.Unchanged, stats.Skipped, stats.Failed))
	return stats, nil
}

func planRows(entries []Entry) []display.Row {
	rows := make([]display.Row, len(entries))
	for i, e := range entries {
		row := display.Row{From: e.OldName, To: e.NewName, Note: e.Note}
		switch e.Status {
		case StatusUnchanged:
			row.Status = display.RowUnchanged
		case StatusSkipped:
			row.Status = display.RowSkipped
		default:
			row.Status = display.RowRenamed
		}
		rows[i] = row
	}
	return rows
}
