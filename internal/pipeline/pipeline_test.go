package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/backmassage/bulkrename/internal/config"
	"github.com/backmassage/bulkrename/internal/journal"
	"github.com/backmassage/bulkrename/internal/logging"
	"github.com/backmassage/bulkrename/internal/rename"
)

// --- Discover tests ---

func TestDiscover_SortedAndFilesOnly(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b.txt")
	touch(t, dir, "a.txt")
	os.MkdirAll(filepath.Join(dir, "sub"), 0o755)
	touch(t, filepath.Join(dir, "sub"), "nested.txt")

	files, err := Discover(dir, false, nil)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	want := []string{"a.txt", "b.txt"}
	got := basenames(files)
	if !sliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDiscover_Recursive(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "top.txt")
	os.MkdirAll(filepath.Join(dir, "sub"), 0o755)
	touch(t, filepath.Join(dir, "sub"), "nested.txt")

	files, err := Discover(dir, true, nil)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("got %d files, want 2", len(files))
	}
}

func TestDiscover_SkipsDotfilesAndConfigDir(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "visible.txt")
	touch(t, dir, ".hidden")
	os.MkdirAll(filepath.Join(dir, config.DirName), 0o755)
	touch(t, filepath.Join(dir, config.DirName), "config.yaml")

	files, err := Discover(dir, true, nil)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "visible.txt" {
		t.Errorf("got %v, want only visible.txt", basenames(files))
	}
}

func TestDiscover_ExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "song.mp3")
	touch(t, dir, "SONG2.MP3")
	touch(t, dir, "cover.jpg")
	touch(t, dir, "notes.txt")

	files, err := Discover(dir, false, []string{".mp3"})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("got %v, want 2 mp3 files (case-insensitive ext matching)", basenames(files))
	}
}

func TestDiscover_EmptyDir(t *testing.T) {
	files, err := Discover(t.TempDir(), true, nil)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("got %d files, want 0", len(files))
	}
}

// --- CollisionResolver tests ---

func TestCollisionResolver_NumbersDuplicates(t *testing.T) {
	cr := NewCollisionResolver()

	first := cr.Resolve("/in/a.txt", "/out/x.txt")
	second := cr.Resolve("/in/b.txt", "/out/x.txt")
	third := cr.Resolve("/in/c.txt", "/out/x.txt")

	if first != "/out/x.txt" {
		t.Errorf("first claim: got %q", first)
	}
	if second != "/out/x (2).txt" {
		t.Errorf("second claim: got %q", second)
	}
	if third != "/out/x (3).txt" {
		t.Errorf("third claim: got %q", third)
	}
}

func TestCollisionResolver_SameOwnerIdempotent(t *testing.T) {
	cr := NewCollisionResolver()

	a := cr.Resolve("/in/a.txt", "/out/x.txt")
	b := cr.Resolve("/in/a.txt", "/out/x.txt")
	if a != b {
		t.Errorf("same owner should get the same path: %q vs %q", a, b)
	}
}

func TestCollisionResolver_NumberedVariantAlreadyClaimed(t *testing.T) {
	cr := NewCollisionResolver()

	cr.Resolve("/in/a.txt", "/out/x (2).txt")
	cr.Resolve("/in/b.txt", "/out/x.txt")
	got := cr.Resolve("/in/c.txt", "/out/x.txt")
	if got != "/out/x (3).txt" {
		t.Errorf("got %q, want /out/x (3).txt", got)
	}
}

// --- BuildPlan tests ---

func removeOp(chars string) rename.Operation {
	op := rename.NewRemoveCharacters()
	op.SetCustomPreset(chars, false)
	return op
}

func TestBuildPlan_StemOnlyByDefault(t *testing.T) {
	ops := []rename.Operation{removeOp("_")}
	entries := BuildPlan([]string{"/d/a_b.txt"}, ops, false, nil)

	if entries[0].NewName != "ab.txt" {
		t.Errorf("got %q, want ab.txt (extension untouched)", entries[0].NewName)
	}
	if entries[0].Status != StatusRename {
		t.Errorf("status: got %v, want StatusRename", entries[0].Status)
	}
}

func TestBuildPlan_RenameExtension(t *testing.T) {
	ops := []rename.Operation{removeOp("_")}
	entries := BuildPlan([]string{"/d/a_b.t_t"}, ops, true, nil)

	if entries[0].NewName != "ab.tt" {
		t.Errorf("got %q, want ab.tt", entries[0].NewName)
	}
}

func TestBuildPlan_UnchangedEntries(t *testing.T) {
	entries := BuildPlan([]string{"/d/clean.txt"}, []rename.Operation{removeOp("_")}, false, nil)

	e := entries[0]
	if e.Status != StatusUnchanged || e.NewPath != e.OldPath {
		t.Errorf("got %+v, want unchanged with identical paths", e)
	}
}

func TestBuildPlan_EmptyChainIsAllUnchanged(t *testing.T) {
	entries := BuildPlan([]string{"/d/a.txt", "/d/b.txt"}, nil, false, nil)

	for _, e := range entries {
		if e.Status != StatusUnchanged {
			t.Errorf("%s: got status %v, want StatusUnchanged", e.OldName, e.Status)
		}
	}
}

func TestBuildPlan_DuplicateTargetsNumbered(t *testing.T) {
	// Removing digits maps both names onto "track.txt".
	ops := []rename.Operation{removeOp("0123456789")}
	entries := BuildPlan([]string{"/d/track1.txt", "/d/track2.txt"}, ops, false, nil)

	if entries[0].NewName != "track.txt" {
		t.Errorf("first: got %q", entries[0].NewName)
	}
	if entries[1].NewName != "track (2).txt" {
		t.Errorf("second: got %q, want numbered duplicate", entries[1].NewName)
	}
	if entries[1].Note == "" {
		t.Error("numbered duplicate should carry a note")
	}
}

func TestBuildPlan_TargetClaimedByUnchangedFile(t *testing.T) {
	// "a_b.txt" maps onto "ab.txt", which an unchanged batch member
	// already occupies; the rename must be diverted, not collide.
	ops := []rename.Operation{removeOp("_")}
	entries := BuildPlan([]string{"/d/a_b.txt", "/d/ab.txt"}, ops, false, nil)

	if entries[1].Status != StatusUnchanged {
		t.Fatalf("ab.txt should be unchanged, got %v", entries[1].Status)
	}
	if entries[0].NewName != "ab (2).txt" {
		t.Errorf("got %q, want ab (2).txt", entries[0].NewName)
	}
}

func TestBuildPlan_ExistingTargetSkipped(t *testing.T) {
	ops := []rename.Operation{removeOp("_")}
	exists := func(path string) bool { return path == "/d/ab.txt" }

	entries := BuildPlan([]string{"/d/a_b.txt"}, ops, false, exists)

	e := entries[0]
	if e.Status != StatusSkipped {
		t.Fatalf("got status %v, want StatusSkipped", e.Status)
	}
	if e.Note != "target exists" {
		t.Errorf("note: got %q", e.Note)
	}
}

func TestBuildPlan_BatchIndexFollowsDiscoveryOrder(t *testing.T) {
	enum := rename.NewEnumerate()
	enum.Format = "00"
	enum.Separator = "-"
	entries := BuildPlan(
		[]string{"/d/a.txt", "/d/b.txt", "/d/c.txt"},
		[]rename.Operation{enum}, false, nil,
	)

	want := []string{"a-01.txt", "b-02.txt", "c-03.txt"}
	for i, e := range entries {
		if e.NewName != want[i] {
			t.Errorf("entry %d: got %q, want %q", i, e.NewName, want[i])
		}
	}
}

// --- Run integration tests ---

func newRunConfig(chain ...config.OperationSpec) config.Config {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.Chain = chain
	return cfg
}

func newTestLogger(t *testing.T, cfg *config.Config) *logging.Logger {
	t.Helper()
	log, err := logging.NewLogger(cfg)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	t.Cleanup(func() { log.Close() })
	return log
}

func TestRun_PreviewTouchesNothing(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a_1.txt")
	touch(t, dir, "b_2.txt")

	cfg := newRunConfig(config.OperationSpec{
		Op: config.OpRemoveCharacters, Preset: "custom", Characters: "_",
	})
	log := newTestLogger(t, &cfg)

	stats, err := Run(&cfg, log, dir, false, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Renamed != 2 || stats.Failed != 0 {
		t.Errorf("stats: %+v", stats)
	}
	// Originals must still be on disk.
	for _, name := range []string{"a_1.txt", "b_2.txt"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s missing after preview: %v", name, err)
		}
	}
}

func TestRun_ApplyRenamesAndJournals(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a_1.txt")
	touch(t, dir, "clean.txt")

	cfg := newRunConfig(config.OperationSpec{
		Op: config.OpRemoveCharacters, Preset: "custom", Characters: "_",
	})
	log := newTestLogger(t, &cfg)

	jnl, err := journal.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("journal.Open: %v", err)
	}
	defer jnl.Close()

	stats, err := Run(&cfg, log, dir, true, jnl)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Renamed != 1 || stats.Unchanged != 1 {
		t.Errorf("stats: %+v", stats)
	}
	if _, err := os.Stat(filepath.Join(dir, "a1.txt")); err != nil {
		t.Errorf("renamed file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "a_1.txt")); err == nil {
		t.Error("original still present after apply")
	}

	batch, err := jnl.LastBatch()
	if err != nil || batch == nil {
		t.Fatalf("LastBatch: %v, %v", batch, err)
	}
	entries, err := jnl.Entries(batch.ID)
	if err != nil || len(entries) != 1 {
		t.Fatalf("Entries: %v, %v", entries, err)
	}
}

func TestRun_ApplyThenUndoRestores(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a_1.txt")
	touch(t, dir, "b_2.txt")

	cfg := newRunConfig(config.OperationSpec{
		Op: config.OpRemoveCharacters, Preset: "custom", Characters: "_",
	})
	log := newTestLogger(t, &cfg)

	jnl, err := journal.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("journal.Open: %v", err)
	}
	defer jnl.Close()

	if _, err := Run(&cfg, log, dir, true, jnl); err != nil {
		t.Fatalf("Run: %v", err)
	}

	restored, err := Undo(log, jnl)
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if restored != 2 {
		t.Errorf("restored: got %d, want 2", restored)
	}
	for _, name := range []string{"a_1.txt", "b_2.txt"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s not restored: %v", name, err)
		}
	}

	// History is consumed; a second undo has nothing left.
	if _, err := Undo(log, jnl); err != ErrNoHistory {
		t.Errorf("second undo: got %v, want ErrNoHistory", err)
	}
}

func TestRun_SkipsWhenTargetExists(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a_1.txt")
	// The conflicting file is part of the batch but unchanged by the
	// chain, so its path stays occupied.
	touch(t, dir, "a1.txt")

	cfg := newRunConfig(config.OperationSpec{
		Op: config.OpRemoveCharacters, Preset: "custom", Characters: "_",
	})
	log := newTestLogger(t, &cfg)

	stats, err := Run(&cfg, log, dir, true, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Skipped != 1 {
		t.Errorf("stats: %+v, want 1 skipped", stats)
	}
	// Conflicting file must be untouched and the source left in place.
	if _, err := os.Stat(filepath.Join(dir, "a1.txt")); err != nil {
		t.Errorf("existing target disturbed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "a_1.txt")); err != nil {
		t.Errorf("skipped source disturbed: %v", err)
	}
}

func TestRun_EmptyDir(t *testing.T) {
	cfg := newRunConfig()
	log := newTestLogger(t, &cfg)

	stats, err := Run(&cfg, log, t.TempDir(), false, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Total != 0 {
		t.Errorf("stats: %+v", stats)
	}
}

// --- Helpers ---

func touch(t *testing.T, dir, name string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte{}, 0o644); err != nil {
		t.Fatalf("touch %s: %v", path, err)
	}
}

func basenames(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Base(p)
	}
	return out
}

func sliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
