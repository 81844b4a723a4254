package display

import (
	"strings"
	"testing"
)

func TestRenderRows(t *testing.T) {
	rows := []Row{
		{From: "a_1.txt", To: "a 1.txt", Status: RowRenamed},
		{From: "clean.txt", Status: RowUnchanged},
		{From: "b.txt", To: "taken.txt", Status: RowSkipped, Note: "target exists"},
	}

	out := RenderRows(rows)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "a_1.txt") || !strings.Contains(lines[0], "a 1.txt") {
		t.Errorf("renamed row missing names: %q", lines[0])
	}
	if !strings.Contains(lines[1], "(unchanged)") {
		t.Errorf("unchanged row missing marker: %q", lines[1])
	}
	if !strings.Contains(lines[2], "target exists") {
		t.Errorf("skipped row missing note: %q", lines[2])
	}
}

func TestRenderRowsEmpty(t *testing.T) {
	if out := RenderRows(nil); out != "" {
		t.Errorf("got %q, want empty", out)
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name                                string
		renamed, unchanged, skipped, failed int
		want                                string
	}{
		{"all counters", 5, 2, 1, 1, "5 renamed, 2 unchanged, 1 skipped, 1 failed"},
		{"only renamed", 3, 0, 0, 0, "3 renamed"},
		{"zeros", 0, 0, 0, 0, "nothing to do"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summary(tt.renamed, tt.unchanged, tt.skipped, tt.failed)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
