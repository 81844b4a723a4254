// Package display renders the rename plan for the terminal: the banner and
// a styled old → new preview table.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RowStatus classifies a plan entry for rendering.
type RowStatus int

const (
	RowRenamed   RowStatus = iota // Name changes; will be (or was) renamed.
	RowUnchanged                  // Chain left the name as-is.
	RowSkipped                    // Not safe to rename; Note says why.
)

// Row is one line of the preview table.
type Row struct {
	From   string
	To     string
	Status RowStatus
	Note   string // Reason shown for skipped rows.
}

var (
	arrowStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	renamedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	unchangedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	skippedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	noteStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true)
)

// RenderRows returns the preview table as a single string, one line per
// row, with the From column padded for alignment. Styling degrades to plain
// text when the terminal does not support color.
func RenderRows(rows []Row) string {
	width := 0
	for _, r := range rows {
		if w := lipgloss.Width(r.From); w > width {
			width = w
		}
	}

	var b strings.Builder
	for _, r := range rows {
		pad := strings.Repeat(" ", width-lipgloss.Width(r.From))
		switch r.Status {
		case RowUnchanged:
			b.WriteString(unchangedStyle.Render(r.From + pad + "   (unchanged)"))
		case RowSkipped:
			b.WriteString(skippedStyle.Render(r.From+pad) + arrowStyle.Render(" → ") + skippedStyle.Render(r.To))
			if r.Note != "" {
				b.WriteString("  " + noteStyle.Render("["+r.Note+"]"))
			}
		default:
			b.WriteString(r.From + pad + arrowStyle.Render(" → ") + renamedStyle.Render(r.To))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Summary returns a one-line run summary, e.g. "5 renamed, 2 unchanged,
// 1 skipped". Zero counters are omitted except when everything is zero.
func Summary(renamed, unchanged, skipped, failed int) string {
	parts := []string{}
	if renamed > 0 {
		parts = append(parts, fmt.Sprintf("%d renamed", renamed))
	}
	if unchanged > 0 {
		parts = append(parts, fmt.Sprintf("%d unchanged", unchanged))
	}
	if skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", skipped))
	}
	if failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", failed))
	}
	if len(parts) == 0 {
		return "nothing to do"
	}
	return strings.Join(parts, ", ")
}
