// Package report renders diff and duplicate reports for terminal review.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agenthands/iconcat/internal/core/model"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))  // Green
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("197")) // Red
	changedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")) // Yellow
	issueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// RenderDiff formats a reconciliation result for human review. Sections are
// omitted when empty; an in-sync run still prints the summary so every run
// reports something.
func RenderDiff(d *model.DiffResult) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Reconciliation "+d.RunID) + "\n")
	b.WriteString(Summary(d) + "\n")

	if len(d.Added) > 0 {
		b.WriteString("\n" + headerStyle.Render(fmt.Sprintf("New assets (%d)", len(d.Added))) + "\n")
		for _, a := range d.Added {
			line := fmt.Sprintf("  + %-40s %s [%s]", a.Key, a.Path, a.Category)
			b.WriteString(addedStyle.Render(line) + "\n")
		}
	}
	if len(d.Removed) > 0 {
		b.WriteString("\n" + headerStyle.Render(fmt.Sprintf("Vanished assets (%d)", len(d.Removed))) + "\n")
		for _, r := range d.Removed {
			line := fmt.Sprintf("  - %-40s %s [%s]", r.Key, r.SourcePath, r.Category)
			b.WriteString(removedStyle.Render(line) + "\n")
		}
	}
	if len(d.Changed) > 0 {
		b.WriteString("\n" + headerStyle.Render(fmt.Sprintf("Moved assets (%d)", len(d.Changed))) + "\n")
		for _, ch := range d.Changed {
			line := fmt.Sprintf("  ~ %-40s %s -> %s", ch.Key, ch.OldPath, ch.NewPath)
			b.WriteString(changedStyle.Render(line) + "\n")
		}
	}
	if len(d.Issues) > 0 {
		b.WriteString("\n" + headerStyle.Render(fmt.Sprintf("Skipped assets (%d)", len(d.Issues))) + "\n")
		for _, issue := range d.Issues {
			b.WriteString(issueStyle.Render(fmt.Sprintf("  ! %s: %s", issue.Path, issue.Reason)) + "\n")
		}
	}

	if d.InSync() {
		b.WriteString(faintStyle.Render("Catalog is in sync with the external source.") + "\n")
	}
	return b.String()
}

// Summary is the one-line count header.
func Summary(d *model.DiffResult) string {
	return fmt.Sprintf("external=%d catalog=%d added=%d removed=%d changed=%d issues=%d",
		d.Counts.External, d.Counts.Catalog, d.Counts.Added, d.Counts.Removed, d.Counts.Changed, d.Counts.Issues)
}

// RenderDuplicates formats the duplicate-key report. A non-empty report is a
// hard failure: it is printed instead of a diff, never alongside one.
func RenderDuplicates(reports []model.DuplicateKeyReport) string {
	var b strings.Builder

	b.WriteString(removedStyle.Render(fmt.Sprintf("Found %d duplicate key(s); reconciliation refused.", len(reports))) + "\n")
	b.WriteString(faintStyle.Render("A keyed lookup keeps only the last definition; earlier ones are silently lost.") + "\n")

	for _, report := range reports {
		b.WriteString("\n" + headerStyle.Render(report.Key) + "\n")
		for _, occ := range report.Occurrences {
			path := occ.SourcePath
			if path == model.ManualSource {
				path = "(manually curated)"
			}
			b.WriteString(fmt.Sprintf("  entry #%d: %s\n", occ.Position, path))
		}
	}
	return b.String()
}
