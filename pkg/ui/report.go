package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/gentlegoose/pkg/types"
	"github.com/arthur-debert/gentlegoose/pkg/ui/styles"
)

// maxExistingToShow caps how many already-present patterns a dry-run
// report lists before truncating
const maxExistingToShow = 5

// Reporter renders sync results for humans
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a reporter writing to out with auto-detected
// formatting
func NewReporter(out *os.File) *Reporter {
	return &Reporter{out: out, format: DetectFormat(out)}
}

// NewReporterWithFormat creates a reporter with an explicit format,
// mainly for tests
func NewReporterWithFormat(out io.Writer, format Format) *Reporter {
	return &Reporter{out: out, format: format}
}

// Render prints a human-readable account of the sync result
func (r *Reporter) Render(result *types.SyncResult) {
	switch result.Status {
	case types.SyncStatusSkipped:
		fmt.Fprintf(r.out, "Settings file exists: %s\n", r.styled("FilePath", result.SettingsPath))
		fmt.Fprintln(r.out, "Use --update-existing to add new global patterns.")

	case types.SyncStatusUpToDate:
		if result.SourcePath == "" {
			fmt.Fprintln(r.out, "No global gitignore patterns found.")
		} else {
			fmt.Fprintln(r.out, r.styled("Success", "All global gitignore patterns already present."))
		}

	case types.SyncStatusDryRun:
		fmt.Fprintf(r.out, "Would update: %s\n", r.styled("FilePath", result.SettingsPath))
		fmt.Fprintf(r.out, "Would add %d new pattern(s):\n", len(result.Added))
		for _, pattern := range result.Added {
			fmt.Fprintln(r.out, r.styled("Added", "+ "+pattern))
		}
		r.renderExisting(result.Existing, result.ExistingCount)

	case types.SyncStatusWritten:
		verb := "Updated"
		if result.Created {
			verb = "Created"
		}
		fmt.Fprintf(r.out, "%s %s\n", r.styled("Success", verb), r.styled("FilePath", result.SettingsPath))
		fmt.Fprintf(r.out, "Added %d new pattern(s):\n", len(result.Added))
		for _, pattern := range result.Added {
			fmt.Fprintln(r.out, r.styled("Added", "+ "+pattern))
		}
	}
}

// renderExisting lists the patterns already in place, truncating after
// maxExistingToShow. count may exceed len(existing) when the list holds
// non-string entries; those stay in the hidden remainder.
func (r *Reporter) renderExisting(existing []string, count int) {
	if count == 0 {
		return
	}
	fmt.Fprintf(r.out, "%d existing pattern(s) would be preserved:\n", count)

	shown := len(existing)
	if shown > maxExistingToShow {
		shown = maxExistingToShow
	}
	for _, pattern := range existing[:shown] {
		fmt.Fprintln(r.out, r.styled("Existing", "= "+pattern))
	}
	if hidden := count - shown; hidden > 0 {
		fmt.Fprintln(r.out, r.styled("Muted", fmt.Sprintf("  ... and %d more", hidden)))
	}
}

// styled applies a named style unless plain-text output is in effect
func (r *Reporter) styled(name, s string) string {
	if r.format == FormatText {
		return s
	}
	return styles.GetStyle(name).Render(s)
}
