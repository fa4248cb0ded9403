package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"tvrename/internal/config"
	"tvrename/pkg/types"
)

// UI prints run progress: mappings and successes to out, failures to errOut.
// Colors are only used when the writer is a terminal.
type UI struct {
	out    io.Writer
	errOut io.Writer

	header  lipgloss.Style
	success lipgloss.Style
	muted   lipgloss.Style
	alert   lipgloss.Style
	failure lipgloss.Style
	name    lipgloss.Style
}

// NewUI creates a UI writing to the given streams
func NewUI(out, errOut io.Writer) *UI {
	r := lipgloss.NewRenderer(out)
	er := lipgloss.NewRenderer(errOut)
	return &UI{
		out:     out,
		errOut:  errOut,
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		success: r.NewStyle().Foreground(lipgloss.Color("114")),
		muted:   r.NewStyle().Faint(true),
		alert:   r.NewStyle().Foreground(lipgloss.Color("220")),
		failure: er.NewStyle().Foreground(lipgloss.Color("196")),
		name:    r.NewStyle().Foreground(lipgloss.Color("212")),
	}
}

// PrintDetected reports the extension picked when none was given
func (u *UI) PrintDetected(ext string) {
	fmt.Fprintf(u.out, "Detected extension %s\n", u.name.Render("."+ext))
}

// PrintHeader announces what the run is about to do
func (u *UI) PrintHeader(run config.Run, count int) {
	ext := run.Ext
	if ext == "" {
		ext = "(none)"
	}
	verb := "Renaming"
	if run.DryRun {
		verb = "Dry run: would rename"
	}
	fmt.Fprintln(u.out, u.header.Render(fmt.Sprintf("%s %d .%s file(s) in %s (%s)", verb, count, ext, run.Dir, run.Sort)))
}

// PrintResult reports the outcome for one file
func (u *UI) PrintResult(r types.RenameResult) {
	switch r.Status {
	case types.Planned:
		fmt.Fprintf(u.out, "  %s -> %s %s\n", r.Entry.Name, u.name.Render(r.NewName),
			u.muted.Render("("+humanize.Bytes(uint64(r.Entry.Size))+")"))
	case types.Renamed:
		fmt.Fprintf(u.out, "  %s %s -> %s\n", u.success.Render("renamed"), r.Entry.Name, u.name.Render(r.NewName))
	case types.Unchanged:
		fmt.Fprintf(u.out, "  %s %s\n", u.muted.Render("unchanged"), r.Entry.Name)
	case types.Failed:
		fmt.Fprintf(u.errOut, "  %s %s -> %s: %v\n", u.failure.Render("failed"), r.Entry.Name, r.NewName, r.Error)
	}
}

// PrintSummary closes the run with per-status counts
func (u *UI) PrintSummary(s types.Summary, dryRun bool) {
	if dryRun {
		fmt.Fprintln(u.out, u.muted.Render(fmt.Sprintf("Dry run complete: %d planned, %d unchanged. No files were renamed.", s.Planned, s.Unchanged)))
		return
	}
	line := fmt.Sprintf("Done: %d renamed, %d unchanged, %d failed", s.Renamed, s.Unchanged, s.Failed)
	if s.Failed > 0 {
		fmt.Fprintln(u.out, u.alert.Render(line))
		return
	}
	fmt.Fprintln(u.out, u.success.Render(line))
}
