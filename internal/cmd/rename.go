package cmd

import (
	"tvrename/internal/analysis"
	"tvrename/internal/config"
	serr "tvrename/internal/errors"
	"tvrename/internal/fsys"
	"tvrename/internal/log"
	"tvrename/internal/organize"
	"tvrename/pkg/types"
)

// Run executes one pass of the pipeline: scan, detect, select, rename.
// Only a missing directory is returned as an error; every other problem
// is reported and the run carries on.
func Run(opts config.Options, fs fsys.FileSystem, ui *UI) error {
	entries, err := analysis.NewWithFileSystem(fs).ScanDirectory(opts.Path)
	if err != nil {
		if serr.IsPathNotFound(err) {
			return err
		}
		log.LogWithError(err).Warn("Failed to read directory")
	}

	run := opts.Resolve(func() string {
		return analysis.DetectExtension(entries)
	})
	logger := log.LogWithFields(
		log.F("dir", run.Dir),
		log.F("name", run.Name),
		log.F("ext", run.Ext),
		log.F("season", run.Season),
		log.F("sort", run.Sort.String()),
		log.F("dry_run", run.DryRun),
	)
	logger.Debug("Resolved run")
	if run.Detected {
		if run.Ext == "" {
			log.LogWithError(serr.ErrNoExtension).Warn("No file with an extension found, nothing to rename")
		} else {
			logger.Debugf("Detected extension %q", run.Ext)
			ui.PrintDetected(run.Ext)
		}
	}

	selector, err := organize.NewSelector(run)
	if err != nil {
		return err
	}
	selected := selector.Select(entries)
	ui.PrintHeader(run, len(selected))

	engine := organize.NewWithConfig(run)
	engine.SetFileSystem(fs)
	ui.PrintSummary(renameAndReport(engine, selected, ui), run.DryRun)
	return nil
}

// renameAndReport streams each result to the UI as it happens
func renameAndReport(r organize.Renamer, entries []types.Entry, ui *UI) types.Summary {
	r.OnResult(ui.PrintResult)
	return types.Summarize(r.RenameAll(entries))
}
