package presentation

import (
	"fmt"
	"io"

	"github.com/picnoir/picobak/internal/domain"
	appErrors "github.com/picnoir/picobak/internal/errors"
)

// Printer writes the per-file decision trace and the final statistics
// block. With DryRun set, decision lines are phrased as intentions.
type Printer struct {
	Writer io.Writer
	DryRun bool
}

func (p Printer) PrintDecision(pl domain.Placement) {
	verb := func(real string) string {
		if p.DryRun {
			return "would " + real
		}
		return real
	}

	if pl.MkdirNeeded && pl.Action != domain.ActionSkipDuplicate {
		fmt.Fprintf(p.Writer, "%s %s\n", verb("create directory"), pl.TargetDir)
	}

	switch pl.Action {
	case domain.ActionCopy:
		fmt.Fprintf(p.Writer, "%s %s -> %s\n", verb("copy"), pl.SourcePath, pl.TargetPath)
	case domain.ActionCopyRenamed:
		fmt.Fprintf(p.Writer, "%s %s -> %s (name taken by different content)\n", verb("copy"), pl.SourcePath, pl.TargetPath)
	case domain.ActionSkipDuplicate:
		fmt.Fprintf(p.Writer, "%s %s: already backed up at %s\n", verb("skip"), pl.SourcePath, pl.TargetPath)
	}
}

// PrintReport writes the end-of-batch statistics block.
func (p Printer) PrintReport(report domain.Report) {
	fmt.Fprintln(p.Writer, "Backup Statistics:")
	fmt.Fprintln(p.Writer, "==================")
	fmt.Fprintf(p.Writer, "Duplicates: %d\n", report.Duplicates)
	fmt.Fprintf(p.Writer, "Copied: %d\n", report.Copied())
	if report.Renamed > 0 {
		fmt.Fprintf(p.Writer, "Renamed to avoid collision: %d\n", report.Renamed)
	}
	fmt.Fprintln(p.Writer, "To classify these newly copied files, we used:")
	fmt.Fprintf(p.Writer, "   %d: %s\n", report.CopiedExif, domain.OriginExif)
	fmt.Fprintf(p.Writer, "   %d: %s\n", report.CopiedExifTool, domain.OriginExifTool)
	fmt.Fprintf(p.Writer, "   %d: %s\n", report.CopiedModTime, domain.OriginModTime)
	fmt.Fprintf(p.Writer, "Failures: %d\n", len(report.Failures))

	if report.Failed() {
		fmt.Fprintln(p.Writer)
		fmt.Fprintln(p.Writer, "WARNING: unable to backup some files:")
		for _, failure := range report.Failures {
			fmt.Fprintln(p.Writer, appErrors.UserMessage(failure.Err))
		}
	}
}
