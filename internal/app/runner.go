package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/picnoir/picobak/internal/domain"
	appErrors "github.com/picnoir/picobak/internal/errors"
	"github.com/picnoir/picobak/internal/logging"
)

// ProgressFunc is called after each file to report batch progress.
type ProgressFunc func(current, total int, file string)

// DecisionFunc is called with every placement decision, in both dry
// and real runs, so the dry-run trace matches what a real run does.
type DecisionFunc func(domain.Placement)

// Runner backs up a batch of files sequentially. One bad file does not
// abort the batch; its failure is recorded and processing continues.
type Runner struct {
	FS         FileSystem
	Resolver   *Resolver
	Placer     *Placer
	Logger     logging.Logger
	DryRun     bool
	OnDecision DecisionFunc
	OnProgress ProgressFunc
}

func (r *Runner) Run(ctx context.Context, backupRoot string, paths []string) domain.Report {
	stop := r.Logger.Measure("Backing up files")
	defer stop()

	var report domain.Report
	total := len(paths)
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			report.RecordFailure(path, err)
			break
		}
		if err := r.backupOne(ctx, backupRoot, path, &report); err != nil {
			r.Logger.Verbosef("Failed to back up %s: %v", path, err)
			report.RecordFailure(path, err)
		}
		if r.OnProgress != nil {
			r.OnProgress(i+1, total, path)
		}
	}
	return report
}

func (r *Runner) backupOne(ctx context.Context, backupRoot, path string, report *domain.Report) error {
	info, err := r.FS.Stat(path)
	if err != nil {
		return appErrors.Wrap(appErrors.SourceUnreadable, "stat", path, err)
	}
	if info.IsDir() {
		return appErrors.Wrap(appErrors.SourceUnreadable, "stat", path, errors.New("is a directory"))
	}

	takenAt, origin, err := r.Resolver.Resolve(ctx, path)
	if err != nil {
		return err
	}
	r.Logger.Verbosef("Resolved %s to %s via %s", path, takenAt.Format("2006-01-02"), origin)

	placement, err := r.Placer.Decide(path, backupRoot, takenAt, origin)
	if err != nil {
		return err
	}
	if r.OnDecision != nil {
		r.OnDecision(placement)
	}

	if !r.DryRun {
		if err := r.Placer.Apply(placement); err != nil {
			return err
		}
	}
	report.Record(placement)
	return nil
}

// Summary is the error returned when a batch finished with failures,
// so the process can exit non-zero while still reporting every file.
func Summary(report domain.Report) error {
	if !report.Failed() {
		return nil
	}
	return fmt.Errorf("%d file(s) failed to back up", len(report.Failures))
}
