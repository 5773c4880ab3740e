package app

import (
	"path/filepath"
	"time"

	"github.com/picnoir/picobak/internal/domain"
	appErrors "github.com/picnoir/picobak/internal/errors"
)

// Placer turns a resolved capture timestamp into a placement decision
// and executes it. Decide is read-only; Apply is the only place that
// mutates the filesystem.
type Placer struct {
	FS FileSystem
}

// Decide computes where sourcePath belongs under backupRoot. When the
// candidate name is taken by a byte-identical file the placement is a
// duplicate skip; when taken by different content, numbered names are
// tried until a free one is found, so existing files are never
// overwritten.
func (p *Placer) Decide(sourcePath, backupRoot string, takenAt time.Time, origin domain.DateOrigin) (domain.Placement, error) {
	targetDir := domain.DatePath(backupRoot, takenAt)

	dirExists, err := p.FS.Exists(targetDir)
	if err != nil {
		return domain.Placement{}, appErrors.Wrap(appErrors.DestinationUnwritable, "stat", targetDir, err)
	}

	name := filepath.Base(sourcePath)
	candidate := filepath.Join(targetDir, name)
	action := domain.ActionCopy

	for n := 1; ; n++ {
		exists, err := p.FS.Exists(candidate)
		if err != nil {
			return domain.Placement{}, appErrors.Wrap(appErrors.DestinationUnwritable, "stat", candidate, err)
		}
		if !exists {
			break
		}
		same, err := p.FS.SameContent(sourcePath, candidate)
		if err != nil {
			return domain.Placement{}, appErrors.Wrap(appErrors.SourceUnreadable, "compare", sourcePath, err)
		}
		if same {
			action = domain.ActionSkipDuplicate
			break
		}
		candidate = filepath.Join(targetDir, domain.NumberedName(name, n))
		action = domain.ActionCopyRenamed
	}

	return domain.Placement{
		SourcePath:  sourcePath,
		TargetDir:   targetDir,
		TargetPath:  candidate,
		MkdirNeeded: !dirExists,
		Action:      action,
		TakenAt:     takenAt,
		Origin:      origin,
	}, nil
}

// Apply executes a placement. Duplicate skips are no-ops. The source
// file is only ever read, never modified or deleted.
func (p *Placer) Apply(pl domain.Placement) error {
	if pl.Action == domain.ActionSkipDuplicate {
		return nil
	}
	if err := p.FS.MkdirAll(pl.TargetDir, 0o755); err != nil {
		return appErrors.Wrap(appErrors.DestinationUnwritable, "mkdir", pl.TargetDir, err)
	}
	if err := p.FS.CopyFile(pl.SourcePath, pl.TargetPath); err != nil {
		return appErrors.Wrap(appErrors.DestinationUnwritable, "copy", pl.TargetPath, err)
	}
	return nil
}
