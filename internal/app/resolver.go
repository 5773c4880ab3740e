package app

import (
	"context"
	"errors"
	"time"

	"github.com/picnoir/picobak/internal/domain"
	appErrors "github.com/picnoir/picobak/internal/errors"
	"github.com/picnoir/picobak/internal/logging"
)

// Resolver produces the capture timestamp for a picture file. It tries
// the in-process EXIF decoder first, then the exiftool program (which
// understands many more container formats), and finally falls back to
// the file's modification time.
type Resolver struct {
	FS       FileSystem
	Exif     ExifReader
	ExifTool ExifReader // nil when exiftool is not installed
	Logger   logging.Logger
}

func (r *Resolver) Resolve(ctx context.Context, path string) (time.Time, domain.DateOrigin, error) {
	if r.FS == nil {
		return time.Time{}, 0, errors.New("resolver requires FS")
	}

	if r.Exif != nil {
		takenAt, err := r.Exif.DateTimeOriginal(ctx, path)
		if err == nil {
			return takenAt, domain.OriginExif, nil
		}
		if isCtxErr(err) {
			return time.Time{}, 0, err
		}
		r.Logger.Verbosef("No embedded EXIF date for %s: %v", path, err)
	}

	if r.ExifTool != nil {
		takenAt, err := r.ExifTool.DateTimeOriginal(ctx, path)
		if err == nil {
			return takenAt, domain.OriginExifTool, nil
		}
		if isCtxErr(err) {
			return time.Time{}, 0, err
		}
		r.Logger.Verbosef("exiftool found no date for %s: %v", path, err)
	}

	modTime, err := r.FS.ModTime(path)
	if err != nil {
		return time.Time{}, 0, appErrors.Wrap(appErrors.MetadataUnavailable, "stat", path, err)
	}
	return modTime, domain.OriginModTime, nil
}

func isCtxErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
