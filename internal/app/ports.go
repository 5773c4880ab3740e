package app

import (
	"context"
	"io/fs"
	"time"
)

// FileSystem is the narrow filesystem surface the backup logic needs.
// Everything except MkdirAll and CopyFile is read-only.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) (bool, error)
	IsDir(path string) (bool, error)
	MkdirAll(path string, perm fs.FileMode) error
	CopyFile(src, dst string) error
	SameContent(a, b string) (bool, error)
	ModTime(path string) (time.Time, error)
}

// ExifReader extracts an embedded capture timestamp from a file.
// Implementations return domain.ErrNoCaptureDate when the file carries
// no usable date field; any other error signals a transport or parse
// failure.
type ExifReader interface {
	DateTimeOriginal(ctx context.Context, path string) (time.Time, error)
}
