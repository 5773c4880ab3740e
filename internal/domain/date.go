package domain

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// ErrNoCaptureDate is returned by metadata readers when a file carries
// no usable capture-date field. It is distinct from transport or parse
// failures so callers can tell "not found" apart from "broken".
var ErrNoCaptureDate = errors.New("no capture date in metadata")

// DateOrigin records which source a capture timestamp came from.
type DateOrigin int

const (
	OriginExif DateOrigin = iota
	OriginExifTool
	OriginModTime
)

func (o DateOrigin) String() string {
	switch o {
	case OriginExif:
		return "EXIF metadata"
	case OriginExifTool:
		return "the exiftool program"
	case OriginModTime:
		return "filesystem metadata"
	default:
		return "unknown"
	}
}

// DatePath returns the backup directory for a capture timestamp:
// root/YYYY/MM/DD with zero-padded month and day.
func DatePath(root string, takenAt time.Time) string {
	return filepath.Join(root,
		fmt.Sprintf("%04d", takenAt.Year()),
		fmt.Sprintf("%02d", int(takenAt.Month())),
		fmt.Sprintf("%02d", takenAt.Day()),
	)
}

// NumberedName inserts a numeric suffix before the extension, so that
// colliding files can be stored side by side: ("pic.jpg", 2) -> "pic-2.jpg".
func NumberedName(name string, n int) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return fmt.Sprintf("%s-%d%s", base, n, ext)
}
