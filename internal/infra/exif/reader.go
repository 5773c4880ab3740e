package exif

import (
	"context"
	"fmt"
	"os"
	"time"

	goexif "github.com/rwcarlsen/goexif/exif"

	"github.com/picnoir/picobak/internal/domain"
)

// Reader extracts capture dates with the in-process EXIF decoder. It
// only understands JPEG and TIFF containers; anything else falls
// through to the exiftool reader.
type Reader struct{}

const dateLayout = "2006:01:02 15:04:05"

func (Reader) DateTimeOriginal(ctx context.Context, path string) (time.Time, error) {
	select {
	case <-ctx.Done():
		return time.Time{}, ctx.Err()
	default:
	}

	file, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer file.Close()

	x, err := goexif.Decode(file)
	if err != nil {
		return time.Time{}, fmt.Errorf("decode exif: %w", err)
	}

	if tag, err := x.Get(goexif.DateTimeOriginal); err == nil {
		if str, err := tag.StringVal(); err == nil {
			if parsed, err := time.Parse(dateLayout, str); err == nil {
				return parsed, nil
			}
		}
	}

	if parsed, err := x.DateTime(); err == nil {
		return parsed, nil
	}

	return time.Time{}, domain.ErrNoCaptureDate
}
