package exiftool

import (
	"context"
	"fmt"
	"time"

	barasher "github.com/barasher/go-exiftool"

	"github.com/picnoir/picobak/internal/domain"
)

// Reader extracts capture dates by shelling out to the exiftool
// program, which parses far more metadata than the in-process decoder
// (MOV, HEIC, RAW containers). Construction fails when the binary is
// not installed; callers treat the reader as optional in that case.
type Reader struct {
	tool *barasher.Exiftool
}

func NewReader() (*Reader, error) {
	tool, err := barasher.NewExiftool()
	if err != nil {
		return nil, err
	}
	return &Reader{tool: tool}, nil
}

func (r *Reader) Close() error {
	return r.tool.Close()
}

const dateLayout = "2006:01:02 15:04:05"

func (r *Reader) DateTimeOriginal(ctx context.Context, path string) (time.Time, error) {
	select {
	case <-ctx.Done():
		return time.Time{}, ctx.Err()
	default:
	}

	metas := r.tool.ExtractMetadata(path)
	if len(metas) != 1 {
		return time.Time{}, fmt.Errorf("exiftool returned %d entries for %s", len(metas), path)
	}
	meta := metas[0]
	if meta.Err != nil {
		return time.Time{}, meta.Err
	}

	for _, field := range []string{"DateTimeOriginal", "CreateDate"} {
		value, err := meta.GetString(field)
		if err != nil {
			continue
		}
		if parsed, err := time.Parse(dateLayout, value); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, domain.ErrNoCaptureDate
}
