package domain

// Failure records one file that could not be backed up.
type Failure struct {
	Path string
	Err  error
}

// Report aggregates the outcome of a backup batch. Copies are broken
// down by the source that provided the capture timestamp.
type Report struct {
	Duplicates     int
	CopiedExif     int
	CopiedExifTool int
	CopiedModTime  int
	Renamed        int
	Failures       []Failure
}

// Record accounts for one successfully executed placement.
func (r *Report) Record(p Placement) {
	if p.Action == ActionSkipDuplicate {
		r.Duplicates++
		return
	}
	if p.Action == ActionCopyRenamed {
		r.Renamed++
	}
	switch p.Origin {
	case OriginExif:
		r.CopiedExif++
	case OriginExifTool:
		r.CopiedExifTool++
	case OriginModTime:
		r.CopiedModTime++
	}
}

// RecordFailure accounts for one file that could not be backed up.
func (r *Report) RecordFailure(path string, err error) {
	r.Failures = append(r.Failures, Failure{Path: path, Err: err})
}

// Copied returns the number of files actually written.
func (r *Report) Copied() int {
	return r.CopiedExif + r.CopiedExifTool + r.CopiedModTime
}

// Failed reports whether any file in the batch failed.
func (r *Report) Failed() bool {
	return len(r.Failures) > 0
}
