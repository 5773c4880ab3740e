package domain

import "time"

// Action is the decision the placement engine makes for one file.
type Action int

const (
	// ActionCopy places the file under its own name.
	ActionCopy Action = iota
	// ActionCopyRenamed places the file under a numbered name because
	// the destination holds a different file with the same name.
	ActionCopyRenamed
	// ActionSkipDuplicate performs no copy: the destination already
	// holds a byte-identical copy.
	ActionSkipDuplicate
)

// Placement is the fully resolved decision for one source file. The
// decision is computed with read-only filesystem access, so dry runs
// and real runs share the exact same trace.
type Placement struct {
	SourcePath  string
	TargetDir   string
	TargetPath  string
	MkdirNeeded bool
	Action      Action
	TakenAt     time.Time
	Origin      DateOrigin
}
