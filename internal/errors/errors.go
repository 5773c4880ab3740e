package errors

import (
	"errors"
	"fmt"
)

type Kind string

const (
	InvalidConfig         Kind = "invalid_config"
	InvalidBackupRoot     Kind = "invalid_backup_root"
	SourceUnreadable      Kind = "source_unreadable"
	MetadataUnavailable   Kind = "metadata_unavailable"
	DestinationUnwritable Kind = "destination_unwritable"
	Internal              Kind = "internal"
)

type AppError struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *AppError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Wrap(kind Kind, op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Kind: kind,
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// KindOf returns the Kind of the nearest AppError in err's chain, or
// Internal when there is none.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return Internal
}

func UserMessage(err error) string {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return err.Error()
	}
	switch appErr.Kind {
	case InvalidConfig:
		return fmt.Sprintf("Invalid configuration: %v", appErr.Err)
	case InvalidBackupRoot:
		return fmt.Sprintf("Invalid backup root %s: %v", appErr.Path, appErr.Err)
	case SourceUnreadable:
		return fmt.Sprintf("Cannot read source file %s: %v", appErr.Path, appErr.Err)
	case MetadataUnavailable:
		return fmt.Sprintf("Cannot determine capture date of %s: %v", appErr.Path, appErr.Err)
	case DestinationUnwritable:
		return fmt.Sprintf("Cannot write %s: %v", appErr.Path, appErr.Err)
	default:
		return fmt.Sprintf("Unexpected error: %v", appErr.Err)
	}
}
