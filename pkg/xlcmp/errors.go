package xlcmp

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates an input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates an input file is not an Excel workbook.
var ErrInvalidFormat = errors.New("not an Excel workbook")

// ErrSameFile indicates both input paths refer to the same file.
var ErrSameFile = errors.New("cannot compare a file with itself")

// CompareError represents a failure while preparing a workbook for
// comparison. The comparison core itself is total and never fails; errors
// originate only at the loading boundary.
type CompareError struct {
	Path string
	Err  error
}

func (e *CompareError) Error() string {
	return fmt.Sprintf("compare error for %q: %v", e.Path, e.Err)
}

func (e *CompareError) Unwrap() error {
	return e.Err
}
