package dataset

import (
	"errors"
	"fmt"
)

// ErrFileNotFound is matched by errors.Is for any missing input file.
var ErrFileNotFound = errors.New("input file not found")

// NotFoundError carries the path that could not be opened.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrFileNotFound, e.Path)
}

// Unwrap lets callers test with errors.Is(err, ErrFileNotFound).
func (e *NotFoundError) Unwrap() error { return ErrFileNotFound }
