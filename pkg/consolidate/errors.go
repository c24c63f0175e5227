package consolidate

import (
	"errors"
	"fmt"
)

// ErrMissingSourceDirectory is matched by errors.Is for every MissingSourceDirectoryError.
var ErrMissingSourceDirectory = errors.New("source directory not found")

// ErrNotRegular is reported inline for entries that cannot be read as plain files.
var ErrNotRegular = errors.New("not a regular file")

// MissingSourceDirectoryError is returned before any output is written when
// the source path is absent or is not a directory.
type MissingSourceDirectoryError struct {
	Dir string
	Err error // Underlying stat error, nil when the path exists but is not a directory.
}

// Error returns the user-facing message printed by the CLI.
func (e *MissingSourceDirectoryError) Error() string {
	return fmt.Sprintf("Directory '%s' not found.", e.Dir)
}

func (e *MissingSourceDirectoryError) Is(target error) bool {
	return target == ErrMissingSourceDirectory
}

func (e *MissingSourceDirectoryError) Unwrap() error {
	return e.Err
}

// InvalidEncodingError reports content that is not valid UTF-8.
type InvalidEncodingError struct {
	Offset int  // Byte offset of the first invalid sequence.
	Byte   byte // First byte of that sequence.
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("invalid UTF-8 byte 0x%02x at offset %d", e.Byte, e.Offset)
}
