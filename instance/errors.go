package instance

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput is the common cause of every format violation.
	ErrMalformedInput = errors.New("instance: malformed input")
	// ErrBadHeader indicates a missing or invalid terminal count line.
	ErrBadHeader = fmt.Errorf("%w: invalid terminal count", ErrMalformedInput)
	// ErrTooFewRows indicates fewer data rows than the declared count.
	ErrTooFewRows = fmt.Errorf("%w: missing data rows", ErrMalformedInput)
	// ErrTooManyRows indicates more data rows than the declared count.
	ErrTooManyRows = fmt.Errorf("%w: extra data rows", ErrMalformedInput)
	// ErrBadRow indicates a data row that is not exactly two integers.
	ErrBadRow = fmt.Errorf("%w: invalid data row", ErrMalformedInput)

	// ErrFileNotFound indicates that the instance file does not exist.
	ErrFileNotFound = errors.New("instance: cannot open file")
	// ErrFileUnreadable indicates that the instance could not be read.
	ErrFileUnreadable = errors.New("instance: cannot read input")
)
