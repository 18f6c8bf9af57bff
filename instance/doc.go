// Package instance reads Steiner tree instances from text.
//
// Format:
//
//	N
//	x1 y1
//	x2 y2
//	...
//	xN yN
//
// The first non-blank line holds the terminal count N. Exactly N non-blank
// data rows follow, each with exactly two integers separated by white space.
// Blank lines are ignored anywhere.
//
// Errors (sentinel, all matching ErrMalformedInput through errors.Is unless
// noted):
//
//   - ErrBadHeader:      the count line is missing or not one non-negative integer.
//   - ErrTooFewRows:     fewer than N data rows.
//   - ErrTooManyRows:    more than N data rows.
//   - ErrBadRow:         a data row without exactly two integers.
//   - ErrFileNotFound:   Load was given a path that does not exist (not malformed).
//   - ErrFileUnreadable: the file or reader failed for another reason (not malformed).
package instance
