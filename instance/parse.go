package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/rsmt/geometry"
)

// Parse reads an instance from r and returns its terminals in input order.
// Terminal 0 is the first data row.
//
// Complexity: O(size of input).
func Parse(r io.Reader) ([]geometry.Point, error) {
	lines := &lineReader{sc: bufio.NewScanner(r)}

	// 1) Terminal count.
	header, ok := lines.next()
	if !ok {
		if err := lines.err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: input is empty", ErrBadHeader)
	}
	fields := strings.Fields(header)
	if len(fields) != 1 {
		return nil, fmt.Errorf("%w: line %d: %q", ErrBadHeader, lines.lineNo, header)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: line %d: %q", ErrBadHeader, lines.lineNo, header)
	}

	// 2) Exactly n data rows.
	terminals := make([]geometry.Point, 0, n)
	var (
		row string
		p   geometry.Point
	)
	for i := 0; i < n; i++ {
		if row, ok = lines.next(); !ok {
			if err = lines.err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: input contains less than %d data rows", ErrTooFewRows, n)
		}
		if p, err = parseRow(row); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadRow, lines.lineNo, err)
		}
		terminals = append(terminals, p)
	}

	// 3) Nothing but blank lines may follow.
	if _, ok = lines.next(); ok {
		return nil, fmt.Errorf("%w: input contains more than %d data rows", ErrTooManyRows, n)
	}
	if err = lines.err(); err != nil {
		return nil, err
	}

	return terminals, nil
}

// Load opens the file at path and parses it.
func Load(path string) ([]geometry.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrFileUnreadable, path, err)
	}
	defer f.Close()

	return Parse(f)
}

// parseRow splits a data row into exactly two integers.
func parseRow(row string) (geometry.Point, error) {
	fields := strings.Fields(row)
	if len(fields) != 2 {
		return geometry.Point{}, fmt.Errorf("want 2 numbers, got %d", len(fields))
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return geometry.Point{}, fmt.Errorf("x: %w", err)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return geometry.Point{}, fmt.Errorf("y: %w", err)
	}

	return geometry.Point{X: x, Y: y}, nil
}

// lineReader yields non-blank lines and tracks the current line number.
type lineReader struct {
	sc     *bufio.Scanner
	lineNo int
}

func (lr *lineReader) next() (string, bool) {
	for lr.sc.Scan() {
		lr.lineNo++
		if line := lr.sc.Text(); strings.TrimSpace(line) != "" {
			return line, true
		}
	}

	return "", false
}

// err reports a read failure of the underlying reader, if any.
func (lr *lineReader) err() error {
	if err := lr.sc.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrFileUnreadable, err)
	}

	return nil
}
