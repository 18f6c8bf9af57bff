package instance_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/rsmt/geometry"
	"github.com/katalvlaran/rsmt/instance"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	in := "4\n0 0\n0 2\n2 0\n2 2\n"
	got, err := instance.Parse(strings.NewReader(in))
	require.NoError(t, err)
	want := []geometry.Point{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 0}, {X: 2, Y: 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_WhitespaceTolerance(t *testing.T) {
	in := "\n  3  \n\n -5\t7\n10   0\r\n\n5 10\n\n\n"
	got, err := instance.Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []geometry.Point{{X: -5, Y: 7}, {X: 10, Y: 0}, {X: 5, Y: 10}}, got)
}

func TestParse_ZeroTerminals(t *testing.T) {
	got, err := instance.Parse(strings.NewReader("0\n"))
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty input", "", instance.ErrBadHeader},
		{"header not a number", "three\n", instance.ErrBadHeader},
		{"header negative", "-1\n", instance.ErrBadHeader},
		{"header with extra field", "2 5\n0 0\n1 1\n", instance.ErrBadHeader},
		{"fewer rows", "3\n0 0\n1 1\n", instance.ErrTooFewRows},
		{"more rows", "2\n0 0\n1 1\n2 2\n", instance.ErrTooManyRows},
		{"three numbers", "2\n0 0 0\n1 1\n", instance.ErrBadRow},
		{"one number", "2\n0\n1 1\n", instance.ErrBadRow},
		{"not an integer", "2\n0 0\n1 1.5\n", instance.ErrBadRow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := instance.Parse(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, instance.ErrMalformedInput)
		})
	}
}

func TestParse_ErrorsAreDistinct(t *testing.T) {
	_, fewer := instance.Parse(strings.NewReader("3\n0 0\n1 1\n"))
	_, more := instance.Parse(strings.NewReader("1\n0 0\n1 1\n"))
	_, bad := instance.Parse(strings.NewReader("1\n0 0 1\n"))
	require.False(t, errors.Is(fewer, instance.ErrTooManyRows))
	require.False(t, errors.Is(more, instance.ErrTooFewRows))
	require.False(t, errors.Is(bad, instance.ErrTooFewRows))
	require.Contains(t, fewer.Error(), "less than 3 data rows")
	require.Contains(t, more.Error(), "more than 1 data rows")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestParse_ReaderFailure(t *testing.T) {
	_, err := instance.Parse(failingReader{})
	require.ErrorIs(t, err, instance.ErrFileUnreadable)
	require.False(t, errors.Is(err, instance.ErrMalformedInput))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "triangle.txt")
	require.NoError(t, os.WriteFile(path, []byte("3\n0 0\n10 0\n5 10\n"), 0o600))

	got, err := instance.Load(path)
	require.NoError(t, err)
	require.Equal(t, []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}}, got)

	_, err = instance.Load(filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, instance.ErrFileNotFound)
	require.Contains(t, err.Error(), "missing.txt")

	// A directory opens but cannot be read as an instance.
	_, err = instance.Load(dir)
	require.Error(t, err)
	require.False(t, errors.Is(err, instance.ErrFileNotFound))
}
