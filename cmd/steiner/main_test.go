package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeInstance(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "instance.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func runCmd(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestRun_Success(t *testing.T) {
	path := writeInstance(t, "4\n0 0\n0 2\n2 0\n2 2\n")
	code, out, errOut := runCmd(path)
	require.Equal(t, 0, code)
	require.Equal(t, "6\n", out)
	require.Empty(t, errOut)
}

func TestRun_Verbose(t *testing.T) {
	path := writeInstance(t, "3\n0 0\n10 0\n5 10\n")
	code, out, errOut := runCmd("-v", path)
	require.Equal(t, 0, code)
	require.Equal(t, "20\n", out)
	require.Contains(t, errOut, "search finished")
	require.Contains(t, errOut, "length=20")
}

func TestRun_Usage(t *testing.T) {
	for _, args := range [][]string{{}, {"a", "b"}, {"-unknown", "a"}} {
		code, out, _ := runCmd(args...)
		require.Equal(t, 1, code, "args %q", args)
		require.Contains(t, out, "Usage:")
	}
}

func TestRun_MalformedInput(t *testing.T) {
	path := writeInstance(t, "3\n0 0\n1 1\n")
	code, out, _ := runCmd(path)
	require.Equal(t, 1, code)
	require.True(t, strings.HasPrefix(out, "Exception occurred: "), out)
	require.Contains(t, out, "less than 3 data rows")
}

func TestRun_MissingFile(t *testing.T) {
	code, out, _ := runCmd(filepath.Join(t.TempDir(), "nope.txt"))
	require.Equal(t, 1, code)
	require.Contains(t, out, "Exception occurred: instance: cannot open file")
}

func TestRun_TooManyTerminals(t *testing.T) {
	var b strings.Builder
	fmt.Fprintln(&b, 21)
	for i := 0; i < 21; i++ {
		fmt.Fprintf(&b, "%d %d\n", i, i%4)
	}
	code, out, _ := runCmd(writeInstance(t, b.String()))
	require.Equal(t, 1, code)
	require.Contains(t, out, "Exception occurred: steiner: too many terminals")
}
