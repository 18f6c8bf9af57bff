package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestRun_ReportsInArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	tri := writeFile(t, dir, "tri.txt", "3\n0 0\n10 0\n5 10\n")
	square := writeFile(t, dir, "square.txt", "4\n0 0\n0 2\n2 0\n2 2\n")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-workers", "2", "-exact", tri, square}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Equal(t, []string{
		tri + " n=3 bb=20 clique=20.00 star=20 mst=25 approx=20 exact=20",
		square + " n=4 bb=4 clique=5.33 star=8 mst=6 approx=6 exact=6",
	}, lines)
}

func TestRun_WithoutExact(t *testing.T) {
	dir := t.TempDir()
	tri := writeFile(t, dir, "tri.txt", "3\n0 0\n10 0\n5 10\n")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{tri}, &stdout, &stderr)
	require.Equal(t, 0, code)
	require.NotContains(t, stdout.String(), "exact=")
}

func TestRun_FailureIsReported(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", "2\n0 0\n3 4\n")
	bad := writeFile(t, dir, "bad.txt", "2\n0 0\n")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{good, bad}, &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Contains(t, stdout.String(), good+" n=2 bb=7")
	require.NotContains(t, stdout.String(), bad)
	require.Contains(t, stderr.String(), "evaluation failed")
}

func TestRun_Usage(t *testing.T) {
	for _, args := range [][]string{{}, {"-workers", "0", "x"}} {
		var stdout, stderr bytes.Buffer
		require.Equal(t, 1, run(context.Background(), args, &stdout, &stderr))
		require.Contains(t, stdout.String(), "Usage:")
	}
}
