// Command steiner prints the length of a minimum rectilinear Steiner tree for
// the terminals of one instance file.
//
// Usage:
//
//	steiner [-v] file
//
// Exit status is 0 on success and 1 on a usage error, an unreadable or
// malformed file, or an instance above the terminal cap. Errors are printed
// as "Exception occurred: <message>".
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/rsmt/instance"
	"github.com/katalvlaran/rsmt/steiner"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Calculates the length of a minimum Steiner Tree for the given instance file.")
	fmt.Fprintln(w, "Usage: steiner [-v] file")
}

// run executes the command and returns its exit status.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("steiner", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	verbose := fs.Bool("v", false, "log search statistics to stderr")
	if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
		printUsage(stdout)
		return 1
	}
	path := fs.Arg(0)

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	terminals, err := instance.Load(path)
	if err != nil {
		fmt.Fprintf(stdout, "Exception occurred: %v\n", err)
		return 1
	}
	logger.Debug("instance loaded", slog.String("path", path), slog.Int("terminals", len(terminals)))

	res, err := steiner.Solve(terminals)
	if err != nil {
		fmt.Fprintf(stdout, "Exception occurred: %v\n", err)
		return 1
	}
	logger.Debug("search finished",
		slog.Int("length", res.Length),
		slog.Int("grid_vertices", res.Stats.GridVertices),
		slog.Int("pushed", res.Stats.Pushed),
		slog.Int("closed", res.Stats.Closed),
		slog.Int("decrease_keys", res.Stats.DecreaseKeys),
		slog.Int("merges", res.Stats.Merges),
		slog.Int("merge_probes", res.Stats.MergeProbes),
	)

	fmt.Fprintln(stdout, res.Length)

	return 0
}
