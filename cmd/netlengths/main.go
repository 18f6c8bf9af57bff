// Command netlengths prints the quick net-length estimates (bounding box,
// clique, star, minimum spanning tree and greedy Steiner approximation) for
// one or more instance files, optionally next to the exact Steiner length.
//
// Usage:
//
//	netlengths [-workers n] [-exact] file...
//
// Files are evaluated concurrently; results are printed in argument order.
// Exit status is 1 if any file failed.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"sync"

	"github.com/alphadose/haxmap"
	"github.com/katalvlaran/rsmt/instance"
	"github.com/katalvlaran/rsmt/netlength"
	"github.com/katalvlaran/rsmt/steiner"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Prints net-length estimates for the given instance files.")
	fmt.Fprintln(w, "Usage: netlengths [-workers n] [-exact] file...")
}

// task is one file to evaluate; index is its position on the command line.
type task struct {
	index int
	path  string
}

// outcome is the evaluation of one file.
type outcome struct {
	report netlength.Report
	exact  int
	solved bool // exact was computed
	err    error
}

// run executes the command and returns its exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("netlengths", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	workers := fs.Int("workers", runtime.NumCPU(), "number of files evaluated concurrently")
	exact := fs.Bool("exact", false, "also compute the exact Steiner length when the instance fits the cap")
	if err := fs.Parse(args); err != nil || fs.NArg() == 0 || *workers < 1 {
		printUsage(stdout)
		return 1
	}
	logger := slog.New(slog.NewTextHandler(stderr, nil))
	paths := fs.Args()

	results := evaluate(ctx, paths, *workers, *exact)

	code := 0
	for i, path := range paths {
		res, ok := results.Get(i)
		if !ok {
			logger.Error("evaluation cancelled", slog.String("path", path))
			code = 1
			continue
		}
		if res.err != nil {
			logger.Error("evaluation failed", slog.String("path", path), slog.Any("error", res.err))
			code = 1
			continue
		}
		if res.solved {
			fmt.Fprintf(stdout, "%s %s exact=%d\n", path, res.report, res.exact)
		} else {
			fmt.Fprintf(stdout, "%s %s\n", path, res.report)
		}
	}

	return code
}

// evaluate fans the files out to a fixed pool of workers. Each worker loads
// and estimates its files independently; results land in a concurrent map
// keyed by argument position.
func evaluate(ctx context.Context, paths []string, workers int, exact bool) *haxmap.Map[int, outcome] {
	results := haxmap.New[int, outcome](uintptr(len(paths)))
	tasks := make(chan task)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tasks {
				results.Set(t.index, evaluateFile(t.path, exact))
			}
		}()
	}

feed:
	for i, path := range paths {
		select {
		case <-ctx.Done():
			break feed
		case tasks <- task{index: i, path: path}:
		}
	}
	close(tasks)
	wg.Wait()

	return results
}

// evaluateFile loads one instance and runs every estimator on it.
func evaluateFile(path string, exact bool) outcome {
	terminals, err := instance.Load(path)
	if err != nil {
		return outcome{err: err}
	}

	out := outcome{report: netlength.Estimate(terminals)}
	if exact && len(terminals) <= steiner.DefaultMaxTerminals {
		if out.exact, err = steiner.Length(terminals); err != nil {
			return outcome{err: err}
		}
		out.solved = true
	}

	return out
}
