package steiner

import (
	"fmt"

	"github.com/katalvlaran/rsmt/geometry"
)

// Length returns the length of a minimum rectilinear Steiner tree connecting
// terminals. It is Solve without the statistics.
func Length(terminals []geometry.Point, opts ...Option) (int, error) {
	res, err := Solve(terminals, opts...)
	if err != nil {
		return 0, err
	}

	return res.Length, nil
}

// Solve computes a minimum rectilinear Steiner tree length over terminals and
// reports the work done. Terminal 0 is used as the root.
//
// Preconditions and validation (in order):
//  1. Options must be in range (ErrInvalidOptions).
//  2. len(terminals) ≤ Options.MaxTerminals (ErrTooManyTerminals).
//
// Zero terminals and a single terminal both yield length 0 without searching.
//
// Complexity: see the package documentation.
func Solve(terminals []geometry.Point, opts ...Option) (Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateOptions(cfg); err != nil {
		return Result{}, err
	}

	// 2) Enforce the cap before anything proportional to 2^N is allocated.
	n := len(terminals)
	if n > cfg.MaxTerminals {
		return Result{}, fmt.Errorf("%w: instance has %d, limit is %d", ErrTooManyTerminals, n, cfg.MaxTerminals)
	}

	// 3) Trivial instances need no edges.
	if n <= 1 {
		return Result{}, nil
	}

	// 4) Restrict the search to the Hanan grid and run it.
	grid, err := geometry.NewHananGrid(terminals)
	if err != nil {
		return Result{}, err
	}
	r := newRunner(terminals, grid, cfg)
	r.init()
	length, err := r.process()
	if err != nil {
		return Result{}, err
	}

	return Result{Length: length, Stats: r.stats}, nil
}

// validateOptions checks the cap range and the queue backend.
func validateOptions(cfg Options) error {
	if cfg.MaxTerminals < 1 || cfg.MaxTerminals > MaxSupportedTerminals {
		return fmt.Errorf("%w: MaxTerminals=%d, want 1..%d", ErrInvalidOptions, cfg.MaxTerminals, MaxSupportedTerminals)
	}
	switch cfg.Queue {
	case QueueBTree, QueueHeap, QueueLLRB:
		// ok
	default:
		return fmt.Errorf("%w: unknown queue %d", ErrInvalidOptions, int(cfg.Queue))
	}

	return nil
}
