package steiner

import (
	"errors"
	"math/bits"
)

// Sentinel errors returned by the Steiner search.
var (
	// ErrTooManyTerminals indicates that the instance has more terminals than
	// the configured cap. The label space is exponential in the terminal count,
	// so the cap is a hard limit.
	ErrTooManyTerminals = errors.New("steiner: too many terminals")

	// ErrInvalidOptions indicates an option value outside its supported range.
	ErrInvalidOptions = errors.New("steiner: invalid options")

	// ErrFrontierExhausted indicates that no label was left to finalize before
	// the root label closed. Every non-empty instance has a finite Steiner
	// tree, so this signals a defect rather than a property of the input.
	ErrFrontierExhausted = errors.New("steiner: frontier exhausted before the tree was complete")
)

const (
	// DefaultMaxTerminals is the instance-size cap used unless WithMaxTerminals is given.
	DefaultMaxTerminals = 20

	// MaxSupportedTerminals is the largest cap the TerminalSet width admits:
	// 24 non-root terminals plus the root.
	MaxSupportedTerminals = terminalSetWidth + 1

	terminalSetWidth = 24
)

// TerminalSet is a bitmask over the non-root terminals 1..N-1; bit i-1 stands
// for terminal i. The root (terminal 0) never appears in a set.
type TerminalSet uint32

// Singleton returns the set holding only terminal i (i ≥ 1).
func Singleton(i int) TerminalSet {
	return TerminalSet(1) << (i - 1)
}

// FullSet returns the set of all non-root terminals of an n-terminal instance.
func FullSet(n int) TerminalSet {
	if n <= 1 {
		return 0
	}

	return TerminalSet(1)<<(n-1) - 1
}

// Has reports whether terminal i belongs to s.
func (s TerminalSet) Has(i int) bool {
	return i >= 1 && s&Singleton(i) != 0
}

// Disjoint reports whether s and o share no terminal.
func (s TerminalSet) Disjoint(o TerminalSet) bool { return s&o == 0 }

// Union returns s ∪ o.
func (s TerminalSet) Union(o TerminalSet) TerminalSet { return s | o }

// Len returns the number of terminals in s.
func (s TerminalSet) Len() int { return bits.OnesCount32(uint32(s)) }

// Queue selects the frontier implementation. All backends support in-place
// decrease-key and return the same length; they differ only in constants.
type Queue int

const (
	// QueueBTree keeps the frontier in a generic B-tree ordered by priority.
	QueueBTree Queue = iota
	// QueueHeap keeps the frontier in an indexed binary heap.
	QueueHeap
	// QueueLLRB keeps the frontier in a left-leaning red-black tree.
	QueueLLRB
)

// String returns the backend name.
func (q Queue) String() string {
	switch q {
	case QueueBTree:
		return "btree"
	case QueueHeap:
		return "heap"
	case QueueLLRB:
		return "llrb"
	default:
		return "unknown"
	}
}

// Options configures the search.
//
// MaxTerminals  – instance-size cap, 1 ≤ MaxTerminals ≤ MaxSupportedTerminals.
// Queue         – frontier backend.
// UseLowerBound – order the frontier by cost + lower bound (true) or by cost alone.
type Options struct {
	MaxTerminals  int
	Queue         Queue
	UseLowerBound bool
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// DefaultOptions returns the cap DefaultMaxTerminals, the B-tree frontier and
// the bounding-box lower bound.
func DefaultOptions() Options {
	return Options{
		MaxTerminals:  DefaultMaxTerminals,
		Queue:         QueueBTree,
		UseLowerBound: true,
	}
}

// WithMaxTerminals sets the instance-size cap. Values outside
// [1, MaxSupportedTerminals] make Solve return ErrInvalidOptions.
func WithMaxTerminals(n int) Option {
	return func(o *Options) {
		o.MaxTerminals = n
	}
}

// WithQueue selects the frontier backend.
func WithQueue(q Queue) Option {
	return func(o *Options) {
		o.Queue = q
	}
}

// WithoutLowerBound disables the lower bound, turning the search into the
// plain Dijkstra-ordered Dreyfus–Wagner recurrence.
func WithoutLowerBound() Option {
	return func(o *Options) {
		o.UseLowerBound = false
	}
}

// Stats counts the work done by one search.
type Stats struct {
	Pushed       int // labels inserted into the frontier
	DecreaseKeys int // in-place cost reductions of frontier labels
	Closed       int // labels finalized
	Merges       int // merge candidates produced from disjoint closed labels
	MergeProbes  int // closed labels inspected while looking for merge partners
	GridVertices int // vertices of the Hanan grid searched
}

// Result holds the outcome of Solve.
type Result struct {
	// Length is the total edge length of a minimum rectilinear Steiner tree.
	Length int

	// Stats describes the search that produced Length (zero for N ≤ 1).
	Stats Stats
}
