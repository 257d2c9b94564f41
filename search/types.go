// Package search - options, sentinel errors, and result types.
package search

import (
	"errors"
	"time"

	"github.com/optiroute/optiroute/indicator"
)

// Sentinel errors returned by Solve and its validation stages.
var (
	// ErrNoVehicles indicates an instance without any vehicle slot.
	ErrNoVehicles = errors.New("search: instance has no vehicles")

	// ErrBadRestarts indicates a negative restart count.
	ErrBadRestarts = errors.New("search: Restarts must be non-negative")

	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = errors.New("search: Workers must be non-negative")

	// ErrBadTimeLimit indicates a negative time budget.
	ErrBadTimeLimit = errors.New("search: TimeLimit must be non-negative")

	// ErrBadMaxIters indicates a negative local-search iteration bound.
	ErrBadMaxIters = errors.New("search: MaxIters must be non-negative")
)

// Options configures Solve.
//
// Seed              – base seed for all RNG streams; 0 ⇒ fixed default stream.
// Restarts          – number of independent multi-start restarts; 0 ⇒ default.
// Workers           – goroutines running restarts; 0 ⇒ GOMAXPROCS.
// TimeLimit         – soft wall-clock budget per restart's local search;
//
//	0 ⇒ unlimited. The budget is advisory: construction
//	always completes, so a Solution is always produced.
//
// EnableLocalSearch – run relocate/2-opt improvement after construction.
// MaxIters          – cap on accepted local-search moves per restart;
//
//	0 ⇒ unlimited (until a local optimum).
type Options struct {
	Seed              int64
	Restarts          int
	Workers           int
	TimeLimit         time.Duration
	EnableLocalSearch bool
	MaxIters          int
}

// DefaultRestarts is the restart count used when Options.Restarts is 0.
const DefaultRestarts = 4

// DefaultOptions returns Options with sensible defaults: deterministic seed,
// DefaultRestarts restarts, one worker per CPU, no time limit, local search
// enabled and unbounded.
func DefaultOptions() Options {
	return Options{
		Seed:              0,
		Restarts:          DefaultRestarts,
		Workers:           0,
		TimeLimit:         0,
		EnableLocalSearch: true,
		MaxIters:          0,
	}
}

// validateOptions checks internal consistency of Options.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.Restarts < 0 {
		return ErrBadRestarts
	}
	if opts.Workers < 0 {
		return ErrBadWorkers
	}
	if opts.TimeLimit < 0 {
		return ErrBadTimeLimit
	}
	if opts.MaxIters < 0 {
		return ErrBadMaxIters
	}

	return nil
}

// RawRoute is the concrete construction-phase route: an ordered sequence of
// job ranks plus its accumulated load. It satisfies indicator.Route.
type RawRoute struct {
	visits []int
	load   int64
}

// Jobs returns the ordered job ranks visited by the route. The slice is the
// route's backing storage; callers must treat it as read-only.
func (r RawRoute) Jobs() []int { return r.visits }

// Size returns the number of visited jobs.
func (r RawRoute) Size() int { return len(r.visits) }

// Empty reports whether the route visits no job.
func (r RawRoute) Empty() bool { return len(r.visits) == 0 }

// Load returns the capacity consumed by the route's jobs.
func (r RawRoute) Load() int64 { return r.load }

// compile-time capability check
var _ indicator.Route = RawRoute{}

// Solution is the outcome of Solve: the winning routes (one per vehicle
// slot, in vehicle-rank order), the sorted ranks of unassigned jobs, and the
// indicators the solution was ranked by.
type Solution struct {
	Routes     []RawRoute
	Unassigned []int
	Indicators indicator.Indicators
}
