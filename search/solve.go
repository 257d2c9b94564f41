// Package search - multi-start driver with deterministic parallel reduction.
package search

import (
	"runtime"
	"sync"

	"github.com/optiroute/optiroute/indicator"
	"github.com/optiroute/optiroute/model"
)

// restartResult is one restart's candidate, ranked once and stored in the
// slot of its restart index so the reduction order never depends on worker
// scheduling.
type restartResult struct {
	routes []RawRoute
	ind    indicator.Indicators
}

// Solve runs the multi-start search and returns the best solution found.
//
// Contracts:
//   - in must be non-nil; Costs is derived from Durations when absent, then
//     the instance is validated (model sentinels on failure).
//   - opts is validated against the sentinels in types.go.
//
// Determinism: the returned Solution is a pure function of (in, opts.Seed,
// opts.Restarts, opts.TimeLimit==0, opts.EnableLocalSearch, opts.MaxIters).
// Workers only changes how restarts are scheduled, never which candidate
// wins: results are reduced in restart order with indicator.BetterThan, and
// the comparator's fingerprint tie-break leaves no room for races between
// equally good candidates. A non-zero TimeLimit trades this guarantee for
// bounded wall-clock time.
//
// Complexity: Restarts independent pipelines of O(J²·V) construction plus
// local search, spread over min(Workers, Restarts) goroutines.
func Solve(in *model.Input, opts Options) (Solution, error) {
	if in == nil {
		return Solution{}, model.ErrNilInput
	}
	in.DeriveCosts()
	if err := in.Validate(); err != nil {
		return Solution{}, err
	}
	if len(in.Vehicles) == 0 {
		return Solution{}, ErrNoVehicles
	}
	if err := validateOptions(opts); err != nil {
		return Solution{}, err
	}

	var restarts = opts.Restarts
	if restarts == 0 {
		restarts = DefaultRestarts
	}
	var workers = opts.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > restarts {
		workers = restarts
	}

	// Fan restart indices out to workers; each result lands in its own slot,
	// so no synchronization beyond the WaitGroup is needed.
	var (
		results = make([]restartResult, restarts)
		idx     = make(chan int)
		wg      sync.WaitGroup
	)
	wg.Add(workers)
	var w int
	for w = 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for r := range idx {
				results[r] = runRestart(in, opts, r)
			}
		}()
	}
	var r int
	for r = 0; r < restarts; r++ {
		idx <- r
	}
	close(idx)
	wg.Wait()

	// Deterministic reduction: scan in restart order, keep the strictly
	// better candidate. Equivalent candidates keep the lower restart index.
	var best = 0
	for r = 1; r < restarts; r++ {
		if indicator.BetterThan(results[r].ind, results[best].ind) {
			best = r
		}
	}

	return Solution{
		Routes:     results[best].routes,
		Unassigned: unassignedRanks(len(in.Jobs), results[best].routes),
		Indicators: results[best].ind,
	}, nil
}

// runRestart executes one independent restart: order jobs, construct,
// optionally improve, rank.
func runRestart(in *model.Input, opts Options, r int) restartResult {
	// Canonical order for restart 0; independent shuffled streams after.
	order := make([]int, len(in.Jobs))
	var j int
	for j = range order {
		order[j] = j
	}
	if r > 0 {
		shuffleJobs(order, restartRNG(opts.Seed, uint64(r)))
	}

	routes := construct(in, order)
	if opts.EnableLocalSearch {
		improve(in, routes, opts.MaxIters, newBudget(opts.TimeLimit))
	}

	return restartResult{
		routes: routes,
		ind:    indicator.Compute(in, routes),
	}
}

// unassignedRanks returns the job ranks appearing in no route, ascending.
func unassignedRanks(jobs int, routes []RawRoute) []int {
	assigned := make([]bool, jobs)
	var (
		v RawRoute
		r int
	)
	for _, v = range routes {
		for _, r = range v.visits {
			assigned[r] = true
		}
	}

	out := make([]int, 0)
	for r = 0; r < jobs; r++ {
		if !assigned[r] {
			out = append(out, r)
		}
	}

	return out
}
