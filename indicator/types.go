// Package indicator - core value types and the route capability contract.
package indicator

import "github.com/optiroute/optiroute/model"

// Route is the minimal capability a route representation must offer to be
// aggregated. Both construction-phase partial routes and fully optimized
// routes satisfy it; the aggregation never depends on the concrete type.
type Route interface {
	// Jobs returns the ordered job ranks visited by the route.
	// The returned slice must not be mutated by the callee during aggregation.
	Jobs() []int

	// Size returns the number of visited jobs.
	Size() int

	// Empty reports whether the route visits no job.
	Empty() bool
}

// Indicators summarizes one candidate solution for ranking purposes.
//
// The value is immutable by convention: it is constructed once per candidate
// snapshot by Compute, compared, then discarded. It owns all its fields and
// holds no reference back to the instance or routes it was derived from, so
// copying it across worker boundaries needs no synchronization.
type Indicators struct {
	// PrioritySum is the summed priority of all assigned jobs.
	PrioritySum int64

	// Assigned is the count of assigned jobs across all routes.
	Assigned int

	// Eval is the solution-wide (cost, duration, distance) triple.
	Eval model.Eval

	// UsedVehicles is the count of non-empty routes.
	UsedVehicles int

	// RoutesHash is the shape fingerprint of the multiset of route sizes.
	// Deterministic tie-break only; collisions are tolerated.
	RoutesHash uint32
}
