// Package model - the cost model consumed by the indicator aggregation.
//
// Two pure functions reduce a route (an ordered slice of job ranks) to the
// quantities the ranking core aggregates. Both are called exactly once per
// route per aggregation, so they stay allocation-free and single-pass.
//
// Contracts (enforced by Input.Validate, not re-checked here):
//   - in is validated; matrices are square, non-negative, equal order.
//   - jobs contains valid ranks into in.Jobs; vehicleRank indexes in.Vehicles.
package model

// PrioritySumForRoute returns the sum of priorities of the jobs visited by
// the route. An empty route contributes zero.
//
// Complexity: O(len(jobs)), no allocations.
func PrioritySumForRoute(in *Input, jobs []int) int64 {
	var (
		sum int64
		r   int
	)
	for _, r = range jobs {
		sum += int64(in.Jobs[r].Priority)
	}

	return sum
}

// RouteEvalForVehicle returns the Eval (cost, duration, distance) incurred by
// assigning the route to the vehicle at vehicleRank, including that vehicle's
// fixed cost. An empty route costs nothing: the vehicle is simply unused.
//
// The traversal is start → jobs… → end, skipping the start (resp. end) arc
// when the vehicle has an open start (resp. end). Per-job service times are
// charged to the duration component.
//
// Complexity: O(len(jobs)), no allocations.
func RouteEvalForVehicle(in *Input, vehicleRank int, jobs []int) Eval {
	if len(jobs) == 0 {
		return Eval{}
	}

	var (
		v    = in.Vehicles[vehicleRank]
		e    = Eval{Cost: v.FixedCost}
		prev = v.Start
		r    int
		loc  int
	)

	for _, r = range jobs {
		loc = in.Jobs[r].Location
		if prev != OpenEnd {
			e.Cost += in.Costs.At(prev, loc)
			e.Duration += in.Durations.At(prev, loc)
			e.Distance += in.Distances.At(prev, loc)
		}
		e.Duration += in.Jobs[r].Service
		prev = loc
	}

	if v.End != OpenEnd {
		e.Cost += in.Costs.At(prev, v.End)
		e.Duration += in.Durations.At(prev, v.End)
		e.Distance += in.Distances.At(prev, v.End)
	}

	return e
}
