// Package indicator - aggregation of a candidate solution into Indicators.
package indicator

import "github.com/optiroute/optiroute/model"

// Compute reduces an ordered collection of routes (one per vehicle slot, in
// vehicle-rank order) to a single Indicators value.
//
// Contracts:
//   - in is validated (model.Input.Validate) and routes[v] is the route of
//     the vehicle at rank v; len(routes) ≤ len(in.Vehicles).
//   - Each job rank appears in at most one route. Double assignment is a
//     precondition violation of the upstream construction logic; it is not
//     detected here.
//
// The cost model is invoked exactly once per route. Empty routes contribute
// nothing to the accumulators but do contribute their zero size to the
// fingerprint.
//
// Complexity: O(R) cost-model calls + O(R log R) for the fingerprint sort,
// where R = len(routes). No error paths.
func Compute[R Route](in *model.Input, routes []R) Indicators {
	var (
		out   Indicators
		sizes = make([]int, len(routes))
		vRank int
	)

	for vRank = range routes {
		r := routes[vRank]
		jobs := r.Jobs()

		out.PrioritySum += model.PrioritySumForRoute(in, jobs)
		out.Assigned += r.Size()
		out.Eval = out.Eval.Add(model.RouteEvalForVehicle(in, vRank, jobs))

		if !r.Empty() {
			out.UsedVehicles++
		}
		sizes[vRank] = r.Size()
	}

	out.RoutesHash = SizesFingerprint(sizes)

	return out
}
