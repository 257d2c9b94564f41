// Package search - greedy best-insertion construction.
//
// Construction walks the job order and inserts each job at the cheapest
// capacity-feasible position across all vehicle slots. Scanning vehicles in
// rank order and positions left to right, with strict-improvement selection,
// makes the result a pure function of the instance and the job order: ties
// resolve to the lower vehicle rank, then the lower position.
package search

import (
	"slices"

	"github.com/optiroute/optiroute/model"
)

// arcCost returns the internal cost of the arc from → to, or 0 when either
// side is an open route end.
func arcCost(in *model.Input, from, to int) model.Cost {
	if from == model.OpenEnd || to == model.OpenEnd {
		return 0
	}

	return in.Costs.At(from, to)
}

// locationAt returns the location visited at position pos of the route, the
// vehicle start for pos == -1, and the vehicle end for pos == Size().
func locationAt(in *model.Input, vRank int, r RawRoute, pos int) int {
	switch {
	case pos < 0:
		return in.Vehicles[vRank].Start
	case pos >= len(r.visits):
		return in.Vehicles[vRank].End
	default:
		return in.Jobs[r.visits[pos]].Location
	}
}

// insertionDelta returns the cost increase of inserting jobRank before
// position pos of the route (pos == Size() appends), including the vehicle
// fixed cost when the route is currently empty.
//
// Contract: 0 ≤ pos ≤ r.Size(); capacity feasibility is the caller's duty.
//
// Complexity: O(1).
func insertionDelta(in *model.Input, vRank int, r RawRoute, pos, jobRank int) model.Cost {
	var (
		loc   = in.Jobs[jobRank].Location
		prev  = locationAt(in, vRank, r, pos-1)
		next  = locationAt(in, vRank, r, pos)
		delta = arcCost(in, prev, loc) + arcCost(in, loc, next) - arcCost(in, prev, next)
	)
	if r.Empty() {
		delta += in.Vehicles[vRank].FixedCost
	}

	return delta
}

// removalDelta returns the cost change of removing the job at position pos
// from the route (usually negative), including the fixed cost freed when the
// route becomes empty.
//
// Complexity: O(1).
func removalDelta(in *model.Input, vRank int, r RawRoute, pos int) model.Cost {
	var (
		loc   = in.Jobs[r.visits[pos]].Location
		prev  = locationAt(in, vRank, r, pos-1)
		next  = locationAt(in, vRank, r, pos+1)
		delta = arcCost(in, prev, next) - arcCost(in, prev, loc) - arcCost(in, loc, next)
	)
	if r.Size() == 1 {
		delta -= in.Vehicles[vRank].FixedCost
	}

	return delta
}

// construct builds one route per vehicle slot by greedy best insertion over
// the given job order. Jobs with no capacity-feasible position stay
// unassigned (they simply appear in no route).
//
// Complexity: O(J²·V) arc evaluations for J jobs and V vehicles.
func construct(in *model.Input, order []int) []RawRoute {
	routes := make([]RawRoute, len(in.Vehicles))

	var (
		jobRank   int
		amount    int64
		vRank     int
		pos       int
		delta     model.Cost
		bestV     int
		bestPos   int
		bestDelta model.Cost
	)
	for _, jobRank = range order {
		amount = in.Jobs[jobRank].Amount
		bestV = -1

		for vRank = range routes {
			if routes[vRank].load+amount > in.Vehicles[vRank].Capacity {
				continue
			}
			for pos = 0; pos <= routes[vRank].Size(); pos++ {
				delta = insertionDelta(in, vRank, routes[vRank], pos, jobRank)
				if bestV < 0 || delta < bestDelta {
					bestV, bestPos, bestDelta = vRank, pos, delta
				}
			}
		}

		if bestV >= 0 {
			routes[bestV].visits = slices.Insert(routes[bestV].visits, bestPos, jobRank)
			routes[bestV].load += amount
		}
	}

	return routes
}
