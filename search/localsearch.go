// Package search - first-improvement local search.
//
// Two neighborhoods refine a constructed solution:
//
//   - Relocate: move one job from its route to the cheapest position of
//     another capacity-feasible route.
//     Δ = removalDelta(a, i) + insertionDelta(b, pos), accepted when Δ < 0.
//
//   - Intra-route 2-opt: reverse a segment [i..k] of one route. Matrices may
//     be asymmetric, so the delta is measured by re-evaluating the full
//     route cost rather than by a symmetric closed form.
//
// Design:
//   - Deterministic scanning order; no RNG in the improvement phase.
//   - First improvement: restart the scan after every accepted move.
//   - Costs are integers; acceptance means a strictly negative delta, so no
//     epsilon tolerance is needed and termination is guaranteed.
//   - Soft wall-clock budget checked sparsely (every 1024 probes) to keep
//     hot loops tight; exceeding it stops improvement, never fails the run.
package search

import (
	"slices"
	"time"

	"github.com/optiroute/optiroute/model"
)

// budgetMask throttles deadline checks to one per 1024 probes.
const budgetMask = 1023

// budget is a soft wall-clock limit for one restart's improvement phase.
type budget struct {
	use      bool
	deadline time.Time
	step     int
}

func newBudget(limit time.Duration) *budget {
	if limit <= 0 {
		return &budget{}
	}

	return &budget{use: true, deadline: time.Now().Add(limit)}
}

// exceeded reports whether the budget ran out. Cheap enough for hot loops:
// the clock is consulted once per 1024 calls.
func (b *budget) exceeded() bool {
	b.step++
	if !b.use || (b.step&budgetMask) != 0 {
		return false
	}

	return time.Now().After(b.deadline)
}

// routeCost returns the cost component of the route's evaluation.
//
// Complexity: O(n) for a route of n visits.
func routeCost(in *model.Input, vRank int, visits []int) model.Cost {
	return model.RouteEvalForVehicle(in, vRank, visits).Cost
}

// improve runs relocate + intra-route 2-opt to a local optimum (or until the
// accepted-move cap / time budget is hit). Routes are modified in place.
//
// Complexity: O(iter·(V²·n² + V·n³)) worst case; each accepted move strictly
// decreases the integral solution cost, so iteration terminates.
func improve(in *model.Input, routes []RawRoute, maxIters int, b *budget) {
	var accepted int
	for {
		if maxIters > 0 && accepted >= maxIters {
			return
		}
		if b.exceeded() {
			return
		}
		if relocateOnce(in, routes, b) {
			accepted++
			continue
		}
		if twoOptOnce(in, routes, b) {
			accepted++
			continue
		}

		return
	}
}

// relocateOnce scans for the first strictly improving relocate move and
// applies it. Returns whether a move was accepted.
func relocateOnce(in *model.Input, routes []RawRoute, b *budget) bool {
	var (
		a, i     int
		bb, pos  int
		jobRank  int
		amount   int64
		remDelta model.Cost
		delta    model.Cost
	)
	for a = range routes {
		for i = 0; i < routes[a].Size(); i++ {
			jobRank = routes[a].visits[i]
			amount = in.Jobs[jobRank].Amount
			remDelta = removalDelta(in, a, routes[a], i)

			for bb = range routes {
				if bb == a {
					continue
				}
				if routes[bb].load+amount > in.Vehicles[bb].Capacity {
					continue
				}
				for pos = 0; pos <= routes[bb].Size(); pos++ {
					if b.exceeded() {
						return false
					}
					delta = remDelta + insertionDelta(in, bb, routes[bb], pos, jobRank)
					if delta < 0 {
						applyRelocate(routes, a, i, bb, pos, amount)

						return true
					}
				}
			}
		}
	}

	return false
}

// applyRelocate moves the job at position i of route a to position pos of
// route b, keeping both loads consistent.
func applyRelocate(routes []RawRoute, a, i, b, pos int, amount int64) {
	jobRank := routes[a].visits[i]
	routes[a].visits = slices.Delete(routes[a].visits, i, i+1)
	routes[a].load -= amount
	routes[b].visits = slices.Insert(routes[b].visits, pos, jobRank)
	routes[b].load += amount
}

// twoOptOnce scans every route for the first strictly improving segment
// reversal and applies it. Returns whether a move was accepted.
func twoOptOnce(in *model.Input, routes []RawRoute, b *budget) bool {
	var (
		vRank   int
		i, k, t int
		n       int
		base    model.Cost
		scratch []int
	)
	for vRank = range routes {
		n = routes[vRank].Size()
		if n < 3 {
			continue
		}
		base = routeCost(in, vRank, routes[vRank].visits)
		scratch = slices.Grow(scratch[:0], n)[:n]

		for i = 0; i < n-1; i++ {
			for k = i + 1; k < n; k++ {
				if b.exceeded() {
					return false
				}

				// Candidate: visits with [i..k] reversed, built in scratch.
				copy(scratch, routes[vRank].visits)
				for t = 0; t <= k-i; t++ {
					scratch[i+t] = routes[vRank].visits[k-t]
				}

				if routeCost(in, vRank, scratch) < base {
					copy(routes[vRank].visits, scratch)

					return true
				}
			}
		}
	}

	return false
}
