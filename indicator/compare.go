// Package indicator - the objective comparator.
//
// BetterThan is an explicit named predicate rather than an ordering method
// on Indicators: its two-mode branching and scaling logic must stay visible
// and testable independently of any sort or collection API. The tie-break
// cascades are spelled out field by field, each returning on the first
// discriminating criterion, so the exact order and direction of every
// comparison is auditable.
package indicator

import "github.com/optiroute/optiroute/model"

// BetterThan reports whether solution a ranks strictly better than b.
//
// The relation is a strict weak ordering: BetterThan(a, a) is false, a and b
// are never both better than each other, and transitivity holds across any
// population drawn from one instance (see the package doc for the regime
// discipline). It is a pure function — safe for concurrent and repeated
// invocation with no hidden state.
//
// Mode selection is per comparison: profit mode when either operand has a
// positive priority sum, lexicographic mode otherwise.
//
// Complexity: O(1).
func BetterThan(a, b Indicators) bool {
	if a.PrioritySum > 0 || b.PrioritySum > 0 {
		return betterByProfit(a, b)
	}

	return betterByLex(a, b)
}

// profit returns the profit objective value of x in internal cost units.
//
// model.Input.Validate bounds the instance-wide priority sum so that the
// multiplication below cannot overflow int64; no check is repeated here.
func profit(x Indicators) int64 {
	return x.PrioritySum*model.PriorityScale - x.Eval.Cost
}

// betterByProfit maximizes priority_sum×PriorityScale − cost, then breaks
// ties: more assigned jobs, fewer used vehicles, lower duration, lower
// distance, lower fingerprint.
func betterByProfit(a, b Indicators) bool {
	var pa, pb = profit(a), profit(b)
	if pa != pb {
		return pa > pb
	}
	if a.Assigned != b.Assigned {
		return a.Assigned > b.Assigned
	}
	if a.UsedVehicles != b.UsedVehicles {
		return a.UsedVehicles < b.UsedVehicles
	}
	if a.Eval.Duration != b.Eval.Duration {
		return a.Eval.Duration < b.Eval.Duration
	}
	if a.Eval.Distance != b.Eval.Distance {
		return a.Eval.Distance < b.Eval.Distance
	}

	return a.RoutesHash < b.RoutesHash
}

// betterByLex is the default objective: more assigned jobs, then lower cost,
// fewer used vehicles, lower duration, lower distance, lower fingerprint.
func betterByLex(a, b Indicators) bool {
	if a.Assigned != b.Assigned {
		return a.Assigned > b.Assigned
	}
	if a.Eval.Cost != b.Eval.Cost {
		return a.Eval.Cost < b.Eval.Cost
	}
	if a.UsedVehicles != b.UsedVehicles {
		return a.UsedVehicles < b.UsedVehicles
	}
	if a.Eval.Duration != b.Eval.Duration {
		return a.Eval.Duration < b.Eval.Duration
	}
	if a.Eval.Distance != b.Eval.Distance {
		return a.Eval.Distance < b.Eval.Distance
	}

	return a.RoutesHash < b.RoutesHash
}

// Equivalent reports whether a and b occupy the same equivalence class of
// the ordering, i.e. neither is better than the other.
func Equivalent(a, b Indicators) bool {
	return !BetterThan(a, b) && !BetterThan(b, a)
}
