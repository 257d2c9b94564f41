// Package model - problem instance and validation.
//
// Validate is the single gate that turns raw data into an instance the rest
// of the solver may trust blindly: the ranking core and the search heuristics
// perform no bounds or sign checks of their own. Every precondition listed
// here is therefore load-bearing.
package model

// OpenEnd marks a vehicle with no fixed start or end location.
const OpenEnd = -1

// Job is a single service request at a location.
type Job struct {
	// ID is a caller-chosen identifier; the solver treats it as opaque.
	ID uint64

	// Location is the index of the job's location in the travel matrices.
	Location int

	// Priority weights the job in the profit objective; 0 means "no
	// priority", and an instance whose jobs are all zero-priority is ranked
	// lexicographically instead.
	Priority Priority

	// Amount is the capacity consumed by the job (single dimension).
	Amount int64

	// Service is the on-site service time in seconds.
	Service Duration
}

// Vehicle is one vehicle slot. The slice order of Input.Vehicles defines the
// vehicle rank used throughout the solver.
type Vehicle struct {
	// Start and End are location indices, or OpenEnd for an open route end.
	Start int
	End   int

	// Capacity bounds the sum of assigned job amounts.
	Capacity int64

	// FixedCost is charged once when the vehicle serves at least one job,
	// in internal cost units.
	FixedCost Cost
}

// Input is an immutable routing problem instance. Construct it, call
// Validate once, then share it freely across goroutines; nothing in this
// library mutates a validated Input.
type Input struct {
	Jobs     []Job
	Vehicles []Vehicle

	// Durations and Distances are required square matrices over locations.
	Durations *Matrix
	Distances *Matrix

	// Costs is the internal-unit cost matrix. Leave nil to derive it from
	// Durations via DeriveCosts (the common case).
	Costs *Matrix
}

// DeriveCosts fills in.Costs from in.Durations when no custom cost matrix
// was provided: cost[i][j] = durations[i][j] * DurationFactor.
// A no-op when Costs is already set.
//
// Complexity: O(n²).
func (in *Input) DeriveCosts() {
	if in.Costs != nil || in.Durations == nil {
		return
	}
	in.Costs = in.Durations.Scale(DurationFactor)
}

// Validate checks the instance against every precondition the solver
// assumes downstream:
//
//  1. Durations, Distances and Costs are non-nil, square, and of equal order.
//  2. All matrix entries are non-negative.
//  3. Every job location and every non-open vehicle start/end is in range.
//  4. Job priorities lie in [0, MaxPriority]; amounts and service times are
//     non-negative; vehicle capacities and fixed costs are non-negative.
//  5. The instance-wide priority sum, scaled by PriorityScale, stays within
//     profit headroom so the profit objective cannot overflow int64.
//
// Returns the first violated sentinel; nil when the instance is sound.
//
// Complexity: O(n² + J + V) for matrix order n, J jobs, V vehicles.
func (in *Input) Validate() error {
	if in == nil {
		return ErrNilInput
	}
	if in.Durations == nil || in.Distances == nil || in.Costs == nil {
		return ErrNilMatrix
	}

	// Stage 1: shape.
	var n = in.Durations.Dim()
	if n == 0 {
		return ErrDimensionMismatch
	}
	if in.Distances.Dim() != n || in.Costs.Dim() != n {
		return ErrDimensionMismatch
	}

	// Stage 2: entry signs (single pass per matrix).
	if in.Durations.minEntry() < 0 || in.Distances.minEntry() < 0 || in.Costs.minEntry() < 0 {
		return ErrNegativeEntry
	}

	// Stage 3: jobs.
	var (
		j           Job
		prioritySum int64
	)
	for _, j = range in.Jobs {
		if j.Location < 0 || j.Location >= n {
			return ErrDimensionMismatch
		}
		if j.Priority < 0 || j.Priority > MaxPriority {
			return ErrBadPriority
		}
		if j.Amount < 0 {
			return ErrBadAmount
		}
		if j.Service < 0 {
			return ErrBadService
		}
		prioritySum += int64(j.Priority)
	}

	// Stage 4: vehicles.
	var v Vehicle
	for _, v = range in.Vehicles {
		if v.Start != OpenEnd && (v.Start < 0 || v.Start >= n) {
			return ErrDimensionMismatch
		}
		if v.End != OpenEnd && (v.End < 0 || v.End >= n) {
			return ErrDimensionMismatch
		}
		if v.Capacity < 0 {
			return ErrBadCapacity
		}
		if v.FixedCost < 0 {
			return ErrBadFixedCost
		}
	}

	// Stage 5: profit headroom. The worst-case priority sum over any subset
	// of jobs is the full-instance sum, so bounding it here bounds every
	// solution the search can produce.
	if prioritySum > profitHeadroom/PriorityScale {
		return ErrPriorityOverflow
	}

	return nil
}

// HasPriorities reports whether any job carries a positive priority.
// Instances answer this uniformly for a whole run: either the profit
// objective is in play or it is not.
func (in *Input) HasPriorities() bool {
	var j Job
	for _, j = range in.Jobs {
		if j.Priority > 0 {
			return true
		}
	}

	return false
}
