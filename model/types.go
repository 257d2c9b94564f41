// Package model - scalar types, scaling constants and sentinel errors.
//
// Design principles:
//   - Wide accumulators: all additive quantities are int64 so summing across
//     an entire instance cannot overflow in practice.
//   - Strict sentinels: validation failures return errors from this file only.
//   - No logging, no panics on user input.
package model

import "errors"

// Sentinel errors returned by instance construction and validation.
var (
	// ErrNilInput indicates that a nil *Input was passed where one is required.
	ErrNilInput = errors.New("model: input is nil")

	// ErrNilMatrix indicates that a required matrix (durations or distances) is missing.
	ErrNilMatrix = errors.New("model: required matrix is nil")

	// ErrNonSquare indicates that a matrix is not square.
	ErrNonSquare = errors.New("model: matrix is not square")

	// ErrDimensionMismatch indicates inconsistent matrix sizes or an index
	// (job location, vehicle start/end) outside the matrix range.
	ErrDimensionMismatch = errors.New("model: dimension mismatch")

	// ErrNegativeEntry indicates a negative duration, distance or cost entry.
	ErrNegativeEntry = errors.New("model: negative matrix entry")

	// ErrBadPriority indicates a job priority outside [0, MaxPriority].
	ErrBadPriority = errors.New("model: job priority out of range")

	// ErrBadAmount indicates a negative job amount.
	ErrBadAmount = errors.New("model: job amount must be non-negative")

	// ErrBadCapacity indicates a negative vehicle capacity.
	ErrBadCapacity = errors.New("model: vehicle capacity must be non-negative")

	// ErrBadService indicates a negative job service time.
	ErrBadService = errors.New("model: job service time must be non-negative")

	// ErrBadFixedCost indicates a negative vehicle fixed cost.
	ErrBadFixedCost = errors.New("model: vehicle fixed cost must be non-negative")

	// ErrPriorityOverflow indicates that the instance-wide priority sum,
	// scaled by PriorityScale, would not leave safe int64 headroom for the
	// profit computation. Enforced here so the comparator never has to.
	ErrPriorityOverflow = errors.New("model: scaled priority sum exceeds profit headroom")
)

// Duration is a time quantity in seconds.
type Duration = int64

// Distance is a length quantity in meters.
type Distance = int64

// Cost is a monetary quantity in internal scaled units (see package doc).
type Cost = int64

// Priority is a bounded per-job weight expressing job importance in the
// profit objective. Valid range is [0, MaxPriority].
type Priority int32

// MaxPriority is the inclusive upper bound for a single job priority.
const MaxPriority Priority = 100

// Cost scaling constants shared by the cost model and the objective
// comparator. They are the single source of truth for unit commensurability:
// one priority point is worth exactly PriorityScale internal cost units.
const (
	// DurationFactor converts seconds of travel into internal cost units
	// when no custom cost matrix is supplied.
	DurationFactor int64 = 100

	// CostFactor scales user-supplied cost matrix entries into internal
	// cost units.
	CostFactor int64 = 3600

	// PriorityScale converts one priority point into internal cost units.
	// Keep equal to DurationFactor*CostFactor; the profit objective
	// (priority_sum*PriorityScale − cost) depends on this identity.
	PriorityScale int64 = DurationFactor * CostFactor // 360000
)

// profitHeadroom is the largest magnitude the validator allows for the
// scaled instance-wide priority sum, leaving the other half of the int64
// range for accumulated costs in the profit computation.
const profitHeadroom int64 = 1 << 62

// Eval is the (cost, duration, distance) triple summarizing resource
// consumption. The zero value is the identity of Add.
type Eval struct {
	Cost     Cost
	Duration Duration
	Distance Distance
}

// Add returns the component-wise sum of e and o.
// Associative and commutative; Eval{} is the identity.
func (e Eval) Add(o Eval) Eval {
	return Eval{
		Cost:     e.Cost + o.Cost,
		Duration: e.Duration + o.Duration,
		Distance: e.Distance + o.Distance,
	}
}

// Sub returns the component-wise difference e − o.
// Useful for local-search deltas; results may be negative.
func (e Eval) Sub(o Eval) Eval {
	return Eval{
		Cost:     e.Cost - o.Cost,
		Duration: e.Duration - o.Duration,
		Distance: e.Distance - o.Distance,
	}
}
