// Package model defines the shared numeric domain and the problem instance
// of the optiroute solver.
//
// It provides:
//
//   - Scalar types: Duration, Distance, Cost (wide int64 accumulators) and
//     the bounded per-job Priority.
//
//   - Eval — the (cost, duration, distance) triple summarizing resource
//     consumption of a route or a whole solution. Component-wise addition is
//     associative and commutative with the zero value as identity.
//
//   - Matrix — a dense square int64 matrix with O(1) access, validated once
//     at instance construction so hot paths never re-check bounds.
//
//   - Input — jobs, vehicles and the duration/distance/cost matrices, plus
//     Validate, which enforces every numeric precondition the ranking core
//     relies on (shape, non-negativity, priority bounds, profit headroom).
//
//   - The cost model: PrioritySumForRoute and RouteEvalForVehicle, the two
//     pure functions the indicator aggregation is built on.
//
// Unit scaling:
//
//	Internal costs are expressed in scaled units so that one priority point
//	is commensurable with PriorityScale cost units. When an instance carries
//	no explicit cost matrix, costs derive from durations multiplied by
//	DurationFactor; a user-supplied cost matrix is multiplied by CostFactor
//	at load time. PriorityScale = DurationFactor × CostFactor = 360000 and
//	must be used consistently by the cost model and the objective comparator.
//
// All functions in this package are deterministic and side-effect free.
package model
