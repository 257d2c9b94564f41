// Package optiroute is an in-memory vehicle-routing optimization library:
// problem modelling, solution ranking, and deterministic multi-start search.
//
// 🚚 What is optiroute?
//
//	A pure-Go solver core that brings together:
//		• Problem model: jobs, vehicles, dense duration/distance/cost matrices
//		• Cost model: per-route evaluation (cost, duration, distance) + priorities
//		• Ranking core: solution indicators with a deterministic better-than relation
//		• Search: greedy construction, relocate/2-opt local search, parallel multi-start
//		• Instances: declarative YAML problem files
//
// ✨ Why choose optiroute?
//
//   - Reproducible – same seed ⇒ identical solution, serial or parallel
//   - Rock-solid ranking – strict weak ordering, explicit tie-break cascades
//   - Pure Go – no cgo, no services, no hidden state
//   - Extensible – any route representation satisfying a 3-method capability
//
// Everything is organized under four subpackages:
//
//	model/     — numeric types, scaling constants, problem Input, cost model
//	indicator/ — SolutionIndicators: aggregation, shape fingerprint, BetterThan
//	search/    — construction heuristics, local search, multi-start Solve
//	instance/  — YAML instance loading and validation
//
// Quick ASCII example:
//
//	    depot───J1
//	      │      │
//	     J3─────J2
//
//	one vehicle serving three jobs; Solve returns the cheapest feasible order.
//
// Dive into the package docs for contracts, complexity notes and the exact
// objective semantics (profit mode vs lexicographic mode).
//
//	go get github.com/optiroute/optiroute
package optiroute
