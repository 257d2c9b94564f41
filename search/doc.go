// Package search provides the heuristic search surrounding the optiroute
// ranking core: deterministic construction, local-search improvement, and a
// parallel multi-start driver whose result is reproducible bit-for-bit.
//
// Pipeline per restart:
//
//  1. Construction — greedy best-insertion over a per-restart job order
//     (restart 0 uses the canonical order; later restarts shuffle with an
//     independent deterministic RNG stream).
//
//  2. Local search (optional) — first-improvement relocate between routes
//     and intra-route 2-opt segment reversal, accepting a move only on a
//     strictly negative cost delta, under a soft wall-clock budget.
//
//  3. Ranking — the candidate is reduced to indicator.Indicators once and
//     compared with indicator.BetterThan only.
//
// Reproducibility:
//
//   - Same Input, same Options ⇒ identical Solution, whatever Workers is.
//     Restart r derives its RNG stream from Options.Seed and r alone, every
//     restart's result lands in a slot indexed by r, and the final reduction
//     scans slots in restart order — worker finish order cannot leak into
//     the outcome.
//
//   - Seed 0 selects a fixed default stream (never a time-based source).
//
// Complexity: one restart costs O(J²·V) construction plus the local-search
// passes; restarts are independent and scale across Workers goroutines.
package search
