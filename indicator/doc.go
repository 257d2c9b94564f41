// Package indicator is the ranking and acceptance core of the optiroute
// solver: it reduces a candidate assignment of jobs to vehicle routes into a
// compact Indicators value and defines the deterministic better-than
// relation over such values.
//
// Every acceptance decision in the surrounding search — incumbent
// replacement, population ordering, parallel best-candidate reduction — goes
// through BetterThan, so its guarantees carry the whole solver:
//
//   - Strict weak ordering: irreflexive, asymmetric, transitive within one
//     priority regime; equal indicators compare false both ways.
//
//   - Pure determinism: BetterThan is a pure function of two immutable
//     values. Concurrent, repeated or out-of-order invocation always yields
//     the same result for the same pair, which makes parallel reductions
//     reproducible regardless of worker finish order.
//
//   - Last-resort tie-break: the RoutesHash fingerprint removes residual
//     nondeterminism when two equally good solutions race to become the
//     incumbent. It carries no semantic meaning.
//
// Two objectives share the relation. When either compared solution carries a
// positive priority sum, profit mode maximizes
//
//	priority_sum × model.PriorityScale − eval.cost
//
// with tie-breaks on assigned jobs, used vehicles, duration, distance, then
// fingerprint. Otherwise the default lexicographic mode maximizes assigned
// jobs, then minimizes cost, used vehicles, duration, distance, fingerprint.
//
// Regime discipline: the mode is selected per comparison, so transitivity
// across a population is only guaranteed when all compared solutions stem
// from the same instance. Solutions of a priority-free instance all have a
// zero priority sum and stay in lexicographic mode; solutions of a priority
// instance are ranked by profit, which degrades to −cost for candidates that
// assigned no prioritized job. Do not mix indicators from different
// instances in one ranking.
//
// Indicators values are self-contained: they hold no reference to the Input
// or routes they were derived from and may be copied across goroutines
// freely. Compute never mutates its arguments.
package indicator
