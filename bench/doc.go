// Package bench sweeps the search engine across a configuration matrix —
// map sizes, environment families, motion models, algorithms, modes, and
// heuristics — and aggregates the per-run Result records into success
// rates and mean/stddev statistics.
//
// What:
//
//   - BuildEnvironment generates the five canonical maze families (empty,
//     scattered, corridor, rooms, dense) at any size, deterministically.
//   - Matrix expands kinds × sizes × motions × algorithms into Specs with
//     the adaptive limit table applied: graph-mode runs always get the
//     full budget, tree-mode runs get size-dependent budgets and fewer
//     trials, because on cyclic maps their only termination guarantee is
//     the limit itself.
//   - Runner executes Specs over a worker pool; each trial is one
//     independent search, so workers share nothing but the Recorder.
//   - Recorder is an explicit, mutex-guarded accumulator — never
//     package-level state — handed into Run by the caller.
//   - Summarize groups records and computes success rate plus mean/stddev
//     of time, nodes expanded, frontier size, path cost and length.
//   - WriteCSV flattens records for spreadsheets; History keeps a JSON
//     log of runs on disk.
//
// Why adaptive limits:
//
//   - Tree-mode BFS/UCS on any maze with two routes between two cells
//     revisit states forever. The benchmark's subject is exactly that
//     contrast, so limits are sized jointly with the map: small maps get
//     generous budgets (the search may genuinely finish), large maps get
//     conservative ones (the run exists to record the blow-up, not to
//     spend an hour proving it).
//
// Errors:
//
//   - ErrBadSize: map size too small to hold the family's structure.
//   - ErrUnknownEnvKind: environment family selector out of range.
package bench
