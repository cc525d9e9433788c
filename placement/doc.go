// Package placement asks, for many candidate cells at once, what happens
// to the best route if that single cell becomes blocked.
//
// Every candidate is an independent query against the same immutable
// grid: each worker clones the base BarrierSet, adds its one cell, builds
// a private state space and runs its own single-best search. Workers share
// nothing mutable, so the only coordination is the errgroup that bounds
// how many run at a time and collects the first hard error.
//
// Verdicts come back in candidate order regardless of scheduling.
//
// Cancellation is checked between candidates; a search that has started
// always runs to completion.
package placement
