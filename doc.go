// Package scalarstar provides an A* search over a one-dimensional continuous
// state space whose successors are generated on demand.
//
// It exposes two main entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive tracing or debugging tools.
//
// Every state has exactly four successors: the midpoints toward the two
// anchors and a fixed step in each direction. Each move costs 1, the
// heuristic is the absolute distance to the goal, and the search stops on the
// first expanded state closer to the goal than the configured precision.
package scalarstar
