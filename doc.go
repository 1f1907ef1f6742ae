// Package statesearch provides a generic, uninformed state-space search engine.
//
// It exposes two main entry points:
//
//   - Search: run the search to completion and get a Result.
//   - Stepper: advance the search one frontier removal at a time to drive UIs or debugging tools.
//
// The engine is generic over a comparable state type. A client plugs a problem in by
// implementing Problem (successor enumeration and a goal test); the traversal order is
// picked with a Strategy: breadth-first, depth-first or random.
package statesearch
