// Package dijkstra finds the cheapest path between two nodes of a core graph.
//
// ShortestPath runs single-source Dijkstra from start and stops as soon as goal
// is settled. Vertices are processed in order of increasing accumulated cost
// using a binary min-heap; when two frontier entries carry the same cost, the
// one with the smaller node id is popped first. That tie-break makes the choice
// among equal-cost alternatives reproducible.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each edge relaxation may push a new heap entry: up to E pushes.
//   - Each heap operation costs O(log N), N ≤ V + E, simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for the distance and predecessor slices.
//   - O(E) worst-case heap entries under "lazy decrease-key".
//
// Notes on implementation choices:
//
//   - Costs are non-negative by construction (floored distances), so there is no
//     upfront negative-weight scan; relax still rejects a negative cost from a
//     foreign Graph implementation.
//   - Sums are checked before they are formed, so a path too long for an int64
//     fails with ErrCostOverflow instead of wrapping around.
//   - Stale heap entries (cost > best known distance) are skipped when popped
//     instead of being removed eagerly.
//   - Relaxation uses strict "<", so the first predecessor found at a given
//     cost is kept.
//
// Options:
//
//	– MaxCost: budget on the accumulated cost; a goal beyond it is ErrNoPath.
//
// Errors (sentinel):
//
//	– ErrNilGraph      if the graph is nil.
//	– ErrNodeNotFound  if start or goal is outside 0..N-1.
//	– ErrNoPath        if goal is unreachable from start (within MaxCost).
//	– ErrNegativeCost  if an adjacency list holds a negative cost.
//	– ErrCostOverflow  if a path cost does not fit in an int64.
//	– ErrBadMaxCost    (panic) if WithMaxCost gets a negative value.
//
// Example usage:
//
//	cost, path, err := dijkstra.ShortestPath(g.Snapshot(), start, goal)
//	switch {
//	case errors.Is(err, dijkstra.ErrNoPath):
//	    // different components
//	case err != nil:
//	    // invalid ids: a bug in the caller
//	}
package dijkstra
