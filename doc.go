// Package pathpad is an interactive sketchpad for weighted undirected graphs:
// place nodes, connect them, mark a start and a goal, and see the cheapest
// path between them.
//
// Everything is organized under a few subpackages:
//
//	core/       append-only Graph: dense NodeIDs, positions, reciprocal adjacency, RW lock
//	dijkstra/   ShortestPath with a deterministic ascending-id tie-break
//	label/      node id → letter labels (A, B, …, Z, AA, …) and path rendering
//	spatial/    R-tree hit index resolving a click to the node under it
//	session/    the click/key state machine, path reports and presenter frames
//	config/     TOML configuration
//	logging/    slog logger construction
//	cmd/pathpad terminal front end
//
// Quick ASCII example:
//
//	A───6───B
//	│ ╲     │
//	1   4   3
//	│     ╲ │
//	D───1───C
//
// ShortestPath(A, B) = 5 via A -> D -> C -> B.
package pathpad
