package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/pathpad/core"
)

// ShortestPath returns the total cost and the node sequence of the cheapest
// path from start to goal, both endpoints included.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and goal must be in 0..N-1 (ErrNodeNotFound).
//
// If goal is unreachable the result is ErrNoPath. start == goal yields
// (0, [start], nil) without touching any edge.
//
// Options customization:
//
//   - WithMaxCost(x): goals whose cheapest path costs more than x are reported
//     as ErrNoPath (x ≥ 0).
//
// Adjacency lists are checked while they are read: a negative cost fails with
// ErrNegativeCost and a sum beyond int64 with ErrCostOverflow.
//
// Pass a *core.Snapshot when the graph may be written concurrently; a live
// *core.Graph is only consistent if no writer runs during the call.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(g Graph, start, goal core.NodeID, opts ...Option) (int64, []core.NodeID, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return 0, nil, ErrNilGraph
	}
	n := g.NodeCount()
	if start < 0 || int(start) >= n {
		return 0, nil, fmt.Errorf("%w: start %d (have %d nodes)", ErrNodeNotFound, start, n)
	}
	if goal < 0 || int(goal) >= n {
		return 0, nil, fmt.Errorf("%w: goal %d (have %d nodes)", ErrNodeNotFound, goal, n)
	}

	// 3) Run until goal is settled or the frontier drains
	r := newRunner(g, n, start, cfg)
	cost, found, err := r.run(goal)
	if err != nil {
		return 0, nil, err
	}
	if !found {
		return 0, nil, fmt.Errorf("%w: %d → %d", ErrNoPath, start, goal)
	}

	// 4) Walk the predecessor chain back from goal
	return cost, r.path(start, goal), nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       Graph         // read-only within the run
	options Options       // budget and other knobs
	dist    []int64       // best known cost from start, infinity if unknown
	prev    []core.NodeID // predecessor on the best known path, core.NoNode if none
	pq      nodePQ        // lazy min-heap of frontier entries
}

// newRunner sets dist[start] = 0, everything else to infinity, and seeds the heap with start.
func newRunner(g Graph, n int, start core.NodeID, opts Options) *runner {
	r := &runner{
		g:       g,
		options: opts,
		dist:    make([]int64, n),
		prev:    make([]core.NodeID, n),
		pq:      make(nodePQ, 0, n),
	}

	// 1) Every node starts unknown with no predecessor.
	for i := range r.dist {
		r.dist[i] = infinity
		r.prev[i] = core.NoNode
	}

	// 2) The start costs nothing to reach.
	r.dist[start] = 0

	// 3) Seed the heap with the start alone.
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: start, cost: 0})

	return r
}

// run pops frontier entries until goal is settled or the heap drains.
// It reports goal's cost and whether goal was reached.
func (r *runner) run(goal core.NodeID) (int64, bool, error) {
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest frontier entry (lowest id among equal costs).
		item := heap.Pop(&r.pq).(nodeItem)

		// 2) Stale entry: a cheaper route to this node was pushed after it.
		if item.cost > r.dist[item.id] {
			continue
		}

		// 3) Settled the goal: its cost is final.
		if item.id == goal {
			return item.cost, true, nil
		}

		// 4) Otherwise try to improve every neighbor through this node.
		if err := r.relax(item.id, item.cost); err != nil {
			return 0, false, err
		}
	}

	return 0, false, nil
}

// relax tries to improve every neighbor of u through u.
func (r *runner) relax(u core.NodeID, cost int64) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	for _, e := range edges {
		// 1) Reject entries no core graph can hold.
		if e.To < 0 || int(e.To) >= len(r.dist) {
			return fmt.Errorf("%w: edge %d→%d", ErrNodeNotFound, u, e.To)
		}
		if e.Cost < 0 {
			return fmt.Errorf("%w: edge %d→%d cost=%d", ErrNegativeCost, u, e.To, e.Cost)
		}

		// 2) The sum must stay below infinity, which marks unknown nodes.
		if e.Cost >= infinity-cost {
			return fmt.Errorf("%w: %d + %d at edge %d→%d", ErrCostOverflow, cost, e.Cost, u, e.To)
		}
		next := cost + e.Cost

		// 3) Beyond the budget nothing is explored.
		if next > r.options.MaxCost {
			continue
		}

		// 4) Strict "<": the first predecessor found at a given cost is kept.
		if next >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = next
		r.prev[e.To] = u
		heap.Push(&r.pq, nodeItem{id: e.To, cost: next})
	}

	return nil
}

// path walks prev back from goal to start and reverses the result.
func (r *runner) path(start, goal core.NodeID) []core.NodeID {
	out := []core.NodeID{goal}
	for cur := goal; cur != start; {
		cur = r.prev[cur]
		out = append(out, cur)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// nodeItem is one frontier entry: a node and the cost it was reached with.
type nodeItem struct {
	id   core.NodeID
	cost int64
}

// nodePQ is a min-heap of nodeItem ordered by cost, then by id ascending.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
