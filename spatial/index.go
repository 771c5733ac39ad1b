// Package spatial resolves a pointer position to the node drawn under it.
//
// Every node occupies a disc of a fixed radius around its position. The discs'
// bounding boxes live in an R-tree so a click only tests the few candidates
// whose boxes overlap it, instead of scanning every node.
package spatial

import (
	"errors"
	"fmt"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/pathpad/core"
)

// ErrBadRadius indicates a non-positive or non-finite node radius.
var ErrBadRadius = errors.New("spatial: radius must be positive")

// R-tree fan-out: 2-D, min 25, max 50 entries per node.
const (
	treeDim        = 2
	treeMinEntries = 25
	treeMaxEntries = 50
)

// nodeEntry wraps a node disc for R-tree storage.
type nodeEntry struct {
	id     core.NodeID
	center orb.Point
	bbox   rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *nodeEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// Index holds the discs of every node inserted so far.
// It is not safe for concurrent use; the session drives it from one goroutine.
type Index struct {
	radius float64
	tree   *rtreego.Rtree
}

// NewIndex creates an empty index for discs of the given radius.
func NewIndex(radius float64) (*Index, error) {
	if !(radius > 0) || radius > maxRadius {
		return nil, fmt.Errorf("%w: %v", ErrBadRadius, radius)
	}

	return &Index{
		radius: radius,
		tree:   rtreego.NewTree(treeDim, treeMinEntries, treeMaxEntries),
	}, nil
}

// maxRadius rejects +Inf and absurd values that would break box arithmetic.
const maxRadius = 1e12

// Radius returns the disc radius.
func (ix *Index) Radius() float64 { return ix.radius }

// Len returns the number of indexed nodes.
func (ix *Index) Len() int { return ix.tree.Size() }

// Insert adds the disc of node id centred at p.
func (ix *Index) Insert(id core.NodeID, p orb.Point) error {
	bbox, err := ix.box(p)
	if err != nil {
		return fmt.Errorf("spatial: insert node %d: %w", id, err)
	}
	ix.tree.Insert(&nodeEntry{id: id, center: p, bbox: bbox})

	return nil
}

// Hit returns the node whose disc strictly contains p. When discs overlap,
// the lowest id wins. ok is false if p is on empty space.
func (ix *Index) Hit(p orb.Point) (id core.NodeID, ok bool) {
	query, err := ix.box(p)
	if err != nil {
		return core.NoNode, false
	}

	id = core.NoNode
	for _, item := range ix.tree.SearchIntersect(query) {
		e := item.(*nodeEntry)
		if planar.Distance(p, e.center) >= ix.radius {
			continue
		}
		if id == core.NoNode || e.id < id {
			id = e.id
		}
	}

	return id, id != core.NoNode
}

// box is the axis-aligned square of side 2·radius centred at p.
func (ix *Index) box(p orb.Point) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{p.X() - ix.radius, p.Y() - ix.radius},
		[]float64{2 * ix.radius, 2 * ix.radius},
	)
}
