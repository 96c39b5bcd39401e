package kdtree

import (
	"fmt"
	"sort"
)

// Build constructs a k-d tree over points by recursive median splits,
// cycling the splitting axis with recursion depth. Building from an empty
// slice yields the sentinel node. The input points are copied up front, so
// later mutation of the caller's slices cannot corrupt the tree.
func Build(points []Point) (*Node, error) {
	pts := make([]Point, len(points))
	for i, p := range points {
		pts[i] = p.clone()
	}
	root, err := construct(pts, 0)
	if err != nil {
		return nil, err
	}
	if root == nil {
		root = &Node{} // sentinel
	}
	return root, nil
}

// construct builds the subtree for pts at the given recursion depth,
// sorting pts in place. Empty sublists produce no node at all; only
// Build's top level turns the empty case into a sentinel.
func construct(pts []Point, depth int) (*Node, error) {
	if len(pts) == 0 {
		return nil, nil
	}

	dims := pts[0].Dims()
	if dims == 0 {
		return nil, fmt.Errorf("%w: points must have at least one dimension", ErrDimensionMismatch)
	}
	for _, p := range pts {
		if p.Dims() != dims {
			return nil, fmt.Errorf("%w: point has %d dimensions, expected %d", ErrDimensionMismatch, p.Dims(), dims)
		}
	}

	axis := depth % dims

	// Stable sort keeps the original relative order of points with equal
	// coordinates on the split axis, so construction is deterministic.
	sort.SliceStable(pts, func(i, j int) bool {
		return pts[i][axis] < pts[j][axis]
	})
	median := len(pts) / 2

	node := &Node{Location: pts[median], Axis: axis}

	left, err := construct(pts[:median], depth+1)
	if err != nil {
		return nil, err
	}
	right, err := construct(pts[median+1:], depth+1)
	if err != nil {
		return nil, err
	}
	node.Left, node.Right = left, right
	return node, nil
}
