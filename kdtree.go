package kdtree

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTree is returned by queries against a tree built from no
	// points.
	ErrEmptyTree = errors.New("kdtree: tree is empty")

	// ErrDimensionMismatch is returned when point dimensionalities are
	// inconsistent, either within build input or between a query point
	// and the tree.
	ErrDimensionMismatch = errors.New("kdtree: dimension mismatch")

	// ErrInvalidK is returned when a query asks for fewer than one
	// neighbor.
	ErrInvalidK = errors.New("kdtree: k must be >= 1")

	// ErrNotRebalanceable is returned by Node.Rebalance when the node
	// does not have both direct children to rebuild from.
	ErrNotRebalanceable = errors.New("kdtree: node needs two children to rebalance")
)

// Tree is an immutable k-d tree spatial index over a fixed-dimension point
// set. Construction and queries never mutate the tree; all per-query
// bookkeeping lives in transient state owned by the call, so concurrent
// queries against one tree are safe without locking.
type Tree struct {
	root *Node
	dims int
	size int
}

// New builds a Tree from points. An empty slice yields a valid tree whose
// queries fail with ErrEmptyTree. Input points are copied; the caller's
// slices are neither retained nor reordered.
func New(points []Point) (*Tree, error) {
	root, err := Build(points)
	if err != nil {
		return nil, err
	}
	t := &Tree{root: root, size: len(points)}
	if len(points) > 0 {
		t.dims = points[0].Dims()
	}
	return t, nil
}

// Root returns the root node, for diagnostics such as Height, IsBalanced,
// and Dump. Mutating the returned subtree invalidates the tree.
func (t *Tree) Root() *Node { return t.root }

// Len returns the number of indexed points.
func (t *Tree) Len() int { return t.size }

// Dims returns the dimensionality of the indexed points, or 0 for an
// empty tree.
func (t *Tree) Dims() int { return t.dims }

// Query returns the k nearest stored points to point, ascending by true
// Euclidean distance. The result holds min(k, Len()) entries, plus any
// candidates exactly tied with the worst admitted entry, which may push
// the length past k. A failing query returns no result, never a truncated
// one.
func (t *Tree) Query(point Point, k int) ([]Neighbor, error) {
	if err := t.validateQuery(point, k); err != nil {
		return nil, err
	}
	return t.search(point, k), nil
}

// Nearest returns the single closest stored point to point.
func (t *Tree) Nearest(point Point) (Neighbor, error) {
	res, err := t.Query(point, 1)
	if err != nil {
		return Neighbor{}, err
	}
	return res[0], nil
}

func (t *Tree) validateQuery(point Point, k int) error {
	if t.root.IsSentinel() {
		return ErrEmptyTree
	}
	if point.Dims() != t.dims {
		return fmt.Errorf("%w: query point has %d dimensions, tree expects %d", ErrDimensionMismatch, point.Dims(), t.dims)
	}
	if k <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}
	return nil
}

// search runs one validated query: descend to a starting leaf, climb back
// to the root with backtracking, report sorted neighbors.
func (t *Tree) search(point Point, k int) []Neighbor {
	s := newSearcher(point, k)
	s.climb(s.descend(t.root))
	return s.neighbors()
}
