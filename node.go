package kdtree

// Side tags which slot a child occupies under its parent.
type Side int

const (
	SideLeft  Side = 0
	SideRight Side = 1
)

// Child pairs an existing child node with the side it hangs on.
type Child struct {
	Side Side
	Node *Node
}

// Node is a single node of a k-d tree. Each node exclusively owns its
// children; the tree stores no parent or sibling links.
type Node struct {
	// Location is the point stored at this node. It is nil only for the
	// sentinel node produced by building from an empty input.
	Location Point

	// Axis is the dimension this node splits on, in [0, Dims). It carries
	// no meaning for the sentinel.
	Axis int

	// Left and Right are the child subtrees; nil means no child.
	// Every location in the left subtree has coordinate[Axis] <=
	// Location[Axis]; every location in the right subtree has
	// coordinate[Axis] >= Location[Axis]. Points whose split coordinate
	// equals the node's may land on either side.
	Left, Right *Node
}

// IsSentinel reports whether the node is the empty-tree sentinel.
func (n *Node) IsSentinel() bool { return n.Location == nil }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return n.Left == nil && n.Right == nil }

// Children returns the existing children in left-then-right order, each
// tagged with its side. Absent children are omitted rather than returned
// as nil entries.
func (n *Node) Children() []Child {
	children := make([]Child, 0, 2)
	if n.Left != nil {
		children = append(children, Child{Side: SideLeft, Node: n.Left})
	}
	if n.Right != nil {
		children = append(children, Child{Side: SideRight, Node: n.Right})
	}
	return children
}

// SquaredDistance returns the squared Euclidean distance from the node's
// location to p.
func (n *Node) SquaredDistance(p Point) float64 {
	return n.Location.SquaredDistance(p)
}

// Height returns the number of edges on the longest path from n down to a
// leaf. Leaves, the sentinel, and nil subtrees all report 0.
func (n *Node) Height() int {
	if n == nil || n.IsLeaf() {
		return 0
	}
	h := n.Left.Height()
	if rh := n.Right.Height(); rh > h {
		h = rh
	}
	return h + 1
}

// IsBalanced reports whether the heights of the two child subtrees differ
// by at most one. The check applies to this node only; it does not recurse
// into descendants, so a deeper subtree may still be lopsided.
func (n *Node) IsBalanced() bool {
	diff := n.Left.Height() - n.Right.Height()
	if diff < 0 {
		diff = -diff
	}
	return diff <= 1
}

// Rebalance builds a brand-new tree from exactly three points: the node's
// own location and the locations of its two direct children. Descendants
// below the children do not participate; this is a shallow, root-limited
// operation, not a whole-tree rebuild. It fails with ErrNotRebalanceable
// when the node is a sentinel or either child is absent.
func (n *Node) Rebalance() (*Node, error) {
	if n == nil || n.IsSentinel() {
		return nil, ErrNotRebalanceable
	}
	if n.Left == nil || n.Right == nil {
		return nil, ErrNotRebalanceable
	}
	return Build([]Point{n.Location, n.Left.Location, n.Right.Location})
}
