package kdtree

import (
	"math"
	"sort"
)

// Neighbor is a single query result: a stored location and its true
// Euclidean distance from the query point.
type Neighbor struct {
	Location Point
	Distance float64
}

// searcher holds the transient state of one query: the child-to-parent
// edges recorded during descent, the set of nodes already examined, and
// the accumulating result set. A fresh searcher is allocated per call, so
// concurrent queries against the same tree never share state.
type searcher struct {
	point    Point
	results  *resultSet
	parent   map[*Node]*Node
	examined map[*Node]bool
}

func newSearcher(point Point, k int) *searcher {
	return &searcher{
		point:    point,
		results:  newResultSet(k),
		parent:   make(map[*Node]*Node),
		examined: make(map[*Node]bool),
	}
}

// descend walks from root down to a starting leaf, moving left when the
// query coordinate on the node's axis is below the node's and right
// otherwise, recording each child-to-parent edge for the climb. Median
// splits leave some internal nodes with a single child; when the preferred
// side is absent the walk falls through to the existing one.
func (s *searcher) descend(root *Node) *Node {
	n := root
	for !n.IsLeaf() {
		var next *Node
		if s.point[n.Axis] < n.Location[n.Axis] {
			next = n.Left
		} else {
			next = n.Right
		}
		if next == nil {
			if n.Left != nil {
				next = n.Left
			} else {
				next = n.Right
			}
		}
		s.parent[next] = n
		n = next
	}
	return n
}

// climb walks from the starting leaf back up to the root via the parent
// map, applying the node-local update at every node the sibling recursion
// has not already handled.
func (s *searcher) climb(leaf *Node) {
	for n := leaf; n != nil; n = s.parent[n] {
		if !s.examined[n] {
			s.update(n)
		}
	}
}

// update is the node-local step of the backtracking search: admit n into
// the result set, then recurse into each unexamined child whose half-space
// the candidate hypersphere around the query point still reaches. The
// plane test compares the squared bound directly against the split
// coordinate, and +Inf while the set is filling disables pruning entirely.
func (s *searcher) update(n *Node) {
	s.examined[n] = true
	s.results.add(n, n.SquaredDistance(s.point))

	for _, c := range n.Children() {
		if s.examined[c.Node] {
			continue
		}
		bound := s.results.bound()
		var intersects bool
		switch c.Side {
		case SideLeft:
			intersects = s.point[n.Axis]-bound <= n.Location[n.Axis]
		case SideRight:
			intersects = s.point[n.Axis]+bound >= n.Location[n.Axis]
		}
		if intersects {
			s.update(c.Node)
		}
	}
}

// neighbors sorts the collected entries ascending by distance and converts
// the stored squared distances to true Euclidean distances. The stable
// sort over insertion-ordered entries makes repeated identical queries
// return identical results.
func (s *searcher) neighbors() []Neighbor {
	entries := s.results.entries
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].dist < entries[j].dist
	})

	out := make([]Neighbor, len(entries))
	for i, e := range entries {
		out[i] = Neighbor{Location: e.node.Location, Distance: math.Sqrt(e.dist)}
	}
	return out
}
