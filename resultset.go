package kdtree

import "math"

// resultEntry pairs a tree node with its squared distance to the query
// point.
type resultEntry struct {
	node *Node
	dist float64 // squared
}

// resultSet collects the best candidates seen so far, bounded to k entries
// except for exact ties with the current worst entry, which are admitted
// even when they push the count past k.
//
// Entries are keyed by node identity, not coordinate equality, so two
// nodes holding identical points are distinct candidates.
type resultSet struct {
	k       int
	entries []resultEntry
}

func newResultSet(k int) *resultSet {
	return &resultSet{k: k, entries: make([]resultEntry, 0, k)}
}

// worst returns the index of the entry with the largest squared distance.
// Call only on a non-empty set.
func (r *resultSet) worst() int {
	wi := 0
	for i := 1; i < len(r.entries); i++ {
		if r.entries[i].dist > r.entries[wi].dist {
			wi = i
		}
	}
	return wi
}

// bound returns the pruning radius as a squared distance: the current
// worst entry once the set holds at least k entries, +Inf while still
// filling. Pruning never happens during the fill phase.
func (r *resultSet) bound() float64 {
	if len(r.entries) < r.k {
		return math.Inf(1)
	}
	return r.entries[r.worst()].dist
}

// contains reports whether node is already an entry, by identity.
func (r *resultSet) contains(node *Node) bool {
	for _, e := range r.entries {
		if e.node == node {
			return true
		}
	}
	return false
}

// add applies the insertion policy for node at squared distance dist.
// Exactly one branch fires per call, evaluated in priority order:
//
//   - empty set: insert
//   - strictly closer than the current worst: evict the worst entry if
//     the set holds exactly k, then insert
//   - exact tie with the current worst and not already present: insert,
//     which may push the count past k
//   - set not yet full: insert
//
// Anything else is discarded.
func (r *resultSet) add(node *Node, dist float64) {
	if len(r.entries) == 0 {
		r.entries = append(r.entries, resultEntry{node: node, dist: dist})
		return
	}

	wi := r.worst()
	switch {
	case dist < r.entries[wi].dist:
		if len(r.entries) == r.k {
			r.entries = append(r.entries[:wi], r.entries[wi+1:]...)
		}
		r.entries = append(r.entries, resultEntry{node: node, dist: dist})
	case dist == r.entries[wi].dist && !r.contains(node):
		r.entries = append(r.entries, resultEntry{node: node, dist: dist})
	case len(r.entries) < r.k:
		r.entries = append(r.entries, resultEntry{node: node, dist: dist})
	}
}
