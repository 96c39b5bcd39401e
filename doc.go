// Package kdtree implements a k-d tree spatial index with exact
// k-nearest-neighbor queries.
//
// A tree is built once over a fixed-dimension point set by recursive
// median splits, cycling the splitting axis with recursion depth. A query
// descends to a candidate leaf, then climbs back toward the root,
// recursing into sibling subtrees only when the candidate hypersphere
// around the query point still reaches across the splitting hyperplane.
// All internal comparisons use squared distances; square roots are taken
// only when results are reported.
//
// Basic usage:
//
//	tree, err := kdtree.New(points)
//	if err != nil {
//		// handle err
//	}
//	neighbors, err := tree.Query(kdtree.Point{1.5, 1.5}, 2)
//	// neighbors[i].Location is a stored point
//	// neighbors[i].Distance is its Euclidean distance, ascending
//
// Trees are immutable after construction, so any number of goroutines may
// query the same tree concurrently; every query allocates its own
// transient state. Candidates exactly tied with the worst admitted entry
// are retained, so a result may occasionally hold more than k entries.
package kdtree
