package kdtree

// Point is an ordered tuple of coordinates in k-dimensional space.
// Every point in a tree, and every query point, must share the same
// dimensionality; mismatches are reported as errors, never truncated or
// padded.
type Point []float64

// Dims returns the dimensionality of the point.
func (p Point) Dims() int { return len(p) }

// SquaredDistance returns the squared Euclidean distance between p and q.
// Both points must have the same dimensionality.
func (p Point) SquaredDistance(q Point) float64 {
	var sum float64
	for i := range p {
		d := p[i] - q[i]
		sum += d * d
	}
	return sum
}

// clone returns an independent copy of p.
func (p Point) clone() Point {
	c := make(Point, len(p))
	copy(c, p)
	return c
}
