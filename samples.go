package kdtree

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// GaussianClusters generates perCluster synthetic points around each
// center by adding an independent normal offset with standard deviation
// sigma to every coordinate. All centers must share the same
// dimensionality. The same seed always produces the same points.
//
// Useful for demos, benchmarks, and recall experiments that need clumpy
// rather than uniform data.
func GaussianClusters(centers []Point, perCluster int, sigma float64, seed uint64) ([]Point, error) {
	if len(centers) == 0 || perCluster <= 0 {
		return nil, nil
	}
	if sigma < 0 {
		return nil, fmt.Errorf("kdtree: sigma must be >= 0, got %v", sigma)
	}
	dims := centers[0].Dims()
	for _, c := range centers {
		if c.Dims() != dims {
			return nil, fmt.Errorf("%w: center has %d dimensions, expected %d", ErrDimensionMismatch, c.Dims(), dims)
		}
	}

	noise := distuv.Normal{Mu: 0, Sigma: sigma, Src: rand.NewPCG(seed, seed)}
	points := make([]Point, 0, len(centers)*perCluster)
	for _, c := range centers {
		for i := 0; i < perCluster; i++ {
			p := make(Point, dims)
			for d := range p {
				p[d] = c[d] + noise.Rand()
			}
			points = append(points, p)
		}
	}
	return points, nil
}
