package kdtree

import "sync"

// QueryBatch runs Query for every point using numWorkers goroutines and
// returns the per-point results in input order. Every query point is
// validated up front; a batch either runs completely or fails before any
// work starts.
//
// Rows are split into contiguous ranges, one per worker, and each worker
// writes only its own result slots, so no synchronization beyond the
// WaitGroup is needed. numWorkers <= 1 falls back to a sequential loop
// with identical results.
func (t *Tree) QueryBatch(points []Point, k, numWorkers int) ([][]Neighbor, error) {
	for _, p := range points {
		if err := t.validateQuery(p, k); err != nil {
			return nil, err
		}
	}

	results := make([][]Neighbor, len(points))
	if numWorkers <= 1 || len(points) <= 1 {
		for i, p := range points {
			results[i] = t.search(p, k)
		}
		return results, nil
	}

	var wg sync.WaitGroup
	rowsPerWorker := (len(points) + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		start := w * rowsPerWorker
		end := start + rowsPerWorker
		if end > len(points) {
			end = len(points)
		}
		if start >= len(points) {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				results[i] = t.search(points[i], k)
			}
		}(start, end)
	}

	wg.Wait()
	return results, nil
}
