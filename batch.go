package mappers

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Batch operations apply a single-pair operation to every element of a slice
// of coordinate pairs, in parallel across a bounded worker group. The output
// slice has the same length and order as the input. The first element error
// aborts the whole batch: the returned slice is nil and the error wraps the
// element's failure together with its index.

// ProjectBatch forward-projects every (lon, lat) pair in coords.
func ProjectBatch(p Projection, coords [][2]float64) ([][2]float64, error) {
	return mapBatch(coords, p.Project)
}

// InverseProjectBatch inverse-projects every (x, y) pair in coords.
func InverseProjectBatch(p Projection, coords [][2]float64) ([][2]float64, error) {
	return mapBatch(coords, p.InverseProject)
}

// ConvertBatch converts every pair in coords through the pipe.
func ConvertBatch(pipe ConversionPipe, coords [][2]float64) ([][2]float64, error) {
	return mapBatch(coords, pipe.Convert)
}

func mapBatch(coords [][2]float64, op func(a, b float64) (float64, float64, error)) ([][2]float64, error) {
	out := make([][2]float64, len(coords))

	workers := runtime.NumCPU()
	if workers > len(coords) {
		workers = len(coords)
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (len(coords) + workers - 1) / workers

	var g errgroup.Group
	for start := 0; start < len(coords); start += chunk {
		start := start
		end := min(start+chunk, len(coords))
		g.Go(func() error {
			for i := start; i < end; i++ {
				a, b, err := op(coords[i][0], coords[i][1])
				if err != nil {
					return fmt.Errorf("element %d: %w", i, err)
				}
				out[i] = [2]float64{a, b}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
