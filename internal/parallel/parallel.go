// Package parallel provides parallel execution helpers.
package parallel

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// NumWorkers returns the default number of workers for parallel operations.
func NumWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// Workers returns n when positive and NumWorkers otherwise.
func Workers(n int) int {
	if n > 0 {
		return n
	}
	return NumWorkers()
}

// ParallelFor executes fn for indices [start, end) using n workers.
// The first error returned by fn is returned; remaining chunks stop
// at their next index once an error has been observed.
func ParallelFor(start, end, n int, fn func(i int) error) error {
	if n <= 1 {
		for i := start; i < end; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	total := end - start
	if total <= 0 {
		return nil
	}

	var (
		g      errgroup.Group
		failed atomic.Bool
	)
	chunkSize := (total + n - 1) / n

	for w := 0; w < n; w++ {
		chunkStart := start + w*chunkSize
		chunkEnd := chunkStart + chunkSize
		if chunkEnd > end {
			chunkEnd = end
		}
		if chunkStart >= chunkEnd {
			break
		}

		s, e := chunkStart, chunkEnd
		g.Go(func() error {
			for i := s; i < e; i++ {
				if failed.Load() {
					return nil
				}
				if err := fn(i); err != nil {
					failed.Store(true)
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}

// ParallelMap applies fn to each index and collects results.
func ParallelMap[T any](start, end, n int, fn func(i int) (T, error)) ([]T, error) {
	if end < start {
		end = start
	}
	results := make([]T, end-start)
	err := ParallelFor(start, end, n, func(i int) error {
		v, err := fn(i)
		if err != nil {
			return err
		}
		results[i-start] = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
