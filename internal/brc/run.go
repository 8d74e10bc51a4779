package brc

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Options configures a run.
type Options struct {
	// Workers is the number of parallel workers. Zero or less means one
	// per CPU.
	Workers int
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.NumCPU()
}

// Result is the outcome of a successful run.
type Result struct {
	Table   *Table
	Workers int
	Size    int
	Stats
}

// Run maps the file at path and aggregates it. A *FileAccessError is
// returned before any work starts if the file can't be mapped.
func Run(ctx context.Context, path string, opts Options) (res *Result, err error) {
	view, err := OpenView(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		cerr := view.Close()
		if err == nil && cerr != nil {
			res, err = nil, &FileAccessError{Op: "unmap", Path: path, Err: errors.Unwrap(cerr)}
		}
	}()

	return RunBytes(ctx, view.Bytes(), opts)
}

// RunBytes aggregates data with opts.Workers workers, one per planned
// chunk, and merges their tables once all of them are done.
func RunBytes(ctx context.Context, data []byte, opts Options) (*Result, error) {
	workers := opts.workers()
	ranges := Plan(Bytes(data), workers)

	tables := make([]*Table, len(ranges))
	stats := make([]Stats, len(ranges))
	eg, ectx := errgroup.WithContext(ctx)
	for i, rng := range ranges {
		i, rng := i, rng
		eg.Go(func() error {
			table, s, err := ProcessChunk(ectx, data, rng)
			if err != nil {
				return fmt.Errorf("chunk %d [%d, %d): %w", i, rng.Start, rng.End, err)
			}
			tables[i] = table
			stats[i] = s
			return nil
		})
	}

	err := eg.Wait()
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate: %w", err)
	}

	res := &Result{
		Table:   Merge(tables...),
		Workers: workers,
		Size:    len(data),
	}
	for _, s := range stats {
		res.Stats.add(s)
	}
	return res, nil
}
