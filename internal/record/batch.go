package record

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Loaded is the outcome of loading one file: either Record or Err is set.
type Loaded struct {
	File   File
	Record RawRecord
	Err    error
}

// LoadAll loads files concurrently with at most workers goroutines and
// returns the results in the same order as files. Per-file failures are
// carried in Loaded.Err; the returned error is only set when ctx is done.
func LoadAll(ctx context.Context, files []File, workers int) ([]Loaded, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Loaded, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, f := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			rec, err := LoadFile(f.Path)
			results[i] = Loaded{File: f, Record: rec, Err: err}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
