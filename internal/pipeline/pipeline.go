package pipeline

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Job is one script source in a batch.
type Job struct {
	Index int
	Path  string
}

type Result struct {
	Job Job
	Err error
}

type Func func(ctx context.Context, job Job) error

// Run processes jobs with at most workers in flight and returns one Result
// per job in input order. A failing job does not stop the others; only ctx
// cancellation does.
func Run(ctx context.Context, paths []string, workers int, fn Func) []Result {
	if len(paths) == 0 || fn == nil {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers < 1 {
			workers = 1
		}
	}

	results := make([]Result, len(paths))
	var g errgroup.Group
	g.SetLimit(workers)

	for i, p := range paths {
		job := Job{Index: i, Path: p}
		results[i].Job = job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[job.Index].Err = err
				return nil
			}
			results[job.Index].Err = fn(ctx, job)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func Errors(results []Result) []error {
	out := make([]error, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			out = append(out, r.Err)
		}
	}
	return out
}
