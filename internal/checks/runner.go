package checks

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Options control how a batch of checks is executed.
type Options struct {
	// Sequential disables parallel execution. Checks are independent
	// pure reads, so parallel is the default.
	Sequential bool
	// Workers bounds parallel execution; 0 means GOMAXPROCS.
	Workers int
}

// Run executes the named checks against the workspace in env and
// returns exactly one result per requested name, in request order.
// Unknown names and per-check panics become indeterminate results;
// nothing aborts the batch.
func Run(ctx context.Context, env *Env, names []string, opts Options) []Result {
	if len(names) == 0 {
		names = Names()
	}
	results := make([]Result, len(names))

	if opts.Sequential {
		for i, name := range names {
			results[i] = runOne(ctx, env, name)
		}
		return results
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, name := range names {
		g.Go(func() error {
			results[i] = runOne(ctx, env, name)
			return nil
		})
	}
	// Check functions report problems through their result, never
	// through an error.
	_ = g.Wait()
	return results
}

// runOne executes a single catalogue entry with panic containment.
func runOne(ctx context.Context, env *Env, name string) (res Result) {
	res.Name = name
	defer func() {
		if p := recover(); p != nil {
			res.Status = Indeterminate
			res.Message = fmt.Sprintf("Error running check: %v", p)
		}
	}()

	if err := ctx.Err(); err != nil {
		res.Status = Indeterminate
		res.Message = fmt.Sprintf("Error running check: %v", err)
		return res
	}

	check, ok := Lookup(name)
	if !ok {
		res.Status = Indeterminate
		res.Message = "Check function not found"
		return res
	}

	if env.Log != nil {
		env.Log.Debug("running check", "check", name, "workspace", env.Dir)
	}
	res.Status, res.Message = check.run(env)
	return res
}
