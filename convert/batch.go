package convert

import (
	"context"

	"github.com/gnote/dnttools/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Result reports the outcome for one input.
type Result struct {
	Input   string
	Outputs []string
	Err     error
}

// Run converts inputs concurrently, at most opts.Workers at a time. Every
// document is owned by a single goroutine. The first failure cancels the
// files not yet started and is returned.
func Run(ctx context.Context, inputs []string, opts Options) ([]Result, error) {
	workers := int64(opts.Workers)
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(inputs))
	for i, input := range inputs {
		results[i].Input = input
	}

	g, ctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(workers)
	for i := range inputs {
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Trace.Printf("Failed to acquire semaphore: %v", err)
			break
		}
		i := i
		g.Go(func() error {
			defer sem.Release(1)
			outputs, err := File(ctx, inputs[i], opts)
			results[i].Outputs = outputs
			results[i].Err = err
			if err != nil {
				log.Trace.Printf("%s: %v", inputs[i], err)
				return err
			}
			log.Trace.Printf("%s: wrote %v", inputs[i], outputs)
			return nil
		})
	}

	err := g.Wait()
	return results, err
}
