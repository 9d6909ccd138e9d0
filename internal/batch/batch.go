// Package batch analyses several graph inputs concurrently.
//
// Each input is loaded and analysed in its own goroutine; graphs share no
// state, so no coordination beyond the errgroup is needed. Results keep the
// order of the inputs. The first failure cancels the derived context and is
// returned; inputs not yet started are skipped.
package batch

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphkind/digraph"
	"github.com/katalvlaran/graphkind/internal/report"
)

// ErrBadConcurrency is returned for a concurrency limit below 1.
var ErrBadConcurrency = errors.New("batch: concurrency must be >= 1")

// Loader turns an input name into a graph.
type Loader func(name string) (*digraph.Graph, error)

// Event reports progress for one input.
type Event struct {
	Name  string
	Index int
	Done  bool  // false when the input starts, true when it finishes
	Err   error // set when Done and the input failed
}

// Runner analyses inputs with bounded parallelism.
type Runner struct {
	load        Loader
	concurrency int
	onEvent     func(Event)
}

// NewRunner creates a Runner. onEvent may be nil; when set it is called from
// worker goroutines and must be safe for concurrent use.
func NewRunner(load Loader, concurrency int, onEvent func(Event)) (*Runner, error) {
	if load == nil {
		return nil, errors.New("batch: nil loader")
	}
	if concurrency < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadConcurrency, concurrency)
	}

	return &Runner{load: load, concurrency: concurrency, onEvent: onEvent}, nil
}

// Run loads and analyses every input.
func (r *Runner) Run(ctx context.Context, names []string) ([]report.Result, error) {
	results := make([]report.Result, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, name := range names {
		// Stop scheduling once something failed or the caller cancelled.
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r.emit(Event{Name: name, Index: i})

			graph, err := r.load(name)
			if err != nil {
				r.emit(Event{Name: name, Index: i, Done: true, Err: err})
				return err
			}
			results[i] = report.Analyze(name, graph)
			r.emit(Event{Name: name, Index: i, Done: true})

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func (r *Runner) emit(ev Event) {
	if r.onEvent != nil {
		r.onEvent(ev)
	}
}
