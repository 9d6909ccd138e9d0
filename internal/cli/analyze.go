package cli

import (
	"context"
	"io"

	"github.com/katalvlaran/graphkind/internal/batch"
	"github.com/katalvlaran/graphkind/internal/codec"
	"github.com/katalvlaran/graphkind/internal/config"
	"github.com/katalvlaran/graphkind/internal/report"
)

// runAnalyze loads every input concurrently, analyses it and writes the
// report to out in the configured format.
func runAnalyze(ctx context.Context, out io.Writer, cfg config.Config, inputs []string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner, err := batch.NewRunner(codec.Load, cfg.Concurrency, func(ev batch.Event) {
		switch {
		case !ev.Done:
			logger.Debug("analysing", "input", ev.Name)
		case ev.Err != nil:
			logger.Error("failed", "input", ev.Name, "err", ev.Err)
		default:
			logger.Debug("analysed", "input", ev.Name)
		}
	})
	if err != nil {
		return err
	}

	results, err := runner.Run(ctx, inputs)
	if err != nil {
		return err
	}
	for _, r := range results {
		logger.Debug("classified", "input", r.Name, "category", r.Category, "shortest_paths", r.HasPaths)
	}
	prog.done("analysis complete", "graphs", len(results))

	return report.Write(out, cfg.Format, results)
}
