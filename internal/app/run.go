package app

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/logbench/internal/logbench/usecase"
	"github.com/shandysiswandi/logbench/internal/pkg/pkglog"
)

// Run benchmarks dir and prints the report to stdout.
func (a *App) Run(ctx context.Context, dir string, poolSize int) error {
	ctx = pkglog.SetRunID(ctx, a.runID.Generate())

	rec, err := a.bench.Run(ctx, dir, poolSize)
	if err != nil {
		return err
	}

	return usecase.WriteReport(a.stdout, rec)
}

// Close releases every registered resource.
func (a *App) Close(ctx context.Context) {
	for name, closer := range a.closerFn {
		if err := closer(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", name, "error", err)
		}
	}
}
