package runner

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/logbench/internal/logbench/entity"
	"github.com/shandysiswandi/logbench/internal/pkg/pkgerror"
	"github.com/shandysiswandi/logbench/internal/pkg/pkgroutine"
)

// Concurrent drains the matching files of dir on a pool of exactly size
// workers. One task is submitted per file; all of them run to completion
// before the first failure, if any, is returned. The pool is released before
// Concurrent returns.
func (r *Runner) Concurrent(ctx context.Context, dir string, size int) (err error) {
	if size < 1 {
		return pkgerror.NewInvalidPoolSize(size)
	}

	opts := []pkgroutine.Option{}
	if r.ids != nil {
		opts = append(opts, pkgroutine.WithIDs(r.ids))
	}

	pool, err := pkgroutine.NewPool(size, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := pool.Close(); cerr != nil && err == nil {
			err = cerr
		}
		slog.DebugContext(ctx, "worker pool released", "stats", pool.Stats())
	}()

	refs, err := r.source.List(dir)
	if err != nil {
		return err
	}

	slog.DebugContext(ctx, "concurrent run started", "dir", dir, "files", len(refs), "workers", size)

	var submitErr error
	for _, ref := range refs {
		ref := ref
		h, err := pool.Submit(ctx, func(ctx context.Context) error {
			return r.drainOne(ctx, entity.RunConcurrent, ref)
		})
		if err != nil {
			submitErr = err
			break
		}
		slog.DebugContext(ctx, "drain task submitted", "task_id", h.ID(), "path", ref.Path)
	}

	if err := pool.Wait(); err != nil {
		return err
	}

	return submitErr
}
