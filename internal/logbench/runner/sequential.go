package runner

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/logbench/internal/logbench/entity"
)

// Sequential drains the matching files of dir one after the other and stops
// at the first failure.
func (r *Runner) Sequential(ctx context.Context, dir string) error {
	refs, err := r.source.List(dir)
	if err != nil {
		return err
	}

	slog.DebugContext(ctx, "sequential run started", "dir", dir, "files", len(refs))

	for _, ref := range refs {
		if err := r.drainOne(ctx, entity.RunSequential, ref); err != nil {
			return err
		}
	}

	return nil
}
