package runner

import (
	"context"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/shandysiswandi/logbench/internal/logbench/entity"
	"github.com/shandysiswandi/logbench/internal/pkg/pkguid"
)

type Lister interface {
	List(dir string) ([]entity.FileRef, error)
}

type Drainer interface {
	Drain(ref entity.FileRef) (int64, error)
}

type Dependency struct {
	Source  Lister
	Drainer Drainer
	// IDs labels concurrent tasks; nil falls back to a sequence.
	IDs pkguid.NumberID
	// Observer is called after every successful drain. It may be called from
	// several goroutines at once.
	Observer func(entity.FileRef)
}

// Runner drains every matching file of a directory, either one at a time or
// on a worker pool.
type Runner struct {
	source   Lister
	drainer  Drainer
	ids      pkguid.NumberID
	observer func(entity.FileRef)
}

func New(dep Dependency) *Runner {
	return &Runner{
		source:   dep.Source,
		drainer:  dep.Drainer,
		ids:      dep.IDs,
		observer: dep.Observer,
	}
}

func (r *Runner) drainOne(ctx context.Context, kind entity.RunKind, ref entity.FileRef) error {
	n, err := r.drainer.Drain(ref)
	if err != nil {
		slog.DebugContext(ctx, "failed to drain file", "run", kind, "path", ref.Path, "error", err)
		return err
	}

	slog.DebugContext(ctx, "file drained", "run", kind, "path", ref.Path, "size", humanize.Bytes(uint64(n)))
	if r.observer != nil {
		r.observer(ref)
	}

	return nil
}
