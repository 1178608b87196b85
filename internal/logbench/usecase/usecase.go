package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shandysiswandi/logbench/internal/logbench/entity"
	"github.com/shandysiswandi/logbench/internal/pkg/pkgerror"
)

type Runner interface {
	Sequential(ctx context.Context, dir string) error
	Concurrent(ctx context.Context, dir string, size int) error
}

type Clock interface {
	Now() time.Time
}

type Dependency struct {
	Runner Runner
	Clock  Clock
}

// Usecase times a sequential pass and a concurrent pass over the same directory.
type Usecase struct {
	runner Runner
	clock  Clock
}

func New(dep Dependency) *Usecase {
	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	return &Usecase{
		runner: dep.Runner,
		clock:  clock,
	}
}

type realClock struct{}

// Now carries the monotonic reading, so Sub between two calls is immune to
// wall clock changes.
func (realClock) Now() time.Time {
	return time.Now()
}

// Run executes the sequential pass, then the concurrent pass, and returns
// their durations. The first failing pass aborts the run.
func (u *Usecase) Run(ctx context.Context, dir string, poolSize int) (entity.TimingRecord, error) {
	if u.runner == nil {
		return entity.TimingRecord{}, pkgerror.NewInternal(errors.New("missing dependency"))
	}

	var rec entity.TimingRecord

	seq, err := u.measure(func() error {
		return u.runner.Sequential(ctx, dir)
	})
	if err != nil {
		slog.ErrorContext(ctx, "sequential run failed", "dir", dir, "error", err)
		return entity.TimingRecord{}, err
	}
	rec.Sequential = seq

	conc, err := u.measure(func() error {
		return u.runner.Concurrent(ctx, dir, poolSize)
	})
	if err != nil {
		slog.ErrorContext(ctx, "concurrent run failed", "dir", dir, "pool_size", poolSize, "error", err)
		return entity.TimingRecord{}, err
	}
	rec.Concurrent = conc

	slog.InfoContext(ctx, "benchmark finished",
		"dir", dir,
		"pool_size", poolSize,
		"sequential_ms", rec.SequentialMillis(),
		"concurrent_ms", rec.ConcurrentMillis(),
	)

	return rec, nil
}

func (u *Usecase) measure(fn func() error) (time.Duration, error) {
	start := u.clock.Now()
	err := fn()
	return u.clock.Now().Sub(start), err
}
